//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/talentflow/internal/application"
	"github.com/ecodeclub/talentflow/internal/job"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		job.InitModule,
		wire.FieldsOf(new(*job.Module), "Hdl"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
