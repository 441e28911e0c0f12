// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talentflow/internal/application/internal/event"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/talentflow/internal/application/internal/service"
	"github.com/ecodeclub/talentflow/internal/application/internal/web"
	"github.com/ecodeclub/talentflow/internal/job"
	"github.com/ecodeclub/talentflow/internal/pkg/sngenerator"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, jobModule *job.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*job.Module), "Svc"),
		initRepository,
		sngenerator.NewApplicationRefGenerator,
		wire.Bind(new(service.RefGenerator), new(*sngenerator.Generator)),
		event.NewApplicationEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	repo repository.ApplicationRepository
)

func initRepository(db *egorm.Component) repository.ApplicationRepository {
	once.Do(func() {
		_ = dao.InitTables(db)
		repo = repository.NewApplicationRepository(dao.NewGORMApplicationDAO(db))
	})
	return repo
}
