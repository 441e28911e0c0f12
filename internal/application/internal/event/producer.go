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

package event

import (
	"context"
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talentflow/internal/notification/event"
	"github.com/ecodeclub/talentflow/internal/pkg/mqx"
)

type ApplicationStatusEvent = event.ApplicationStatusEvent

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go ApplicationEventProducer
type ApplicationEventProducer interface {
	Produce(ctx context.Context, evt ApplicationStatusEvent) error
}

func NewApplicationEventProducer(q mq.MQ) (ApplicationEventProducer, error) {
	// 同一个申请的事件按顺序消费
	return mqx.NewKeyedProducer[ApplicationStatusEvent](q, event.ApplicationStatusEventName,
		func(evt ApplicationStatusEvent) string {
			return strconv.FormatInt(evt.ApplicationID, 10)
		})
}
