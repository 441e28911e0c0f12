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

package job

import (
	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job/internal/job"
	"github.com/ecodeclub/talentflow/internal/job/internal/service"
	"github.com/ecodeclub/talentflow/internal/job/internal/web"
)

const closeExpiredBatchSize = 100

type Module struct {
	Svc                 Service
	Hdl                 *Handler
	CloseExpiredJobsJob *CloseExpiredJobsJob
}

type (
	Job                 = domain.Job
	Description         = domain.Description
	Status              = domain.Status
	Service             = service.Service
	Handler             = web.Handler
	CloseExpiredJobsJob = job.CloseExpiredJobsJob
)

const (
	StatusDraft     = domain.StatusDraft
	StatusPublished = domain.StatusPublished
	StatusClosed    = domain.StatusClosed
)

var (
	ErrJobNotFound  = service.ErrJobNotFound
	ErrNotLive      = domain.ErrNotLive
	ErrPastDeadline = domain.ErrPastDeadline
	ErrJobLocked    = domain.ErrJobLocked
)
