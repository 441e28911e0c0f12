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
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/talentflow/internal/job/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredJobsJob)(nil)

// CloseExpiredJobsJob 定时关闭已过截止日期的岗位
type CloseExpiredJobsJob struct {
	svc       service.Service
	batchSize int
	now       func() time.Time
}

func NewCloseExpiredJobsJob(svc service.Service, batchSize int) *CloseExpiredJobsJob {
	return &CloseExpiredJobsJob{
		svc:       svc,
		batchSize: batchSize,
		now:       time.Now,
	}
}

func (c *CloseExpiredJobsJob) Name() string {
	return "CloseExpiredJobsJob"
}

func (c *CloseExpiredJobsJob) Run(ctx context.Context) error {
	_, err := c.svc.CloseExpired(ctx, c.now(), c.batchSize)
	if err != nil {
		return fmt.Errorf("关闭过期岗位失败: %w", err)
	}
	return nil
}
