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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrJobNotFound = repository.ErrJobNotFound

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go Service
type Service interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	// Update 只允许编辑草稿
	Update(ctx context.Context, job domain.Job) error
	Publish(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64) error
	Detail(ctx context.Context, id int64) (domain.Job, error)
	// ApplyInfo 投递页面使用，岗位不接受投递时同时返回岗位和 ErrNotLive 或 ErrPastDeadline
	ApplyInfo(ctx context.Context, id int64, now time.Time) (domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]domain.Job, int64, error)
	// CloseExpired 关闭所有过了截止日期的已发布岗位，返回关闭的数量
	CloseExpired(ctx context.Context, now time.Time, batchSize int) (int64, error)
}

type jobService struct {
	repo   repository.JobRepository
	logger *elog.Component
}

func NewService(repo repository.JobRepository) Service {
	return &jobService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *jobService) Create(ctx context.Context, job domain.Job) (int64, error) {
	if job.Status == "" {
		job.Status = domain.StatusDraft
	}
	if job.Status == domain.StatusClosed {
		return 0, fmt.Errorf("%w: 不能直接创建已关闭的岗位", domain.ErrStatusChange)
	}
	if err := job.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, job)
}

func (s *jobService) Update(ctx context.Context, job domain.Job) error {
	old, err := s.repo.FindByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if err = old.CheckEditable(); err != nil {
		return err
	}
	job.Status = old.Status
	if err = job.Validate(); err != nil {
		return err
	}
	err = s.repo.UpdateDraft(ctx, job)
	if errors.Is(err, repository.ErrStatusMismatch) {
		// 读到草稿之后被其他人发布了
		return domain.ErrJobLocked
	}
	return err
}

func (s *jobService) Publish(ctx context.Context, id int64) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job.Status != domain.StatusDraft {
		return fmt.Errorf("%w: %s 不能发布", domain.ErrStatusChange, job.Status)
	}
	if err = job.Validate(); err != nil {
		return err
	}
	return s.changeStatus(ctx, id, domain.StatusDraft, domain.StatusPublished)
}

func (s *jobService) Close(ctx context.Context, id int64) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job.Status == domain.StatusClosed {
		return fmt.Errorf("%w: 岗位已关闭", domain.ErrStatusChange)
	}
	return s.changeStatus(ctx, id, job.Status, domain.StatusClosed)
}

func (s *jobService) changeStatus(ctx context.Context, id int64, from, to domain.Status) error {
	err := s.repo.UpdateStatus(ctx, id, from, to)
	if errors.Is(err, repository.ErrStatusMismatch) {
		return fmt.Errorf("%w: 岗位状态已被修改", domain.ErrStatusChange)
	}
	return err
}

func (s *jobService) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *jobService) ApplyInfo(ctx context.Context, id int64, now time.Time) (domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return job, job.CheckOpenForApplication(now)
}

func (s *jobService) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *jobService) ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByManager(ctx, managerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByManager(ctx, managerID)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *jobService) CloseExpired(ctx context.Context, now time.Time, batchSize int) (int64, error) {
	var closed int64
	for {
		jobs, err := s.repo.FindExpired(ctx, now.UnixMilli(), batchSize)
		if err != nil {
			return closed, fmt.Errorf("查找过期岗位失败: %w", err)
		}
		if len(jobs) == 0 {
			return closed, nil
		}
		ids := slice.Map(jobs, func(_ int, src domain.Job) int64 {
			return src.ID
		})
		cnt, err := s.repo.CloseExpired(ctx, ids, now.UnixMilli())
		if err != nil {
			return closed, fmt.Errorf("关闭过期岗位失败: %w", err)
		}
		closed += cnt
		s.logger.Info("关闭过期岗位", elog.Any("ids", ids), elog.Int64("closed", cnt))
		if len(jobs) < batchSize || cnt == 0 {
			return closed, nil
		}
	}
}
