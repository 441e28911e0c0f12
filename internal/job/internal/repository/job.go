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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job/internal/repository/cache"
	"github.com/ecodeclub/talentflow/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrJobNotFound    = dao.ErrJobNotFound
	ErrStatusMismatch = dao.ErrStatusMismatch
)

//go:generate mockgen -source=./job.go -package=repomocks -destination=./mocks/job.mock.go JobRepository
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	UpdateDraft(ctx context.Context, job domain.Job) error
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	// FindByID 先查缓存，缓存没有再查库并回写
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context) (int64, error)
	ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]domain.Job, error)
	CountByManager(ctx context.Context, managerID int64) (int64, error)
	FindExpired(ctx context.Context, now int64, limit int) ([]domain.Job, error)
	CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error)
}

type jobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &jobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *jobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	j, descs := r.toEntity(job)
	return r.dao.Create(ctx, j, descs)
}

func (r *jobRepository) UpdateDraft(ctx context.Context, job domain.Job) error {
	j, descs := r.toEntity(job)
	err := r.dao.UpdateDraft(ctx, j, descs)
	if err != nil {
		return err
	}
	r.evict(ctx, job.ID)
	return nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, from.String(), to.String())
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *jobRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.DelJob(ctx, id); err != nil {
		r.logger.Error("删除岗位缓存失败", elog.FieldErr(err), elog.Int64("jid", id))
	}
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.GetJob(ctx, id)
	if err == nil {
		return job, nil
	}
	j, descs, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = r.toDomain(j, descs)
	if err1 := r.cache.SetJob(ctx, job); err1 != nil {
		r.logger.Error("回写岗位缓存失败", elog.FieldErr(err1), elog.Int64("jid", id))
	}
	return job, nil
}

func (r *jobRepository) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *jobRepository) ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByManager(ctx, managerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) CountByManager(ctx context.Context, managerID int64) (int64, error) {
	return r.dao.CountByManager(ctx, managerID)
}

func (r *jobRepository) FindExpired(ctx context.Context, now int64, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.FindExpired(ctx, now, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error) {
	cnt, err := r.dao.CloseExpired(ctx, ids, now)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		r.evict(ctx, id)
	}
	return cnt, nil
}

func (r *jobRepository) toDomains(jobs []dao.Job) []domain.Job {
	return slice.Map(jobs, func(_ int, src dao.Job) domain.Job {
		return r.toDomain(src, nil)
	})
}

func (r *jobRepository) toEntity(job domain.Job) (dao.Job, []dao.JobDescription) {
	j := dao.Job{
		ID:                  job.ID,
		Title:               job.Title,
		Department:          job.Department,
		Location:            job.Location,
		EmploymentType:      string(job.EmploymentType),
		SalaryMin:           job.SalaryMin,
		SalaryMax:           job.SalaryMax,
		ApplicationDeadline: job.ApplicationDeadline,
		DescriptionSummary:  job.DescriptionSummary,
		Status:              job.Status.String(),
		ManagedByManagerID:  job.ManagedByManagerID,
	}
	descs := slice.Map(job.Descriptions, func(_ int, src domain.Description) dao.JobDescription {
		return dao.JobDescription{
			Title:       src.Title,
			Description: src.Description,
			Weight:      src.Weight,
		}
	})
	return j, descs
}

func (r *jobRepository) toDomain(job dao.Job, descs []dao.JobDescription) domain.Job {
	return domain.Job{
		ID:                  job.ID,
		Title:               job.Title,
		Department:          job.Department,
		Location:            job.Location,
		EmploymentType:      domain.EmploymentType(job.EmploymentType),
		SalaryMin:           job.SalaryMin,
		SalaryMax:           job.SalaryMax,
		ApplicationDeadline: job.ApplicationDeadline,
		DescriptionSummary:  job.DescriptionSummary,
		Status:              domain.Status(job.Status),
		ManagedByManagerID:  job.ManagedByManagerID,
		FormLink:            domain.ApplyFormLink(job.ID),
		Descriptions: slice.Map(descs, func(_ int, src dao.JobDescription) domain.Description {
			return domain.Description{
				Title:       src.Title,
				Description: src.Description,
				Weight:      src.Weight,
			}
		}),
		Ctime: job.Ctime,
		Utime: job.Utime,
	}
}
