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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound = gorm.ErrRecordNotFound
	// ErrStatusMismatch 写入时岗位状态已经不是预期的状态
	ErrStatusMismatch = errors.New("岗位状态已变化")
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

type Job struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Title               string `gorm:"type:VARCHAR(255);NOT NULL"`
	Department          string `gorm:"type:VARCHAR(255)"`
	Location            string `gorm:"type:VARCHAR(255)"`
	EmploymentType      string `gorm:"type:VARCHAR(32)"`
	SalaryMin           int64
	SalaryMax           int64
	ApplicationDeadline int64  `gorm:"NOT NULL;default:0;index:idx_status_deadline,priority:2"`
	DescriptionSummary  string `gorm:"type:TEXT"`
	Status              string `gorm:"type:VARCHAR(32);NOT NULL;default:'draft';index:idx_status_deadline,priority:1"`
	ManagedByManagerID  int64  `gorm:"column:managed_by_manager_id;NOT NULL;default:0;index:idx_manager"`
	Ctime               int64
	Utime               int64
}

func (Job) TableName() string {
	return "jobs"
}

// JobDescription 岗位描述条目，Idx 保证展示顺序
type JobDescription struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	JobID       int64  `gorm:"NOT NULL;index:idx_job_idx,priority:1"`
	Idx         int    `gorm:"NOT NULL;index:idx_job_idx,priority:2"`
	Title       string `gorm:"type:VARCHAR(255);NOT NULL"`
	Description string `gorm:"type:TEXT"`
	Weight      int    `gorm:"NOT NULL;default:0"`
	Ctime       int64
	Utime       int64
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}

type JobDAO interface {
	Create(ctx context.Context, job Job, descs []JobDescription) (int64, error)
	// UpdateDraft 只更新草稿状态的岗位，并整体替换描述条目
	UpdateDraft(ctx context.Context, job Job, descs []JobDescription) error
	UpdateStatus(ctx context.Context, id int64, from, to string) error
	FindByID(ctx context.Context, id int64) (Job, []JobDescription, error)
	List(ctx context.Context, offset, limit int) ([]Job, error)
	Count(ctx context.Context) (int64, error)
	ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]Job, error)
	CountByManager(ctx context.Context, managerID int64) (int64, error)
	FindExpired(ctx context.Context, now int64, limit int) ([]Job, error)
	CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Create(ctx context.Context, job Job, descs []JobDescription) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime, job.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&job).Error; err != nil {
			return err
		}
		return g.insertDescriptions(tx, job.ID, descs, now)
	})
	return job.ID, err
}

func (g *GORMJobDAO) insertDescriptions(tx *gorm.DB, jobID int64, descs []JobDescription, now int64) error {
	if len(descs) == 0 {
		return nil
	}
	for i := range descs {
		descs[i].ID = 0
		descs[i].JobID = jobID
		descs[i].Idx = i
		descs[i].Ctime, descs[i].Utime = now, now
	}
	return tx.Create(&descs).Error
}

func (g *GORMJobDAO) UpdateDraft(ctx context.Context, job Job, descs []JobDescription) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Job{}).
			Where("id = ? AND status = ?", job.ID, StatusDraft).
			Updates(map[string]any{
				"title":                 job.Title,
				"department":            job.Department,
				"location":              job.Location,
				"employment_type":       job.EmploymentType,
				"salary_min":            job.SalaryMin,
				"salary_max":            job.SalaryMax,
				"application_deadline":  job.ApplicationDeadline,
				"description_summary":   job.DescriptionSummary,
				"managed_by_manager_id": job.ManagedByManagerID,
				"utime":                 now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return g.missingOrMismatch(tx, job.ID)
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&JobDescription{}).Error; err != nil {
			return err
		}
		return g.insertDescriptions(tx, job.ID, descs, now)
	})
}

func (g *GORMJobDAO) missingOrMismatch(tx *gorm.DB, id int64) error {
	var cnt int64
	if err := tx.Model(&Job{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrJobNotFound
	}
	return ErrStatusMismatch
}

func (g *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, from, to string) error {
	db := g.db.WithContext(ctx)
	res := db.Model(&Job{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.missingOrMismatch(db, id)
	}
	return nil
}

func (g *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, []JobDescription, error) {
	var job Job
	var descs []JobDescription
	db := g.db.WithContext(ctx)
	if err := db.Where("id = ?", id).First(&job).Error; err != nil {
		return Job{}, nil, err
	}
	err := db.Where("job_id = ?", id).Order("idx ASC").Find(&descs).Error
	return job, descs, err
}

func (g *GORMJobDAO) List(ctx context.Context, offset, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).Order("utime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

func (g *GORMJobDAO) ListByManager(ctx context.Context, managerID int64, offset, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).Where("managed_by_manager_id = ?", managerID).
		Order("utime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) CountByManager(ctx context.Context, managerID int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Job{}).
		Where("managed_by_manager_id = ?", managerID).Count(&cnt).Error
	return cnt, err
}

func (g *GORMJobDAO) FindExpired(ctx context.Context, now int64, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).
		Where("status = ? AND application_deadline > 0 AND application_deadline < ?", StatusPublished, now).
		Order("id ASC").
		Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) CloseExpired(ctx context.Context, ids []int64, now int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := g.db.WithContext(ctx).Model(&Job{}).
		Where("id IN ? AND status = ? AND application_deadline > 0 AND application_deadline < ?",
			ids, StatusPublished, now).
		Updates(map[string]any{
			"status": StatusClosed,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}
