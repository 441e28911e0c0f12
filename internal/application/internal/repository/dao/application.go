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
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound               = gorm.ErrRecordNotFound
	ErrDuplicateApplication   = errors.New("该候选人已投递过此岗位")
	ErrDuplicateRef           = errors.New("投递编号冲突")
	ErrConcurrentModification = errors.New("申请已被其他人修改")
)

type Application struct {
	ID             int64             `gorm:"primaryKey;autoIncrement"`
	Ref            string            `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_ref"`
	JobID          int64             `gorm:"NOT NULL;uniqueIndex:uk_job_applicant,priority:1;index:idx_job_status,priority:1"`
	JobTitle       string            `gorm:"type:VARCHAR(255);NOT NULL"`
	ApplicantID    int64             `gorm:"NOT NULL;uniqueIndex:uk_job_applicant,priority:2;index:idx_applicant"`
	ApplicantName  string            `gorm:"type:VARCHAR(255);NOT NULL"`
	ApplicantEmail string            `gorm:"type:VARCHAR(255);NOT NULL"`
	ApplicantPhone string            `gorm:"type:VARCHAR(64)"`
	Status         string            `gorm:"type:VARCHAR(32);NOT NULL;index:idx_job_status,priority:2"`
	MatchScore     sql.Null[float64] `gorm:"type:DOUBLE"`
	CoverLetter    string            `gorm:"type:TEXT"`
	CVRef          string            `gorm:"column:cv_ref;type:VARCHAR(1024)"`
	Version        int64             `gorm:"NOT NULL;default:1"`
	// SubmittedAt 即创建时间，写入后不再变化
	SubmittedAt int64 `gorm:"NOT NULL"`
	Utime       int64
}

func (Application) TableName() string {
	return "applications"
}

type Interview struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	ApplicationID int64 `gorm:"NOT NULL;index:idx_application"`
	JobID         int64 `gorm:"NOT NULL"`
	// ScheduledStart 毫秒，TZOffset 是安排时的时区偏移，单位秒
	ScheduledStart  int64  `gorm:"NOT NULL"`
	TZOffset        int    `gorm:"column:tz_offset;NOT NULL;default:0"`
	DurationMinutes int    `gorm:"NOT NULL;default:0"`
	Location        string `gorm:"type:VARCHAR(512);NOT NULL"`
	Notes           string `gorm:"type:TEXT"`
	CreatedBy       int64  `gorm:"NOT NULL"`
	Ctime           int64
}

func (Interview) TableName() string {
	return "interviews"
}

type Notification struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ApplicationID int64  `gorm:"NOT NULL;index:idx_application_sent,priority:1"`
	Type          string `gorm:"type:VARCHAR(32);NOT NULL"`
	ToEmail       string `gorm:"type:VARCHAR(255)"`
	Subject       string `gorm:"type:VARCHAR(512);NOT NULL"`
	Body          string `gorm:"type:TEXT"`
	SentAt        int64  `gorm:"NOT NULL;index:idx_application_sent,priority:2"`
	CreatedBy     int64  `gorm:"NOT NULL"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Transition 一次状态写入以及随之落库的面试和通知。
// FromStatus 和 Version 是读取时的快照，用于乐观锁。
type Transition struct {
	ApplicationID int64
	FromStatus    string
	ToStatus      string
	Version       int64
	Interview     *Interview
	Notification  *Notification
}

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	FindByJob(ctx context.Context, jobID int64, statuses []string, offset, limit int) ([]Application, error)
	CountByJob(ctx context.Context, jobID int64, statuses []string) (int64, error)
	FindAllByJob(ctx context.Context, jobID int64) ([]Application, error)
	FindByApplicant(ctx context.Context, applicantID int64) ([]Application, error)
	// Transit 在同一个事务里更新状态并写入面试和通知
	Transit(ctx context.Context, t Transition) error
	FindInterviews(ctx context.Context, applicationID int64) ([]Interview, error)
	FindNotifications(ctx context.Context, applicationID int64) ([]Notification, error)
	FindNotificationsByApplicant(ctx context.Context, applicantID int64) ([]Notification, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.SubmittedAt = now
	app.Utime = now
	app.Version = 1
	err := g.db.WithContext(ctx).Create(&app).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			// 只有 uk_job_applicant 冲突才是重复投递
			if strings.Contains(me.Message, "uk_job_applicant") {
				return 0, ErrDuplicateApplication
			}
			if strings.Contains(me.Message, "uk_ref") {
				return 0, ErrDuplicateRef
			}
		}
	}
	return app.ID, err
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) jobQuery(ctx context.Context, jobID int64, statuses []string) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Application{}).Where("job_id = ?", jobID)
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	return db
}

func (g *GORMApplicationDAO) FindByJob(ctx context.Context, jobID int64, statuses []string, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.jobQuery(ctx, jobID, statuses).
		Order("submitted_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByJob(ctx context.Context, jobID int64, statuses []string) (int64, error) {
	var cnt int64
	err := g.jobQuery(ctx, jobID, statuses).Count(&cnt).Error
	return cnt, err
}

func (g *GORMApplicationDAO) FindAllByJob(ctx context.Context, jobID int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).Where("job_id = ?", jobID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindByApplicant(ctx context.Context, applicantID int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).Where("applicant_id = ?", applicantID).
		Order("submitted_at DESC, id DESC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Transit(ctx context.Context, t Transition) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 状态不变（追加面试）也要推进版本号，保证并发的两次写入只有一次成功
		res := tx.Model(&Application{}).
			Where("id = ? AND status = ? AND version = ?", t.ApplicationID, t.FromStatus, t.Version).
			Updates(map[string]any{
				"status":  t.ToStatus,
				"version": gorm.Expr("version + 1"),
				"utime":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&Application{}).Where("id = ?", t.ApplicationID).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return ErrNotFound
			}
			return ErrConcurrentModification
		}
		if t.Interview != nil {
			interview := *t.Interview
			interview.ApplicationID = t.ApplicationID
			interview.Ctime = now
			if err := tx.Create(&interview).Error; err != nil {
				return err
			}
		}
		if t.Notification != nil {
			n := *t.Notification
			n.ApplicationID = t.ApplicationID
			n.SentAt = now
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GORMApplicationDAO) FindInterviews(ctx context.Context, applicationID int64) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationID).
		Order("scheduled_start ASC, id ASC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindNotifications(ctx context.Context, applicationID int64) ([]Notification, error) {
	var res []Notification
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationID).
		Order("sent_at ASC, id ASC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindNotificationsByApplicant(ctx context.Context, applicantID int64) ([]Notification, error) {
	var res []Notification
	sub := g.db.WithContext(ctx).Model(&Application{}).Select("id").Where("applicant_id = ?", applicantID)
	err := g.db.WithContext(ctx).Where("application_id IN (?)", sub).
		Order("sent_at ASC, id ASC").Find(&res).Error
	return res, err
}
