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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository/dao"
)

var (
	ErrNotFound               = dao.ErrNotFound
	ErrDuplicateApplication   = dao.ErrDuplicateApplication
	ErrDuplicateRef           = dao.ErrDuplicateRef
	ErrConcurrentModification = dao.ErrConcurrentModification
)

// ApplicationRepository 申请聚合的仓储，面试和通知只能通过 Transit 写入
//
//go:generate mockgen -source=./application.go -package=repomocks -destination=./mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	ListByJob(ctx context.Context, jobID int64, statuses []domain.Status, offset, limit int) ([]domain.Application, error)
	CountByJob(ctx context.Context, jobID int64, statuses []domain.Status) (int64, error)
	ListAllByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error)
	// Transit 落库一次状态变更，app 必须是做决策时读到的快照
	Transit(ctx context.Context, app domain.Application, res domain.TransitionResult, actor domain.Actor) error
	FindInterviews(ctx context.Context, applicationID int64) ([]domain.Interview, error)
	FindNotifications(ctx context.Context, applicationID int64) ([]domain.Notification, error)
	FindNotificationsByApplicant(ctx context.Context, applicantID int64) ([]domain.Notification, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(app))
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64, statuses []domain.Status, offset, limit int) ([]domain.Application, error) {
	apps, err := r.dao.FindByJob(ctx, jobID, r.statusStrings(statuses), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(apps), nil
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID int64, statuses []domain.Status) (int64, error) {
	return r.dao.CountByJob(ctx, jobID, r.statusStrings(statuses))
}

func (r *applicationRepository) ListAllByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := r.dao.FindAllByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(apps), nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	apps, err := r.dao.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(apps), nil
}

func (r *applicationRepository) Transit(ctx context.Context, app domain.Application, res domain.TransitionResult, actor domain.Actor) error {
	t := dao.Transition{
		ApplicationID: app.ID,
		FromStatus:    res.From.String(),
		ToStatus:      res.To.String(),
		Version:       app.Version,
	}
	if in, ok := res.Interview(); ok {
		_, offset := in.ScheduledStart.Zone()
		t.Interview = &dao.Interview{
			JobID:           app.JobID,
			ScheduledStart:  in.ScheduledStart.UnixMilli(),
			TZOffset:        offset,
			DurationMinutes: in.DurationMinutes,
			Location:        in.Location,
			Notes:           in.Notes,
			CreatedBy:       actor.ID,
		}
	}
	if n, ok := res.Notification(); ok {
		t.Notification = &dao.Notification{
			Type:      n.Type.String(),
			ToEmail:   n.ToEmail,
			Subject:   n.Subject,
			Body:      n.Body,
			CreatedBy: actor.ID,
		}
	}
	return r.dao.Transit(ctx, t)
}

func (r *applicationRepository) FindInterviews(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	found, err := r.dao.FindInterviews(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Interview) domain.Interview {
		return domain.Interview{
			ID:              src.ID,
			ApplicationID:   src.ApplicationID,
			JobID:           src.JobID,
			ScheduledStart:  time.UnixMilli(src.ScheduledStart).In(time.FixedZone("", src.TZOffset)),
			DurationMinutes: src.DurationMinutes,
			Location:        src.Location,
			Notes:           src.Notes,
			CreatedBy:       src.CreatedBy,
			Ctime:           src.Ctime,
		}
	}), nil
}

func (r *applicationRepository) FindNotifications(ctx context.Context, applicationID int64) ([]domain.Notification, error) {
	found, err := r.dao.FindNotifications(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, r.toNotificationDomain), nil
}

func (r *applicationRepository) FindNotificationsByApplicant(ctx context.Context, applicantID int64) ([]domain.Notification, error) {
	found, err := r.dao.FindNotificationsByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, r.toNotificationDomain), nil
}

func (r *applicationRepository) toNotificationDomain(_ int, src dao.Notification) domain.Notification {
	return domain.Notification{
		ID:            src.ID,
		ApplicationID: src.ApplicationID,
		Type:          domain.NotificationType(src.Type),
		ToEmail:       src.ToEmail,
		Subject:       src.Subject,
		Body:          src.Body,
		SentAt:        src.SentAt,
		CreatedBy:     src.CreatedBy,
	}
}

func (r *applicationRepository) statusStrings(statuses []domain.Status) []string {
	return slice.Map(statuses, func(_ int, src domain.Status) string {
		return src.String()
	})
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	var score sql.Null[float64]
	if app.MatchScore != nil {
		score = sql.Null[float64]{V: *app.MatchScore, Valid: true}
	}
	return dao.Application{
		ID:             app.ID,
		Ref:            app.Ref,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		ApplicantID:    app.ApplicantID,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		ApplicantPhone: app.ApplicantPhone,
		Status:         app.Status.String(),
		MatchScore:     score,
		CoverLetter:    app.CoverLetter,
		CVRef:          app.CVRef,
	}
}

func (r *applicationRepository) toDomains(apps []dao.Application) []domain.Application {
	return slice.Map(apps, func(_ int, src dao.Application) domain.Application {
		return r.toDomain(src)
	})
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	var score *float64
	if app.MatchScore.Valid {
		v := app.MatchScore.V
		score = &v
	}
	return domain.Application{
		ID:             app.ID,
		Ref:            app.Ref,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		ApplicantID:    app.ApplicantID,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		ApplicantPhone: app.ApplicantPhone,
		Status:         domain.Status(app.Status),
		MatchScore:     score,
		CoverLetter:    app.CoverLetter,
		CVRef:          app.CVRef,
		SubmittedAt:    app.SubmittedAt,
		Version:        app.Version,
		Utime:          app.Utime,
	}
}
