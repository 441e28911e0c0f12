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

	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/event"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository"
	"github.com/ecodeclub/talentflow/internal/job"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	bulkConcurrency = 8
	maxRefAttempts  = 3
)

var (
	ErrNotFound               = repository.ErrNotFound
	ErrDuplicateApplication   = repository.ErrDuplicateApplication
	ErrConcurrentModification = repository.ErrConcurrentModification
	ErrJobNotFound            = errors.New("岗位不存在")
)

// RefGenerator 生成投递编号
type RefGenerator interface {
	Generate() (string, error)
}

//go:generate mockgen -source=./application.go -package=appmocks -destination=../../mocks/application.mock.go Service
type Service interface {
	// Submit 候选人投递，岗位必须处于可投递状态
	Submit(ctx context.Context, app domain.Application) (domain.Application, error)
	// Detail 候选人只能看自己的投递
	Detail(ctx context.Context, id int64, actor domain.Actor) (domain.Application, error)
	ListByJob(ctx context.Context, jobID int64, statuses []domain.Status, offset, limit int) ([]domain.Application, int64, error)
	ListMine(ctx context.Context, applicantID int64) ([]domain.Application, error)
	// Transit 执行一次状态变更，遇到并发修改会重新读取并重试一次
	Transit(ctx context.Context, id int64, target domain.Status, actor domain.Actor, input domain.SideEffectInput) (domain.Application, error)
	// BulkTransit 逐个执行，互不影响，结果与 ids 一一对应
	BulkTransit(ctx context.Context, ids []int64, target domain.Status, actor domain.Actor) []domain.BulkTransitResult
	ScheduleInterview(ctx context.Context, id int64, actor domain.Actor, input domain.InterviewInput) (domain.Application, error)
	Interviews(ctx context.Context, id int64, actor domain.Actor) ([]domain.Interview, error)
	Notifications(ctx context.Context, id int64, actor domain.Actor) (domain.NotificationView, error)
	ApplicantNotifications(ctx context.Context, applicantID int64) ([]domain.NotificationView, error)
	// Export 导出某个岗位下所有投递，返回 xlsx 文件内容
	Export(ctx context.Context, jobID int64) ([]byte, error)
}

type applicationService struct {
	repo     repository.ApplicationRepository
	jobSvc   job.Service
	refGen   RefGenerator
	producer event.ApplicationEventProducer
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	refGen RefGenerator,
	producer event.ApplicationEventProducer) Service {
	return &applicationService{
		repo:     repo,
		jobSvc:   jobSvc,
		refGen:   refGen,
		producer: producer,
		now:      time.Now,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("application.service")),
	}
}

func (s *applicationService) Submit(ctx context.Context, app domain.Application) (domain.Application, error) {
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if errors.Is(err, job.ErrJobNotFound) {
		return domain.Application{}, fmt.Errorf("%w: jid=%d", ErrJobNotFound, app.JobID)
	}
	if err != nil {
		return domain.Application{}, err
	}
	now := s.now()
	if err = j.CheckOpenForApplication(now); err != nil {
		return domain.Application{}, err
	}
	app.JobTitle = j.Title
	app.Status = domain.StatusSubmitted
	// 分数由外部系统写入
	app.MatchScore = nil
	app.SubmittedAt = now.UnixMilli()
	// 编号冲突时换一个编号重试
	for i := 0; i < maxRefAttempts; i++ {
		app.Ref, err = s.refGen.Generate()
		if err != nil {
			return domain.Application{}, fmt.Errorf("生成投递编号失败: %w", err)
		}
		app.ID, err = s.repo.Create(ctx, app)
		if !errors.Is(err, repository.ErrDuplicateRef) {
			break
		}
		s.logger.Warn("投递编号冲突", elog.String("ref", app.Ref), elog.Int("attempt", i+1))
	}
	if err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

func (s *applicationService) Detail(ctx context.Context, id int64, actor domain.Actor) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if err = s.checkReadable(app, actor); err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

func (s *applicationService) checkReadable(app domain.Application, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleHR, domain.RoleHiringManager:
		return nil
	case domain.RoleApplicant:
		if app.IsOwnedBy(actor.ID) {
			return nil
		}
	}
	return fmt.Errorf("%w: uid=%d 无权查看申请 %d", domain.ErrForbidden, actor.ID, app.ID)
}

func (s *applicationService) ListByJob(ctx context.Context, jobID int64, statuses []domain.Status, offset, limit int) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListByJob(ctx, jobID, statuses, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByJob(ctx, jobID, statuses)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *applicationService) ListMine(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *applicationService) Transit(ctx context.Context, id int64, target domain.Status, actor domain.Actor, input domain.SideEffectInput) (domain.Application, error) {
	return s.transit(ctx, id, actor, func(app domain.Application) (domain.TransitionResult, error) {
		return domain.AttemptTransition(app, target, actor, input)
	})
}

func (s *applicationService) ScheduleInterview(ctx context.Context, id int64, actor domain.Actor, input domain.InterviewInput) (domain.Application, error) {
	return s.transit(ctx, id, actor, func(app domain.Application) (domain.TransitionResult, error) {
		return domain.PlanInterview(app, actor, input)
	})
}

type decideFunc func(app domain.Application) (domain.TransitionResult, error)

func (s *applicationService) transit(ctx context.Context, id int64, actor domain.Actor, decide decideFunc) (domain.Application, error) {
	app, res, err := s.transitOnce(ctx, id, actor, decide)
	if errors.Is(err, repository.ErrConcurrentModification) {
		s.logger.Warn("申请被并发修改，重新读取后重试", elog.Int64("aid", id), elog.FieldErr(err))
		app, res, err = s.transitOnce(ctx, id, actor, decide)
	}
	observeTransition(app.Status, res.To, err)
	if err != nil {
		return domain.Application{}, err
	}
	s.publish(ctx, app, res, actor)
	app.Status = res.To
	app.Version++
	app.Utime = s.now().UnixMilli()
	return app, nil
}

// transitOnce 返回决策时读到的快照
func (s *applicationService) transitOnce(ctx context.Context, id int64, actor domain.Actor, decide decideFunc) (domain.Application, domain.TransitionResult, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, domain.TransitionResult{}, err
	}
	res, err := decide(app)
	if err != nil {
		return app, domain.TransitionResult{}, err
	}
	err = s.repo.Transit(ctx, app, res, actor)
	return app, res, err
}

func (s *applicationService) publish(ctx context.Context, app domain.Application, res domain.TransitionResult, actor domain.Actor) {
	evt := event.ApplicationStatusEvent{
		ApplicationID: app.ID,
		Ref:           app.Ref,
		JobID:         app.JobID,
		JobTitle:      app.JobTitle,
		ApplicantID:   app.ApplicantID,
		ApplicantName: app.ApplicantName,
		From:          res.From.String(),
		To:            res.To.String(),
		ActorID:       actor.ID,
		ActorRole:     actor.Role.String(),
		Utime:         s.now().UnixMilli(),
	}
	if n, ok := res.Notification(); ok {
		evt.Notification = n.Type.String()
	}
	// 状态已经落库，消息发送失败只记录日志
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送申请状态变更消息失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *applicationService) BulkTransit(ctx context.Context, ids []int64, target domain.Status, actor domain.Actor) []domain.BulkTransitResult {
	res := make([]domain.BulkTransitResult, len(ids))
	var eg errgroup.Group
	eg.SetLimit(bulkConcurrency)
	for i, id := range ids {
		eg.Go(func() error {
			app, err := s.Transit(ctx, id, target, actor, domain.SideEffectInput{})
			res[i] = domain.BulkTransitResult{ApplicationID: id, Status: app.Status, Err: err}
			return nil
		})
	}
	_ = eg.Wait()
	return res
}

func (s *applicationService) Interviews(ctx context.Context, id int64, actor domain.Actor) ([]domain.Interview, error) {
	if _, err := s.Detail(ctx, id, actor); err != nil {
		return nil, err
	}
	return s.repo.FindInterviews(ctx, id)
}

func (s *applicationService) Notifications(ctx context.Context, id int64, actor domain.Actor) (domain.NotificationView, error) {
	app, err := s.Detail(ctx, id, actor)
	if err != nil {
		return domain.NotificationView{}, err
	}
	logs, err := s.repo.FindNotifications(ctx, id)
	if err != nil {
		return domain.NotificationView{}, err
	}
	return domain.ProjectNotifications(app, logs), nil
}

func (s *applicationService) ApplicantNotifications(ctx context.Context, applicantID int64) ([]domain.NotificationView, error) {
	var (
		eg   errgroup.Group
		apps []domain.Application
		logs []domain.Notification
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListByApplicant(ctx, applicantID)
		return err
	})
	eg.Go(func() error {
		var err error
		logs, err = s.repo.FindNotificationsByApplicant(ctx, applicantID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.Notification, len(apps))
	for _, n := range logs {
		grouped[n.ApplicationID] = append(grouped[n.ApplicationID], n)
	}
	views := make([]domain.NotificationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, domain.ProjectNotifications(app, grouped[app.ID]))
	}
	return views, nil
}
