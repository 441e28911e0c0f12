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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talentflow/internal/application"
	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job"
	"github.com/ecodeclub/talentflow/internal/notification/event"
	testioc "github.com/ecodeclub/talentflow/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestApplicationModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db       *egorm.Component
	jobSvc   job.Service
	svc      application.Service
	consumer mq.Consumer
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	jobModule, err := job.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	appModule, err := application.InitModule(s.db, q, jobModule)
	require.NoError(s.T(), err)
	s.jobSvc = jobModule.Svc
	s.svc = appModule.Svc
	s.consumer, err = q.Consumer(event.ApplicationStatusEventName, "integration")
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"applications", "interviews", "notifications", "jobs", "job_descriptions"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"applications", "interviews", "notifications"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *ModuleTestSuite) publishedJob(title string) int64 {
	t := s.T()
	ctx := context.Background()
	id, err := s.jobSvc.Create(ctx, job.Job{
		Title:               title,
		Department:          "研发",
		ApplicationDeadline: time.Now().Add(24 * time.Hour).UnixMilli(),
		Status:              job.StatusPublished,
	})
	require.NoError(t, err)
	return id
}

func (s *ModuleTestSuite) nextEvent(t *testing.T) event.ApplicationStatusEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.ApplicationStatusEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func (s *ModuleTestSuite) TestLifecycle() {
	t := s.T()
	ctx := context.Background()
	jid := s.publishedJob("Go 后端工程师")
	applicant := domain.Actor{ID: 10001, Role: domain.RoleApplicant}
	hr := domain.Actor{ID: 1, Role: domain.RoleHR}
	manager := domain.Actor{ID: 2, Role: domain.RoleHiringManager}

	app, err := s.svc.Submit(ctx, domain.Application{
		JobID:          jid,
		ApplicantID:    applicant.ID,
		ApplicantName:  "张三",
		ApplicantEmail: "zhangsan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, app.Status)
	assert.Equal(t, "Go 后端工程师", app.JobTitle)
	assert.Regexp(t, `^APP-\d+-[0-9A-Z]{8}$`, app.Ref)

	_, err = s.svc.Submit(ctx, domain.Application{JobID: jid, ApplicantID: applicant.ID})
	assert.ErrorIs(t, err, application.ErrDuplicateApplication)

	_, err = s.svc.Transit(ctx, app.ID, domain.StatusUnderReview, applicant, domain.SideEffectInput{})
	assert.ErrorIs(t, err, application.ErrForbidden)

	steps := []struct {
		to    domain.Status
		actor domain.Actor
		input domain.SideEffectInput
	}{
		{to: domain.StatusUnderReview, actor: hr},
		{to: domain.StatusShortlisted, actor: hr},
		{to: domain.StatusInterviewInvite, actor: manager, input: domain.SideEffectInput{
			Interview: &domain.InterviewInput{
				ScheduledStart:  time.Now().Add(48 * time.Hour).Truncate(time.Second),
				DurationMinutes: 45,
				Location:        "3F 会议室",
			},
		}},
		{to: domain.StatusOffered, actor: hr, input: domain.SideEffectInput{Message: "请在三天内回复"}},
		{to: domain.StatusHired, actor: hr},
	}
	from := domain.StatusSubmitted
	for _, step := range steps {
		if step.to == domain.StatusInterviewInvite {
			_, err = s.svc.Transit(ctx, app.ID, step.to, step.actor, domain.SideEffectInput{})
			assert.ErrorIs(t, err, domain.ErrMissingSideEffectInput)
			unchanged, err := s.svc.Detail(ctx, app.ID, hr)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusShortlisted, unchanged.Status)
		}
		app, err = s.svc.Transit(ctx, app.ID, step.to, step.actor, step.input)
		require.NoError(t, err)
		assert.Equal(t, step.to, app.Status)

		evt := s.nextEvent(t)
		assert.Equal(t, app.ID, evt.ApplicationID)
		assert.Equal(t, from.String(), evt.From)
		assert.Equal(t, step.to.String(), evt.To)
		assert.Equal(t, step.actor.ID, evt.ActorID)
		from = step.to
	}

	_, err = s.svc.Transit(ctx, app.ID, domain.StatusRejected, hr, domain.SideEffectInput{})
	assert.ErrorIs(t, err, application.ErrTerminalState)

	detail, err := s.svc.Detail(ctx, app.ID, applicant)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHired, detail.Status)
	assert.Equal(t, int64(6), detail.Version)

	interviews, err := s.svc.Interviews(ctx, app.ID, hr)
	require.NoError(t, err)
	require.Len(t, interviews, 1)
	assert.Equal(t, "3F 会议室", interviews[0].Location)
	assert.Equal(t, manager.ID, interviews[0].CreatedBy)

	views, err := s.svc.ApplicantNotifications(ctx, applicant.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	kinds := make([]domain.NotificationType, 0, len(views[0].Items))
	for _, item := range views[0].Items {
		kinds = append(kinds, item.Kind)
	}
	assert.ElementsMatch(t, []domain.NotificationType{domain.NotificationInterview, domain.NotificationOffer}, kinds)
}

func (s *ModuleTestSuite) TestSubmit_JobNotOpen() {
	t := s.T()
	ctx := context.Background()
	draft, err := s.jobSvc.Create(ctx, job.Job{Title: "草稿岗位"})
	require.NoError(t, err)
	_, err = s.svc.Submit(ctx, domain.Application{JobID: draft, ApplicantID: 10002})
	assert.ErrorIs(t, err, job.ErrNotLive)

	expired, err := s.jobSvc.Create(ctx, job.Job{
		Title:               "过期岗位",
		Status:              job.StatusPublished,
		ApplicationDeadline: time.Now().Add(-time.Hour).UnixMilli(),
	})
	require.NoError(t, err)
	_, err = s.svc.Submit(ctx, domain.Application{JobID: expired, ApplicantID: 10002})
	assert.ErrorIs(t, err, job.ErrPastDeadline)
}

func (s *ModuleTestSuite) TestBulkTransit() {
	t := s.T()
	ctx := context.Background()
	jid := s.publishedJob("测试工程师")
	ids := make([]int64, 0, 3)
	for i := int64(0); i < 3; i++ {
		app, err := s.svc.Submit(ctx, domain.Application{JobID: jid, ApplicantID: 20000 + i, ApplicantName: "候选人"})
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}
	hr := domain.Actor{ID: 1, Role: domain.RoleHR}
	_, err := s.svc.Transit(ctx, ids[1], domain.StatusRejected, hr, domain.SideEffectInput{})
	assert.ErrorIs(t, err, application.ErrIllegalTransition)
	_, err = s.svc.Transit(ctx, ids[1], domain.StatusUnderReview, hr, domain.SideEffectInput{})
	require.NoError(t, err)
	s.nextEvent(t)

	results := s.svc.BulkTransit(ctx, append(ids, 999999), domain.StatusUnderReview, hr)
	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, application.ErrIllegalTransition)
	assert.NoError(t, results[2].Err)
	assert.ErrorIs(t, results[3].Err, application.ErrNotFound)
	for range 2 {
		evt := s.nextEvent(t)
		assert.Equal(t, domain.StatusUnderReview.String(), evt.To)
	}

	apps, total, err := s.svc.ListByJob(ctx, jid, []domain.Status{domain.StatusUnderReview}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, apps, 3)
}
