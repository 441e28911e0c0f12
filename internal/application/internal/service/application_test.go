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
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/event"
	evtmocks "github.com/ecodeclub/talentflow/internal/application/internal/event/mocks"
	"github.com/ecodeclub/talentflow/internal/application/internal/repository"
	repomocks "github.com/ecodeclub/talentflow/internal/application/internal/repository/mocks"
	appmocks "github.com/ecodeclub/talentflow/internal/application/mocks"
	"github.com/ecodeclub/talentflow/internal/job"
	jobmocks "github.com/ecodeclub/talentflow/internal/job/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *repomocks.MockApplicationRepository
	jobSvc   *jobmocks.MockService
	refGen   *appmocks.MockRefGenerator
	producer *evtmocks.MockApplicationEventProducer
}

func newTestService(ctrl *gomock.Controller) (*applicationService, mocks) {
	m := mocks{
		repo:     repomocks.NewMockApplicationRepository(ctrl),
		jobSvc:   jobmocks.NewMockService(ctrl),
		refGen:   appmocks.NewMockRefGenerator(ctrl),
		producer: evtmocks.NewMockApplicationEventProducer(ctrl),
	}
	svc := NewService(m.repo, m.jobSvc, m.refGen, m.producer).(*applicationService)
	svc.now = func() time.Time {
		return time.UnixMilli(1_700_000_000_000)
	}
	return svc, m
}

var (
	hr        = domain.Actor{ID: 1, Role: domain.RoleHR}
	manager   = domain.Actor{ID: 2, Role: domain.RoleHiringManager}
	applicant = domain.Actor{ID: 100, Role: domain.RoleApplicant}
)

func TestApplicationService_Submit(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.Application
		wantErr error
	}{
		{
			name: "投递成功",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Title: "Go 工程师", Status: job.StatusPublished}, nil)
				m.refGen.EXPECT().Generate().Return("APP-1700000000000-7KQ2M9XA", nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Application{
					Ref:           "APP-1700000000000-7KQ2M9XA",
					JobID:         7,
					JobTitle:      "Go 工程师",
					ApplicantID:   100,
					ApplicantName: "Ada",
					Status:        domain.StatusSubmitted,
					SubmittedAt:   now.UnixMilli(),
				}).Return(int64(11), nil)
			},
			want: domain.Application{
				ID:            11,
				Ref:           "APP-1700000000000-7KQ2M9XA",
				JobID:         7,
				JobTitle:      "Go 工程师",
				ApplicantID:   100,
				ApplicantName: "Ada",
				Status:        domain.StatusSubmitted,
				SubmittedAt:   now.UnixMilli(),
			},
		},
		{
			name: "岗位不存在",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "岗位已关闭",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Status: job.StatusClosed}, nil)
			},
			wantErr: job.ErrNotLive,
		},
		{
			name: "岗位已过截止日期",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Status: job.StatusPublished, ApplicationDeadline: now.Add(-time.Minute).UnixMilli()}, nil)
			},
			wantErr: job.ErrPastDeadline,
		},
		{
			name: "重复投递",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Status: job.StatusPublished, ApplicationDeadline: now.Add(time.Hour).UnixMilli()}, nil)
				m.refGen.EXPECT().Generate().Return("APP-1700000000000-7KQ2M9XA", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), ErrDuplicateApplication)
			},
			wantErr: ErrDuplicateApplication,
		},
		{
			name: "编号冲突换编号重试",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Title: "Go 工程师", Status: job.StatusPublished}, nil)
				gomock.InOrder(
					m.refGen.EXPECT().Generate().Return("APP-1700000000000-AAAAAAAA", nil),
					m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicateRef),
					m.refGen.EXPECT().Generate().Return("APP-1700000000000-BBBBBBBB", nil),
					m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil),
				)
			},
			want: domain.Application{
				ID:            12,
				Ref:           "APP-1700000000000-BBBBBBBB",
				JobID:         7,
				JobTitle:      "Go 工程师",
				ApplicantID:   100,
				ApplicantName: "Ada",
				Status:        domain.StatusSubmitted,
				SubmittedAt:   now.UnixMilli(),
			},
		},
		{
			name: "编号一直冲突",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).
					Return(job.Job{ID: 7, Status: job.StatusPublished}, nil)
				m.refGen.EXPECT().Generate().Return("APP-1700000000000-AAAAAAAA", nil).Times(maxRefAttempts)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateRef).Times(maxRefAttempts)
			},
			wantErr: repository.ErrDuplicateRef,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			app, err := svc.Submit(context.Background(), domain.Application{
				JobID:         7,
				ApplicantID:   100,
				ApplicantName: "Ada",
				// 客户端传入的状态和分数都会被忽略
				Status:     domain.StatusHired,
				MatchScore: ptr[float64](99),
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, app)
		})
	}
}

func TestApplicationService_Detail(t *testing.T) {
	app := domain.Application{ID: 1, ApplicantID: applicant.ID, Status: domain.StatusSubmitted}
	testCases := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{name: "HR", actor: hr},
		{name: "招聘经理", actor: manager},
		{name: "本人", actor: applicant},
		{name: "其他候选人", actor: domain.Actor{ID: 101, Role: domain.RoleApplicant}, wantErr: domain.ErrForbidden},
		{name: "未知角色", actor: domain.Actor{ID: 1, Role: "admin"}, wantErr: domain.ErrForbidden},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(app, nil)
			_, err := svc.Detail(context.Background(), 1, tc.actor)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestApplicationService_Transit(t *testing.T) {
	underReview := domain.Application{
		ID:             1,
		Ref:            "APP-1-AAAAAAAA",
		JobID:          7,
		JobTitle:       "Go 工程师",
		ApplicantID:    100,
		ApplicantName:  "Ada",
		ApplicantEmail: "ada@example.com",
		Status:         domain.StatusUnderReview,
		Version:        3,
	}
	testCases := []struct {
		name       string
		target     domain.Status
		actor      domain.Actor
		mock       func(m mocks)
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name:   "拒绝并发送通知",
			target: domain.StatusRejected,
			actor:  hr,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil)
				m.repo.EXPECT().Transit(gomock.Any(), underReview, gomock.Any(), hr).
					DoAndReturn(func(_ context.Context, _ domain.Application, res domain.TransitionResult, _ domain.Actor) error {
						n, ok := res.Notification()
						require.True(t, ok)
						assert.Equal(t, domain.NotificationRejection, n.Type)
						assert.Equal(t, "ada@example.com", n.ToEmail)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.ApplicationStatusEvent{
					ApplicationID: 1,
					Ref:           "APP-1-AAAAAAAA",
					JobID:         7,
					JobTitle:      "Go 工程师",
					ApplicantID:   100,
					ApplicantName: "Ada",
					From:          "under_review",
					To:            "rejected",
					ActorID:       1,
					ActorRole:     "hr",
					Notification:  "rejection_email",
					Utime:         1_700_000_000_000,
				}).Return(nil)
			},
			wantStatus: domain.StatusRejected,
		},
		{
			name:   "并发修改后重试成功",
			target: domain.StatusShortlisted,
			actor:  manager,
			mock: func(m mocks) {
				fresh := underReview
				fresh.Version = 4
				gomock.InOrder(
					m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil),
					m.repo.EXPECT().Transit(gomock.Any(), underReview, gomock.Any(), manager).Return(ErrConcurrentModification),
					m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(fresh, nil),
					m.repo.EXPECT().Transit(gomock.Any(), fresh, gomock.Any(), manager).Return(nil),
				)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusShortlisted,
		},
		{
			name:   "重试之后发现已被拒绝",
			target: domain.StatusShortlisted,
			actor:  manager,
			mock: func(m mocks) {
				rejected := underReview
				rejected.Status = domain.StatusRejected
				gomock.InOrder(
					m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil),
					m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any(), manager).Return(ErrConcurrentModification),
					m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rejected, nil),
				)
			},
			wantErr: domain.ErrTerminalState,
		},
		{
			name:   "两次都冲突",
			target: domain.StatusShortlisted,
			actor:  manager,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil).Times(2)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any(), manager).
					Return(ErrConcurrentModification).Times(2)
			},
			wantErr: ErrConcurrentModification,
		},
		{
			name:   "候选人不能操作",
			target: domain.StatusShortlisted,
			actor:  applicant,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:   "缺少面试信息不写库",
			target: domain.StatusInterviewInvite,
			actor:  manager,
			mock: func(m mocks) {
				shortlisted := underReview
				shortlisted.Status = domain.StatusShortlisted
				// 没有 Transit 和 Produce 的预期，写库或者发消息都会让测试失败
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(shortlisted, nil)
			},
			wantErr: domain.ErrMissingSideEffectInput,
		},
		{
			name:   "申请不存在",
			target: domain.StatusShortlisted,
			actor:  hr,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Application{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "消息发送失败不影响结果",
			target: domain.StatusShortlisted,
			actor:  hr,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(underReview, nil)
				m.repo.EXPECT().Transit(gomock.Any(), underReview, gomock.Any(), hr).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantStatus: domain.StatusShortlisted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.mock(m)
			app, err := svc.Transit(context.Background(), 1, tc.target, tc.actor, domain.SideEffectInput{})
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, app.Status)
		})
	}
}

func TestApplicationService_BulkTransit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)

	m.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (domain.Application, error) {
			return domain.Application{ID: id, Status: domain.StatusUnderReview, Version: 1}, nil
		}).Times(6)
	m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any(), hr).
		DoAndReturn(func(_ context.Context, app domain.Application, _ domain.TransitionResult, _ domain.Actor) error {
			if app.ID == 3 {
				return ErrConcurrentModification
			}
			return nil
		}).Times(6)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	res := svc.BulkTransit(context.Background(), []int64{1, 2, 3, 4, 5}, domain.StatusShortlisted, hr)
	require.Len(t, res, 5)
	for i, r := range res {
		assert.Equal(t, int64(i+1), r.ApplicationID)
		if r.ApplicationID == 3 {
			assert.ErrorIs(t, r.Err, ErrConcurrentModification)
			continue
		}
		assert.NoError(t, r.Err)
		assert.Equal(t, domain.StatusShortlisted, r.Status)
	}
}

func TestApplicationService_ScheduleInterview(t *testing.T) {
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	input := domain.InterviewInput{ScheduledStart: start, DurationMinutes: 45, Location: "3F 会议室"}
	testCases := []struct {
		name       string
		status     domain.Status
		wantStatus domain.Status
	}{
		{name: "首次安排", status: domain.StatusShortlisted, wantStatus: domain.StatusInterviewInvite},
		{name: "追加一轮", status: domain.StatusInterviewInvite, wantStatus: domain.StatusInterviewInvite},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			app := domain.Application{ID: 1, ApplicantName: "Ada", ApplicantEmail: "ada@example.com", Status: tc.status, Version: 2}
			m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(app, nil)
			m.repo.EXPECT().Transit(gomock.Any(), app, gomock.Any(), manager).
				DoAndReturn(func(_ context.Context, _ domain.Application, res domain.TransitionResult, _ domain.Actor) error {
					in, ok := res.Interview()
					require.True(t, ok)
					assert.Equal(t, input, in.InterviewInput)
					_, ok = res.Notification()
					assert.True(t, ok)
					return nil
				})
			m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			got, err := svc.ScheduleInterview(context.Background(), 1, manager, input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, int64(3), got.Version)
		})
	}
}

func TestApplicationService_ApplicantNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.repo.EXPECT().ListByApplicant(gomock.Any(), applicant.ID).Return([]domain.Application{
		{ID: 1, Status: domain.StatusRejected},
		{ID: 2, Status: domain.StatusSubmitted},
	}, nil)
	m.repo.EXPECT().FindNotificationsByApplicant(gomock.Any(), applicant.ID).Return([]domain.Notification{
		{ID: 10, ApplicationID: 1, Type: domain.NotificationRejection, SentAt: 200},
		{ID: 9, ApplicationID: 1, Type: domain.NotificationInterview, SentAt: 100},
	}, nil)
	views, err := svc.ApplicantNotifications(context.Background(), applicant.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, int64(9), views[0].Items[0].ID)
	assert.Equal(t, int64(10), views[0].Items[1].ID)
	assert.Empty(t, views[1].Items)
}

func TestApplicationService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(ctrl)
	m.repo.EXPECT().ListAllByJob(gomock.Any(), int64(7)).Return([]domain.Application{
		{Ref: "APP-1-AAAAAAAA", JobTitle: "Go 工程师", ApplicantName: "Ada", Status: domain.StatusShortlisted, MatchScore: ptr(87.5)},
		{Ref: "APP-2-BBBBBBBB", JobTitle: "Go 工程师", ApplicantName: "Bob", Status: domain.StatusSubmitted},
	}, nil)
	data, err := svc.Export(context.Background(), 7)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "APP-1-AAAAAAAA", rows[1][0])
	assert.Equal(t, "Ada", rows[1][2])
	assert.Equal(t, domain.StatusShortlisted.Label(), rows[1][5])
	assert.Equal(t, "87.5", rows[1][6])
	assert.Equal(t, "Bob", rows[2][2])
}

func ptr[T any](v T) *T {
	return &v
}
