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
	"testing"
	"time"

	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job/internal/repository"
	repomocks "github.com/ecodeclub/talentflow/internal/job/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.JobRepository
		job     domain.Job
		wantID  int64
		wantErr error
	}{
		{
			name: "默认草稿",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Job{Title: "Go", Status: domain.StatusDraft}).Return(int64(3), nil)
				return repo
			},
			job:    domain.Job{Title: "Go"},
			wantID: 3,
		},
		{
			name: "直接发布",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Job{Title: "Go", Status: domain.StatusPublished}).Return(int64(4), nil)
				return repo
			},
			job:    domain.Job{Title: "Go", Status: domain.StatusPublished},
			wantID: 4,
		},
		{
			name: "不能创建已关闭岗位",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			job:     domain.Job{Title: "Go", Status: domain.StatusClosed},
			wantErr: domain.ErrStatusChange,
		},
		{
			name: "权重不合法",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			job:     domain.Job{Title: "Go", Descriptions: []domain.Description{{Title: "x", Weight: 12}}},
			wantErr: domain.ErrInvalidJob,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Create(context.Background(), tc.job)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestJobService_Update(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.JobRepository
		wantErr error
	}{
		{
			name: "草稿可以编辑",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Status: domain.StatusDraft}, nil)
				repo.EXPECT().UpdateDraft(gomock.Any(), domain.Job{ID: 1, Title: "新标题", Status: domain.StatusDraft}).Return(nil)
				return repo
			},
		},
		{
			name: "已发布不能编辑",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Status: domain.StatusPublished}, nil)
				return repo
			},
			wantErr: domain.ErrJobLocked,
		},
		{
			name: "已关闭不能编辑",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Status: domain.StatusClosed}, nil)
				return repo
			},
			wantErr: domain.ErrJobLocked,
		},
		{
			name: "读取之后被发布",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Status: domain.StatusDraft}, nil)
				repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(repository.ErrStatusMismatch)
				return repo
			},
			wantErr: domain.ErrJobLocked,
		},
		{
			name: "岗位不存在",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{}, repository.ErrJobNotFound)
				return repo
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Update(context.Background(), domain.Job{ID: 1, Title: "新标题"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestJobService_PublishAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Title: "Go", Status: domain.StatusDraft}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusDraft, domain.StatusPublished).Return(nil)
	require.NoError(t, svc.Publish(context.Background(), 1))

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Title: "Go", Status: domain.StatusPublished}, nil)
	err := svc.Publish(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStatusChange)

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Title: "Go", Status: domain.StatusPublished}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusPublished, domain.StatusClosed).Return(nil)
	require.NoError(t, svc.Close(context.Background(), 1))

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Job{ID: 1, Title: "Go", Status: domain.StatusClosed}, nil)
	err = svc.Close(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStatusChange)
}

func TestJobService_ApplyInfo(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		name    string
		job     domain.Job
		wantErr error
	}{
		{
			name: "可以投递",
			job:  domain.Job{ID: 1, Status: domain.StatusPublished, ApplicationDeadline: now.Add(time.Hour).UnixMilli()},
		},
		{
			name:    "草稿",
			job:     domain.Job{ID: 1, Status: domain.StatusDraft},
			wantErr: domain.ErrNotLive,
		},
		{
			name:    "过期",
			job:     domain.Job{ID: 1, Status: domain.StatusPublished, ApplicationDeadline: now.Add(-time.Hour).UnixMilli()},
			wantErr: domain.ErrPastDeadline,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockJobRepository(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tc.job, nil)
			job, err := NewService(repo).ApplyInfo(context.Background(), 1, now)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.job, job)
		})
	}
}

func TestJobService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), 0, 2).Return([]domain.Job{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().Count(gomock.Any()).Return(int64(5), nil)
	jobs, total, err := NewService(repo).List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, int64(5), total)

	repo.EXPECT().ListByManager(gomock.Any(), int64(9), 0, 2).Return(nil, nil)
	repo.EXPECT().CountByManager(gomock.Any(), int64(9)).Return(int64(0), errors.New("mock db error"))
	_, _, err = NewService(repo).ListByManager(context.Background(), 9, 0, 2)
	assert.Error(t, err)
}

func TestJobService_CloseExpired(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().FindExpired(gomock.Any(), now.UnixMilli(), 2).
			Return([]domain.Job{{ID: 1}, {ID: 2}}, nil),
		repo.EXPECT().CloseExpired(gomock.Any(), []int64{1, 2}, now.UnixMilli()).Return(int64(2), nil),
		repo.EXPECT().FindExpired(gomock.Any(), now.UnixMilli(), 2).
			Return([]domain.Job{{ID: 3}}, nil),
		repo.EXPECT().CloseExpired(gomock.Any(), []int64{3}, now.UnixMilli()).Return(int64(1), nil),
	)
	closed, err := NewService(repo).CloseExpired(context.Background(), now, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), closed)
}
