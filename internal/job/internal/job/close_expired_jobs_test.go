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
	"errors"
	"testing"
	"time"

	jobmocks "github.com/ecodeclub/talentflow/internal/job/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredJobsJob_Run(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		name    string
		mock    func(svc *jobmocks.MockService)
		wantErr bool
	}{
		{
			name: "成功",
			mock: func(svc *jobmocks.MockService) {
				svc.EXPECT().CloseExpired(gomock.Any(), now, 100).Return(int64(3), nil)
			},
		},
		{
			name: "失败",
			mock: func(svc *jobmocks.MockService) {
				svc.EXPECT().CloseExpired(gomock.Any(), now, 100).Return(int64(0), errors.New("mock db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := jobmocks.NewMockService(ctrl)
			tc.mock(svc)
			j := NewCloseExpiredJobsJob(svc, 100)
			j.now = func() time.Time { return now }
			assert.Equal(t, "CloseExpiredJobsJob", j.Name())
			err := j.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
