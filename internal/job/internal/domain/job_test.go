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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_CheckOpenForApplication(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	past := now.Add(-time.Hour).UnixMilli()
	future := now.Add(time.Hour).UnixMilli()
	testCases := []struct {
		name    string
		job     Job
		wantErr error
	}{
		{name: "已发布未过期", job: Job{Status: StatusPublished, ApplicationDeadline: future}},
		{name: "已发布不设截止日期", job: Job{Status: StatusPublished}},
		{name: "截止时间当刻仍可投递", job: Job{Status: StatusPublished, ApplicationDeadline: now.UnixMilli()}},
		{name: "已发布已过期", job: Job{Status: StatusPublished, ApplicationDeadline: past}, wantErr: ErrPastDeadline},
		{name: "草稿未过期", job: Job{Status: StatusDraft, ApplicationDeadline: future}, wantErr: ErrNotLive},
		{name: "草稿已过期", job: Job{Status: StatusDraft, ApplicationDeadline: past}, wantErr: ErrNotLive},
		{name: "已关闭", job: Job{Status: StatusClosed, ApplicationDeadline: future}, wantErr: ErrNotLive},
		{name: "已关闭已过期", job: Job{Status: StatusClosed, ApplicationDeadline: past}, wantErr: ErrNotLive},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.job.CheckOpenForApplication(now)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantErr == nil, tc.job.IsOpenForApplication(now))
		})
	}
}

func TestJob_CheckEditable(t *testing.T) {
	assert.NoError(t, Job{Status: StatusDraft}.CheckEditable())
	assert.ErrorIs(t, Job{Status: StatusPublished}.CheckEditable(), ErrJobLocked)
	assert.ErrorIs(t, Job{Status: StatusClosed}.CheckEditable(), ErrJobLocked)
	assert.False(t, Job{Status: StatusPublished}.IsEditable())
}

func TestJob_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		job     Job
		wantErr error
	}{
		{
			name: "合法",
			job: Job{Title: "Go 工程师", SalaryMin: 10, SalaryMax: 20, EmploymentType: EmploymentFullTime,
				Descriptions: []Description{{Title: "职责", Weight: 0}, {Title: "要求", Weight: 10}}},
		},
		{name: "缺少标题", job: Job{Title: "  "}, wantErr: ErrInvalidJob},
		{name: "薪资范围颠倒", job: Job{Title: "a", SalaryMin: 30, SalaryMax: 20}, wantErr: ErrInvalidJob},
		{name: "未知雇佣类型", job: Job{Title: "a", EmploymentType: "freelance"}, wantErr: ErrInvalidJob},
		{name: "未知状态", job: Job{Title: "a", Status: "archived"}, wantErr: ErrInvalidJob},
		{name: "权重超出范围", job: Job{Title: "a", Descriptions: []Description{{Title: "x", Weight: 11}}}, wantErr: ErrInvalidJob},
		{name: "权重为负", job: Job{Title: "a", Descriptions: []Description{{Title: "x", Weight: -1}}}, wantErr: ErrInvalidJob},
		{name: "描述缺少标题", job: Job{Title: "a", Descriptions: []Description{{Weight: 1}}}, wantErr: ErrInvalidJob},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.job.Validate(), tc.wantErr)
		})
	}
}

func TestApplyFormLink(t *testing.T) {
	assert.Equal(t, "/apply/apply.html?jobId=42", ApplyFormLink(42))
}
