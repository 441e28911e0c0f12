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

import "time"

// Application 候选人针对某个岗位的一次投递，也是聚合根。
// 面试和通知都归属于它，没有独立的生命周期。
type Application struct {
	ID             int64
	Ref            string
	JobID          int64
	JobTitle       string
	ApplicantID    int64
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	Status         Status
	// MatchScore 由外部系统计算，0-100，nil 表示尚未打分
	MatchScore  *float64
	CoverLetter string
	CVRef       string
	SubmittedAt int64
	Version     int64
	Utime       int64
}

// IsOwnedBy 候选人只能看到自己的投递
func (a Application) IsOwnedBy(uid int64) bool {
	return a.ApplicantID == uid
}

type Interview struct {
	ID              int64
	ApplicationID   int64
	JobID           int64
	ScheduledStart  time.Time
	DurationMinutes int
	Location        string
	Notes           string
	CreatedBy       int64
	Ctime           int64
}

// ScheduledEnd 没有设置时长时返回零值
func (i Interview) ScheduledEnd() time.Time {
	if i.DurationMinutes <= 0 {
		return time.Time{}
	}
	return i.ScheduledStart.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// Notification 只追加，不修改也不删除
type Notification struct {
	ID            int64
	ApplicationID int64
	Type          NotificationType
	ToEmail       string
	Subject       string
	Body          string
	SentAt        int64
	CreatedBy     int64
}

// BulkTransitResult 批量变更里单个申请的结果，Err 为 nil 表示成功
type BulkTransitResult struct {
	ApplicationID int64
	// Status 成功时为变更后的状态
	Status Status
	Err    error
}
