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

package web

import (
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type SubmitReq struct {
	JobID       int64  `json:"jobId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
	CVRef       string `json:"cvRef,omitempty"`
}

type ListReq struct {
	JobID    int64    `json:"jobId"`
	Statuses []string `json:"statuses,omitempty"`
	Offset   int      `json:"offset,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// page 没传 limit 时使用默认值，过大的 limit 截断到 maxPageSize
func (r ListReq) page() (offset, limit int) {
	offset, limit = max(r.Offset, 0), r.Limit
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	return offset, limit
}

type JobIDReq struct {
	JobID int64 `json:"jobId"`
}

// Interview ScheduledStart 使用 RFC3339 格式并带时区
type Interview struct {
	ID              int64  `json:"id,omitempty"`
	ScheduledStart  string `json:"scheduledStart"`
	ScheduledEnd    string `json:"scheduledEnd,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Location        string `json:"location"`
	Notes           string `json:"notes,omitempty"`
}

// toInput 没填开始时间时交给状态机判断为缺少面试信息，只有格式错误才返回 error
func (i Interview) toInput() (domain.InterviewInput, error) {
	var start time.Time
	if raw := strings.TrimSpace(i.ScheduledStart); raw != "" {
		var err error
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.InterviewInput{}, err
		}
	}
	return domain.InterviewInput{
		ScheduledStart:  start,
		DurationMinutes: i.DurationMinutes,
		Location:        i.Location,
		Notes:           i.Notes,
	}, nil
}

func newInterview(i domain.Interview) Interview {
	res := Interview{
		ID:              i.ID,
		ScheduledStart:  i.ScheduledStart.Format(time.RFC3339),
		DurationMinutes: i.DurationMinutes,
		Location:        i.Location,
		Notes:           i.Notes,
	}
	if end := i.ScheduledEnd(); !end.IsZero() {
		res.ScheduledEnd = end.Format(time.RFC3339)
	}
	return res
}

type TransitReq struct {
	ID     int64  `json:"id"`
	Target string `json:"target"`
	// Interview 流转到 interview_invite 时必填
	Interview *Interview `json:"interview,omitempty"`
	Message   string     `json:"message,omitempty"`
}

type BulkTransitReq struct {
	IDs    []int64 `json:"ids"`
	Target string  `json:"target"`
}

type BulkTransitItem struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Code   int    `json:"code"`
	Msg    string `json:"msg,omitempty"`
}

type ScheduleInterviewReq struct {
	ID        int64     `json:"id"`
	Interview Interview `json:"interview"`
}

type Application struct {
	ID             int64    `json:"id"`
	Ref            string   `json:"ref"`
	JobID          int64    `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	ApplicantID    int64    `json:"applicantId"`
	ApplicantName  string   `json:"applicantName"`
	ApplicantEmail string   `json:"applicantEmail"`
	ApplicantPhone string   `json:"applicantPhone,omitempty"`
	Status         string   `json:"status"`
	StatusLabel    string   `json:"statusLabel"`
	MatchScore     *float64 `json:"matchScore,omitempty"`
	CoverLetter    string   `json:"coverLetter,omitempty"`
	CVRef          string   `json:"cvRef,omitempty"`
	SubmittedAt    int64    `json:"submittedAt"`
	Utime          int64    `json:"utime,omitempty"`
	// NextStatuses 当前用户可以执行的流转
	NextStatuses []string `json:"nextStatuses,omitempty"`
}

func newApplication(app domain.Application) Application {
	return Application{
		ID:             app.ID,
		Ref:            app.Ref,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		ApplicantID:    app.ApplicantID,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		ApplicantPhone: app.ApplicantPhone,
		Status:         app.Status.String(),
		StatusLabel:    app.Status.Label(),
		MatchScore:     app.MatchScore,
		CoverLetter:    app.CoverLetter,
		CVRef:          app.CVRef,
		SubmittedAt:    app.SubmittedAt,
		Utime:          app.Utime,
	}
}

func newApplications(apps []domain.Application) []Application {
	return slice.Map(apps, func(_ int, src domain.Application) Application {
		return newApplication(src)
	})
}

func toStatuses(src []string) []domain.Status {
	return slice.Map(src, func(_ int, s string) domain.Status {
		return domain.Status(s)
	})
}

func toStrings(src []domain.Status) []string {
	return slice.Map(src, func(_ int, s domain.Status) string {
		return s.String()
	})
}

type ApplicationList struct {
	Total int64         `json:"total"`
	List  []Application `json:"list"`
}

type NotificationItem struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Tone    string `json:"tone"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	SentAt  int64  `json:"sentAt"`
}

type NotificationView struct {
	ApplicationID int64              `json:"applicationId"`
	Status        string             `json:"status"`
	StatusLabel   string             `json:"statusLabel"`
	Items         []NotificationItem `json:"items"`
}

func newNotificationView(v domain.NotificationView) NotificationView {
	return NotificationView{
		ApplicationID: v.ApplicationID,
		Status:        v.Status.String(),
		StatusLabel:   v.StatusLabel,
		Items: slice.Map(v.Items, func(_ int, src domain.NotificationItem) NotificationItem {
			return NotificationItem{
				ID:      src.ID,
				Kind:    src.Kind.String(),
				Icon:    src.Icon,
				Title:   src.Title,
				Tone:    src.Tone,
				Subject: src.Subject,
				Body:    src.Body,
				SentAt:  src.SentAt,
			}
		}),
	}
}
