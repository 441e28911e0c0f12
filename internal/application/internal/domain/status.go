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

// Status 申请的状态。取值是前端、HR 看板、候选人页面共用的词汇，改名即破坏契约。
type Status string

const (
	StatusSubmitted       Status = "submitted"
	StatusUnderReview     Status = "under_review"
	StatusShortlisted     Status = "shortlisted"
	StatusInterviewInvite Status = "interview_invite"
	StatusOffered         Status = "offered"
	StatusRejected        Status = "rejected"
	StatusHired           Status = "hired"
)

var statusLabels = map[Status]string{
	StatusSubmitted:       "Submitted",
	StatusUnderReview:     "Under Review",
	StatusShortlisted:     "Shortlisted",
	StatusInterviewInvite: "Interview Invite",
	StatusOffered:         "Offered",
	StatusRejected:        "Rejected",
	StatusHired:           "Hired",
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal rejected 和 hired 之后不允许任何状态变更
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusHired
}

func (s Status) String() string {
	return string(s)
}

// Label 展示用的名字
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Role 发起状态变更的角色
type Role string

const (
	RoleApplicant     Role = "applicant"
	RoleHiringManager Role = "hiring_manager"
	RoleHR            Role = "hr"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleHiringManager, RoleHR:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor 当前操作人
type Actor struct {
	ID   int64
	Role Role
}

// NotificationType 通知类型
type NotificationType string

const (
	NotificationRejection NotificationType = "rejection_email"
	NotificationInterview NotificationType = "interview_invite"
	NotificationOffer     NotificationType = "offer"
	NotificationGeneric   NotificationType = "generic"
)

func (t NotificationType) String() string {
	return string(t)
}
