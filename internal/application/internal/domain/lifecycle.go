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
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrIllegalTransition = errors.New("非法的状态变更")
	// ErrTerminalState 是 ErrIllegalTransition 的特例，errors.Is 两者都成立
	ErrTerminalState          = fmt.Errorf("%w: 申请已处于终态", ErrIllegalTransition)
	ErrForbidden              = errors.New("当前角色无权执行该操作")
	ErrMissingSideEffectInput = errors.New("缺少面试安排信息")
)

type edge struct {
	from Status
	to   Status
}

type rule struct {
	roles []Role
	// notification 为空表示不发通知
	notification NotificationType
	interview    bool
}

var (
	reviewers = []Role{RoleHR, RoleHiringManager}
	hrOnly    = []Role{RoleHR}
	managers  = []Role{RoleHiringManager}
)

// transitions 是唯一的状态流转表，所有页面都基于它来判断可执行的操作
var transitions = map[edge]rule{
	{StatusSubmitted, StatusUnderReview}:       {roles: reviewers},
	{StatusUnderReview, StatusShortlisted}:     {roles: reviewers},
	{StatusUnderReview, StatusRejected}:        {roles: reviewers, notification: NotificationRejection},
	{StatusShortlisted, StatusInterviewInvite}: {roles: managers, notification: NotificationInterview, interview: true},
	{StatusShortlisted, StatusRejected}:        {roles: reviewers, notification: NotificationRejection},
	{StatusInterviewInvite, StatusOffered}:     {roles: reviewers, notification: NotificationOffer},
	{StatusInterviewInvite, StatusRejected}:    {roles: reviewers, notification: NotificationRejection},
	{StatusOffered, StatusHired}:               {roles: hrOnly},
	{StatusOffered, StatusRejected}:            {roles: hrOnly, notification: NotificationRejection},
}

// InterviewInput 安排面试需要的信息
type InterviewInput struct {
	ScheduledStart  time.Time
	DurationMinutes int
	Location        string
	Notes           string
}

func (i InterviewInput) complete() bool {
	return !i.ScheduledStart.IsZero() && strings.TrimSpace(i.Location) != ""
}

// SideEffectInput 状态变更附带的输入，只有部分流转会用到
type SideEffectInput struct {
	Interview *InterviewInput
	// Message 附加在通知正文末尾，可以为空
	Message string
}

// SideEffect 状态变更产生的命令，由调用方在同一个事务里落库
type SideEffect interface {
	sideEffect()
}

type CreateNotification struct {
	Type    NotificationType
	ToEmail string
	Subject string
	Body    string
}

func (CreateNotification) sideEffect() {}

type CreateInterview struct {
	InterviewInput
}

func (CreateInterview) sideEffect() {}

type TransitionResult struct {
	From    Status
	To      Status
	Effects []SideEffect
}

// Notification 没有通知命令时返回 false
func (r TransitionResult) Notification() (CreateNotification, bool) {
	for _, e := range r.Effects {
		if n, ok := e.(CreateNotification); ok {
			return n, true
		}
	}
	return CreateNotification{}, false
}

// Interview 没有面试命令时返回 false
func (r TransitionResult) Interview() (CreateInterview, bool) {
	for _, e := range r.Effects {
		if i, ok := e.(CreateInterview); ok {
			return i, true
		}
	}
	return CreateInterview{}, false
}

// AttemptTransition 判断状态变更是否合法，并给出需要执行的副作用。
// 纯函数，不做任何 I/O。同一个合法变更调用两次，第二次会因为状态已经变化而失败。
func AttemptTransition(app Application, target Status, actor Actor, input SideEffectInput) (TransitionResult, error) {
	if app.Status.IsTerminal() {
		return TransitionResult{}, fmt.Errorf("%w, current=%s", ErrTerminalState, app.Status)
	}
	if !target.IsValid() {
		return TransitionResult{}, fmt.Errorf("%w: 未知的目标状态 %q", ErrIllegalTransition, target)
	}
	r, ok := transitions[edge{from: app.Status, to: target}]
	if !ok {
		return TransitionResult{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, app.Status, target)
	}
	if !actor.Role.IsValid() || !slices.Contains(r.roles, actor.Role) {
		return TransitionResult{}, fmt.Errorf("%w: role=%q, %s -> %s", ErrForbidden, actor.Role, app.Status, target)
	}
	if r.interview && (input.Interview == nil || !input.Interview.complete()) {
		return TransitionResult{}, ErrMissingSideEffectInput
	}

	res := TransitionResult{From: app.Status, To: target}
	if r.interview {
		res.Effects = append(res.Effects, CreateInterview{InterviewInput: *input.Interview})
	}
	if r.notification != "" {
		n, err := renderNotification(r.notification, app, input)
		if err != nil {
			return TransitionResult{}, err
		}
		res.Effects = append(res.Effects, n)
	}
	return res, nil
}

// PlanInterview 安排面试。
// shortlisted 状态下等价于流转到 interview_invite；
// 已经是 interview_invite 时只追加一轮面试和一条邀请通知，状态不变。
func PlanInterview(app Application, actor Actor, input InterviewInput) (TransitionResult, error) {
	if app.Status != StatusInterviewInvite {
		if app.Status != StatusShortlisted && !app.Status.IsTerminal() {
			return TransitionResult{}, fmt.Errorf("%w: 当前状态 %s 不能安排面试", ErrIllegalTransition, app.Status)
		}
		return AttemptTransition(app, StatusInterviewInvite, actor, SideEffectInput{Interview: &input})
	}
	r := transitions[edge{from: StatusShortlisted, to: StatusInterviewInvite}]
	if !slices.Contains(r.roles, actor.Role) {
		return TransitionResult{}, fmt.Errorf("%w: role=%q 不能安排面试", ErrForbidden, actor.Role)
	}
	if !input.complete() {
		return TransitionResult{}, ErrMissingSideEffectInput
	}
	n, err := renderNotification(NotificationInterview, app, SideEffectInput{Interview: &input})
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{
		From:    app.Status,
		To:      app.Status,
		Effects: []SideEffect{CreateInterview{InterviewInput: input}, n},
	}, nil
}

// NextStatuses 某个角色在当前状态下可以执行的流转，按流转表顺序稳定输出
func NextStatuses(current Status, role Role) []Status {
	res := make([]Status, 0, 2)
	for _, to := range []Status{
		StatusUnderReview, StatusShortlisted, StatusInterviewInvite,
		StatusOffered, StatusHired, StatusRejected,
	} {
		r, ok := transitions[edge{from: current, to: to}]
		if ok && slices.Contains(r.roles, role) {
			res = append(res, to)
		}
	}
	return res
}
