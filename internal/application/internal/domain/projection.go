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
	"cmp"
	"slices"
)

type NotificationItem struct {
	Notification
	Kind  NotificationType
	Icon  string
	Title string
	// Tone 前端据此选择配色
	Tone string
}

type NotificationView struct {
	ApplicationID int64
	Status        Status
	StatusLabel   string
	Items         []NotificationItem
}

type notificationMeta struct {
	icon  string
	title string
	tone  string
}

var notificationMetas = map[NotificationType]notificationMeta{
	NotificationRejection: {icon: "❌", title: "Application Update", tone: "danger"},
	NotificationInterview: {icon: "📅", title: "Interview Invitation", tone: "info"},
	NotificationOffer:     {icon: "🎉", title: "Offer Letter", tone: "success"},
}

var genericMeta = notificationMeta{icon: "📧", title: "Notification", tone: "neutral"}

// ProjectNotifications 把通知日志转换成展示用的视图，按发送时间升序。
// 不修改入参。
func ProjectNotifications(app Application, logs []Notification) NotificationView {
	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b Notification) int {
		return cmp.Or(cmp.Compare(a.SentAt, b.SentAt), cmp.Compare(a.ID, b.ID))
	})
	items := make([]NotificationItem, 0, len(sorted))
	for _, n := range sorted {
		kind := n.Type
		meta, ok := notificationMetas[kind]
		if !ok {
			kind = NotificationGeneric
			meta = genericMeta
		}
		items = append(items, NotificationItem{
			Notification: n,
			Kind:         kind,
			Icon:         meta.icon,
			Title:        meta.title,
			Tone:         meta.tone,
		})
	}
	return NotificationView{
		ApplicationID: app.ID,
		Status:        app.Status,
		StatusLabel:   app.Status.Label(),
		Items:         items,
	}
}
