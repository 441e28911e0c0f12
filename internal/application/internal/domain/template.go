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
	"bytes"
	"fmt"
	"text/template"
	"time"
)

type notificationTemplate struct {
	subject *template.Template
	body    *template.Template
}

type templateData struct {
	ApplicantName string
	JobTitle      string
	Start         string
	Duration      int
	Location      string
	Message       string
}

var notificationTemplates = map[NotificationType]notificationTemplate{
	NotificationRejection: {
		subject: template.Must(template.New("rejection.subject").Parse(
			`Application Update - {{.JobTitle}}`)),
		body: template.Must(template.New("rejection.body").Parse(
			`Dear {{.ApplicantName}},

Thank you for your interest in the {{.JobTitle}} position. After careful consideration, we have decided not to move forward with your application.
{{if .Message}}
{{.Message}}
{{end}}
Best regards,
TalentFlow Recruiting`)),
	},
	NotificationInterview: {
		subject: template.Must(template.New("interview.subject").Parse(
			`Interview Scheduled - Job Application`)),
		body: template.Must(template.New("interview.body").Parse(
			`Dear {{.ApplicantName}},

Your interview for {{.JobTitle}} has been scheduled.

Details:
Date: {{.Start}}
{{if .Duration}}Duration: {{.Duration}} minutes
{{end}}Location: {{.Location}}
{{if .Message}}
{{.Message}}
{{end}}
Good luck!`)),
	},
	NotificationOffer: {
		subject: template.Must(template.New("offer.subject").Parse(
			`Offer Letter - {{.JobTitle}}`)),
		body: template.Must(template.New("offer.body").Parse(
			`Dear {{.ApplicantName}},

Congratulations! We are delighted to offer you the {{.JobTitle}} position. Our HR team will contact you shortly with the details.
{{if .Message}}
{{.Message}}
{{end}}
Best regards,
TalentFlow Recruiting`)),
	},
}

func renderNotification(typ NotificationType, app Application, input SideEffectInput) (CreateNotification, error) {
	tmpl, ok := notificationTemplates[typ]
	if !ok {
		return CreateNotification{}, fmt.Errorf("未定义的通知模板 %s", typ)
	}
	data := templateData{
		ApplicantName: app.ApplicantName,
		JobTitle:      app.JobTitle,
		Message:       input.Message,
	}
	if data.ApplicantName == "" {
		data.ApplicantName = "Applicant"
	}
	if data.JobTitle == "" {
		data.JobTitle = "the position"
	}
	if input.Interview != nil {
		data.Start = input.Interview.ScheduledStart.Format(time.RFC1123Z)
		data.Duration = input.Interview.DurationMinutes
		data.Location = input.Interview.Location
	}
	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return CreateNotification{}, fmt.Errorf("渲染通知标题失败: %w", err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return CreateNotification{}, fmt.Errorf("渲染通知正文失败: %w", err)
	}
	return CreateNotification{
		Type:    typ,
		ToEmail: app.ApplicantEmail,
		Subject: subject.String(),
		Body:    body.String(),
	}, nil
}
