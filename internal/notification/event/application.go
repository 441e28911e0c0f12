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

package event

const ApplicationStatusEventName = "application_status_events"

// ApplicationStatusEvent 申请状态变更成功后发出
type ApplicationStatusEvent struct {
	ApplicationID  int64  `json:"applicationId"`
	Ref            string `json:"ref"`
	JobID          int64  `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	ApplicantID    int64  `json:"applicantId"`
	ApplicantName  string `json:"applicantName"`
	From           string `json:"from"`
	To             string `json:"to"`
	ActorID        int64  `json:"actorId"`
	ActorRole      string `json:"actorRole"`
	// Notification 本次变更写入的通知类型，没有则为空
	Notification string `json:"notification,omitempty"`
	Utime        int64  `json:"utime"`
}
