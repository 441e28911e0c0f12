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

package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/talentflow/internal/notification/event"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWechatRobotEventConsumer_Consume(t *testing.T) {
	evt := event.ApplicationStatusEvent{
		ApplicationID: 1,
		Ref:           "APP-1700000000000-7KQ2M9XA",
		JobTitle:      "Go 工程师",
		ApplicantName: "Ada",
		From:          "under_review",
		To:            "rejected",
		ActorID:       1,
		ActorRole:     "hr",
		Notification:  "rejection_email",
	}
	testCases := []struct {
		name       string
		statuses   []string
		statusCode int
		wantPosted bool
		wantErr    bool
	}{
		{name: "推送成功", statusCode: http.StatusOK, wantPosted: true},
		{name: "状态不在推送范围", statuses: []string{"hired"}, statusCode: http.StatusOK},
		{name: "微信返回错误", statusCode: http.StatusBadGateway, wantPosted: true, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got WechatRobotMessage
			posted := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				posted = true
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &got))
				w.WriteHeader(tc.statusCode)
			}))
			defer server.Close()

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), event.ApplicationStatusEventName, 1))
			c, err := NewWechatRobotEventConsumer(q, &WechatRobotConfig{Webhook: server.URL, Statuses: tc.statuses})
			require.NoError(t, err)
			producer, err := q.Producer(event.ApplicationStatusEventName)
			require.NoError(t, err)
			data, err := json.Marshal(evt)
			require.NoError(t, err)
			_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantPosted, posted)
			if !tc.wantPosted {
				return
			}
			assert.Equal(t, "text", got.MsgType)
			assert.Contains(t, got.Text.Content, "APP-1700000000000-7KQ2M9XA")
			assert.Contains(t, got.Text.Content, "under_review -> rejected")
		})
	}
}

func TestWechatRobotEventConsumer_InvalidMessage(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.ApplicationStatusEventName, 1))
	c, err := NewWechatRobotEventConsumer(q, &WechatRobotConfig{Webhook: "http://localhost:0"})
	require.NoError(t, err)
	producer, err := q.Producer(event.ApplicationStatusEventName)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: []byte("invalid msg")})
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, c.Consume(ctx))
}

func TestWechatRobotConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []string
		wantErr  bool
	}{
		{name: "不过滤"},
		{name: "合法状态", statuses: []string{"interview_invite", "offered", "hired", "rejected"}},
		{name: "通知类型不是状态", statuses: []string{"offer"}, wantErr: true},
		{name: "拼写错误", statuses: []string{"hried"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &WechatRobotConfig{Webhook: "http://localhost:0", Statuses: tc.statuses}
			assert.Equal(t, tc.wantErr, cfg.Validate() != nil)
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), event.ApplicationStatusEventName, 1))
			_, err := NewWechatRobotEventConsumer(q, cfg)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

// 本地配置里的机器人要能收到发 offer 的消息
func TestWechatRobotEventConsumer_LocalConfigOffered(t *testing.T) {
	content, err := os.ReadFile("../../../../config/local.yaml")
	require.NoError(t, err)
	require.NoError(t, econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal))
	var cfg WechatRobotConfig
	require.NoError(t, econf.UnmarshalKey("notification.robot", &cfg))
	require.NoError(t, cfg.Validate())

	posted := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	cfg.Webhook = server.URL

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.ApplicationStatusEventName, 1))
	c, err := NewWechatRobotEventConsumer(q, &cfg)
	require.NoError(t, err)
	producer, err := q.Producer(event.ApplicationStatusEventName)
	require.NoError(t, err)
	data, err := json.Marshal(event.ApplicationStatusEvent{
		ApplicationID: 2,
		From:          "interview_invite",
		To:            "offered",
		ActorRole:     "hr",
		Notification:  "offer",
	})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
	assert.True(t, posted)
}
