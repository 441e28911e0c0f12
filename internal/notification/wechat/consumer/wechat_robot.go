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
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"unicode/utf8"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talentflow/internal/application"
	"github.com/ecodeclub/talentflow/internal/notification/event"
	"github.com/gotomicro/ego/core/elog"
)

// 企业微信文本消息最长 2048 字节
const maxContentBytes = 2048

type Text struct {
	Content string `json:"content"`
}
type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

type WechatRobotConfig struct {
	Webhook string `yaml:"webhook"`
	// Statuses 只推送变更到这些状态的消息，为空时全部推送
	Statuses []string `yaml:"statuses"`
}

// WechatRobotEventConsumer 把申请状态变更推送到招聘群
type WechatRobotEventConsumer struct {
	consumer mq.Consumer
	config   *WechatRobotConfig
	post     HTTPPOSTFunc
	logger   *elog.Component
}

// Validate 配置里的状态必须是申请状态，写错会导致消息永远推不出去
func (c *WechatRobotConfig) Validate() error {
	for _, s := range c.Statuses {
		if !application.Status(s).IsValid() {
			return fmt.Errorf("未知的申请状态 %q", s)
		}
	}
	return nil
}

func NewWechatRobotEventConsumer(q mq.MQ, config *WechatRobotConfig) (*WechatRobotEventConsumer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("机器人配置错误: %w", err)
	}
	groupID := "notification.wechat"
	consumer, err := q.Consumer(event.ApplicationStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &WechatRobotEventConsumer{
		consumer: consumer,
		config:   config,
		post:     http.Post,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.wechat.consumer")),
	}, nil
}

func (c *WechatRobotEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费申请状态变更事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *WechatRobotEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.ApplicationStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if len(c.config.Statuses) > 0 && !slices.Contains(c.config.Statuses, evt.To) {
		return nil
	}
	if c.config.Webhook == "" {
		return errors.New("未配置机器人地址")
	}
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(c.content(evt), maxContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化微信Robot消息失败: %w", err)
	}
	resp, err := c.post(c.config.Webhook, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("向微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

func (c *WechatRobotEventConsumer) content(evt event.ApplicationStatusEvent) string {
	res := fmt.Sprintf("【投递状态变更】%s\n岗位：%s\n候选人：%s\n状态：%s -> %s\n操作人：%s #%d",
		evt.Ref, evt.JobTitle, evt.ApplicantName, evt.From, evt.To, evt.ActorRole, evt.ActorID)
	if evt.Notification != "" {
		res += "\n已发送通知：" + evt.Notification
	}
	return res
}

// truncate 按字节截断，不会切开多字节字符
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	end := limit
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}
