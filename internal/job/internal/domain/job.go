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
	"strings"
	"time"
)

var (
	ErrNotLive      = errors.New("岗位未发布或已关闭")
	ErrPastDeadline = errors.New("岗位已过截止日期")
	ErrJobLocked    = errors.New("岗位已发布或已关闭，不允许编辑")
	ErrInvalidJob   = errors.New("岗位信息不合法")
	// ErrStatusChange 例如重复发布、关闭已关闭的岗位
	ErrStatusChange = errors.New("岗位当前状态不允许该操作")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

func (e EmploymentType) IsValid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	default:
		return false
	}
}

const maxDescriptionWeight = 10

// Description 岗位描述条目，有序
type Description struct {
	Title       string
	Description string
	// Weight 0-10，用于外部匹配打分
	Weight int
}

type Job struct {
	ID                  int64
	Title               string
	Department          string
	Location            string
	EmploymentType      EmploymentType
	SalaryMin           int64
	SalaryMax           int64
	// ApplicationDeadline 毫秒，0 表示不设截止日期
	ApplicationDeadline int64
	DescriptionSummary  string
	Status              Status
	ManagedByManagerID  int64
	FormLink            string
	Descriptions        []Description
	Ctime               int64
	Utime               int64
}

// CheckOpenForApplication 只有已发布且未过截止日期的岗位才能投递。
// 草稿和已关闭的岗位不论截止日期都返回 ErrNotLive。
func (j Job) CheckOpenForApplication(now time.Time) error {
	if j.Status != StatusPublished {
		return ErrNotLive
	}
	if j.ApplicationDeadline > 0 && now.UnixMilli() > j.ApplicationDeadline {
		return ErrPastDeadline
	}
	return nil
}

func (j Job) IsOpenForApplication(now time.Time) bool {
	return j.CheckOpenForApplication(now) == nil
}

// CheckEditable 只有草稿可以编辑
func (j Job) CheckEditable() error {
	if j.Status != StatusDraft {
		return ErrJobLocked
	}
	return nil
}

func (j Job) IsEditable() bool {
	return j.CheckEditable() == nil
}

func (j Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidJob)
	}
	if j.Status != "" && !j.Status.IsValid() {
		return fmt.Errorf("%w: 未知状态 %q", ErrInvalidJob, j.Status)
	}
	if j.EmploymentType != "" && !j.EmploymentType.IsValid() {
		return fmt.Errorf("%w: 未知雇佣类型 %q", ErrInvalidJob, j.EmploymentType)
	}
	if j.SalaryMin < 0 || (j.SalaryMax > 0 && j.SalaryMin > j.SalaryMax) {
		return fmt.Errorf("%w: 薪资范围 %d-%d", ErrInvalidJob, j.SalaryMin, j.SalaryMax)
	}
	for i, d := range j.Descriptions {
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("%w: 第 %d 条描述缺少标题", ErrInvalidJob, i+1)
		}
		if d.Weight < 0 || d.Weight > maxDescriptionWeight {
			return fmt.Errorf("%w: 第 %d 条描述权重 %d 超出 0-%d", ErrInvalidJob, i+1, d.Weight, maxDescriptionWeight)
		}
	}
	return nil
}

// ApplyFormLink 岗位对外的投递链接
func ApplyFormLink(id int64) string {
	return fmt.Sprintf("/apply/apply.html?jobId=%d", id)
}
