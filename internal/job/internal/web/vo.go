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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (p Page) normalize() (offset, limit int) {
	offset, limit = max(p.Offset, 0), p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	return offset, min(limit, maxPageSize)
}

type Description struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

type Job struct {
	ID                  int64         `json:"id,omitempty"`
	Title               string        `json:"title"`
	Department          string        `json:"department,omitempty"`
	Location            string        `json:"location,omitempty"`
	EmploymentType      string        `json:"employmentType,omitempty"`
	SalaryMin           int64         `json:"salaryMin,omitempty"`
	SalaryMax           int64         `json:"salaryMax,omitempty"`
	ApplicationDeadline int64         `json:"applicationDeadline,omitempty"`
	DescriptionSummary  string        `json:"descriptionSummary,omitempty"`
	Status              string        `json:"status,omitempty"`
	ManagedByManagerID  int64         `json:"managedByManagerId,omitempty"`
	FormLink            string        `json:"formLink,omitempty"`
	Descriptions        []Description `json:"descriptions,omitempty"`
	Utime               int64         `json:"utime,omitempty"`
}

func newJob(j domain.Job) Job {
	return Job{
		ID:                  j.ID,
		Title:               j.Title,
		Department:          j.Department,
		Location:            j.Location,
		EmploymentType:      string(j.EmploymentType),
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		ApplicationDeadline: j.ApplicationDeadline,
		DescriptionSummary:  j.DescriptionSummary,
		Status:              j.Status.String(),
		ManagedByManagerID:  j.ManagedByManagerID,
		FormLink:            j.FormLink,
		Descriptions: slice.Map(j.Descriptions, func(_ int, src domain.Description) Description {
			return Description{
				Title:       src.Title,
				Description: src.Description,
				Weight:      src.Weight,
			}
		}),
		Utime: j.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:                  j.ID,
		Title:               j.Title,
		Department:          j.Department,
		Location:            j.Location,
		EmploymentType:      domain.EmploymentType(j.EmploymentType),
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		ApplicationDeadline: j.ApplicationDeadline,
		DescriptionSummary:  j.DescriptionSummary,
		Status:              domain.Status(j.Status),
		ManagedByManagerID:  j.ManagedByManagerID,
		Descriptions: slice.Map(j.Descriptions, func(_ int, src Description) domain.Description {
			return domain.Description{
				Title:       src.Title,
				Description: src.Description,
				Weight:      src.Weight,
			}
		}),
	}
}

type SaveJobReq struct {
	Job Job `json:"job"`
}

type JobList struct {
	Total int64 `json:"total"`
	List  []Job `json:"list"`
}

// ApplyInfo 投递页面需要的岗位信息
type ApplyInfo struct {
	Job  Job  `json:"job"`
	Open bool `json:"open"`
}
