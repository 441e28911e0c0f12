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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talentflow/internal/job/internal/domain"
	"github.com/ecodeclub/talentflow/internal/job/internal/service"
	"github.com/ecodeclub/talentflow/internal/pkg/identity"
	"github.com/ecodeclub/talentflow/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 投递页面不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/apply-info", ginx.B[IDReq](h.ApplyInfo))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/detail", ginx.B[IDReq](h.Detail))

	staff := server.Group("/jobs",
		middleware.NewCheckRoleMiddlewareBuilder(identity.RoleHR, identity.RoleHiringManager).Build())
	staff.POST("/list", ginx.BS[Page](h.List))

	hr := server.Group("/jobs", middleware.NewCheckRoleMiddlewareBuilder(identity.RoleHR).Build())
	hr.POST("/save", ginx.B[SaveJobReq](h.Save))
	hr.POST("/publish", ginx.B[IDReq](h.Publish))
	hr.POST("/close", ginx.B[IDReq](h.Close))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveJobReq) (ginx.Result, error) {
	job := req.Job.toDomain()
	if job.ID > 0 {
		err := h.svc.Update(ctx.Request.Context(), job)
		if err != nil {
			return h.errorResult(err), err
		}
		return ginx.Result{Data: job.ID}, nil
	}
	id, err := h.svc.Create(ctx.Request.Context(), job)
	if err != nil {
		return h.errorResult(err), err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Publish(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Publish(ctx.Request.Context(), req.ID)
	if err != nil {
		return h.errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Close(ctx.Request.Context(), req.ID)
	if err != nil {
		return h.errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	job, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		return h.errorResult(err), err
	}
	return ginx.Result{Data: newJob(job)}, nil
}

func (h *Handler) ApplyInfo(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	job, err := h.svc.ApplyInfo(ctx.Request.Context(), req.ID, time.Now())
	switch {
	case err == nil:
		return ginx.Result{Data: ApplyInfo{Job: newJob(job), Open: true}}, nil
	case errors.Is(err, domain.ErrNotLive), errors.Is(err, domain.ErrPastDeadline):
		// 页面需要展示岗位信息
		res := h.errorResult(err)
		res.Data = ApplyInfo{Job: newJob(job)}
		return res, nil
	default:
		return h.errorResult(err), err
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	u := identity.FromSession(sess)
	offset, limit := req.normalize()
	var (
		jobs  []domain.Job
		total int64
		err   error
	)
	if u.Is(identity.RoleHR) {
		jobs, total, err = h.svc.List(ctx.Request.Context(), offset, limit)
	} else {
		jobs, total, err = h.svc.ListByManager(ctx.Request.Context(), u.ID, offset, limit)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取岗位列表失败: %w", err)
	}
	return ginx.Result{
		Data: JobList{
			Total: total,
			List: slice.Map(jobs, func(_ int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *Handler) errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult
	case errors.Is(err, domain.ErrJobLocked):
		return jobLockedResult
	case errors.Is(err, domain.ErrNotLive):
		return jobNotLiveResult
	case errors.Is(err, domain.ErrPastDeadline):
		return jobPastDeadlineResult
	case errors.Is(err, domain.ErrInvalidJob):
		return invalidJobResult
	case errors.Is(err, domain.ErrStatusChange):
		return jobStatusChangeResult
	default:
		return systemErrorResult
	}
}
