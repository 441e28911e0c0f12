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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/service"
	"github.com/ecodeclub/talentflow/internal/pkg/identity"
	"github.com/ecodeclub/talentflow/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("application.web")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/interviews", ginx.BS[IDReq](h.Interviews))
	g.POST("/notifications", ginx.BS[IDReq](h.Notifications))

	applicant := server.Group("/applications",
		middleware.NewCheckRoleMiddlewareBuilder(identity.RoleApplicant).Build())
	applicant.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	applicant.POST("/mine", ginx.S(h.ListMine))
	applicant.POST("/notifications/mine", ginx.S(h.MyNotifications))

	staff := server.Group("/applications",
		middleware.NewCheckRoleMiddlewareBuilder(identity.RoleHR, identity.RoleHiringManager).Build())
	staff.POST("/list", ginx.B[ListReq](h.List))
	staff.POST("/transit", ginx.BS[TransitReq](h.Transit))
	staff.POST("/bulk-transit", ginx.BS[BulkTransitReq](h.BulkTransit))
	staff.POST("/schedule-interview", ginx.BS[ScheduleInterviewReq](h.ScheduleInterview))
	staff.POST("/export", h.Export)
}

func actorOf(sess session.Session) domain.Actor {
	u := identity.FromSession(sess)
	return domain.Actor{ID: u.ID, Role: domain.Role(u.Role)}
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Submit(ctx.Request.Context(), domain.Application{
		JobID:          req.JobID,
		ApplicantID:    sess.Claims().Uid,
		ApplicantName:  req.Name,
		ApplicantEmail: req.Email,
		ApplicantPhone: req.Phone,
		CoverLetter:    req.CoverLetter,
		CVRef:          req.CVRef,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	actor := actorOf(sess)
	app, err := h.svc.Detail(ctx.Request.Context(), req.ID, actor)
	if err != nil {
		return errorResult(err), err
	}
	res := newApplication(app)
	res.NextStatuses = toStrings(domain.NextStatuses(app.Status, actor.Role))
	return ginx.Result{Data: res}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplications(apps)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	offset, limit := req.page()
	apps, total, err := h.svc.ListByJob(ctx.Request.Context(), req.JobID, toStatuses(req.Statuses), offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取岗位投递列表失败: %w", err)
	}
	return ginx.Result{Data: ApplicationList{Total: total, List: newApplications(apps)}}, nil
}

func (h *Handler) Transit(ctx *ginx.Context, req TransitReq, sess session.Session) (ginx.Result, error) {
	input := domain.SideEffectInput{Message: req.Message}
	if req.Interview != nil {
		in, err := req.Interview.toInput()
		if err != nil {
			return invalidInterviewResult, err
		}
		input.Interview = &in
	}
	app, err := h.svc.Transit(ctx.Request.Context(), req.ID, domain.Status(req.Target), actorOf(sess), input)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

// BulkTransit 部分失败也返回 200，逐条给出结果
func (h *Handler) BulkTransit(ctx *ginx.Context, req BulkTransitReq, sess session.Session) (ginx.Result, error) {
	results := h.svc.BulkTransit(ctx.Request.Context(), req.IDs, domain.Status(req.Target), actorOf(sess))
	return ginx.Result{
		Data: slice.Map(results, func(_ int, src domain.BulkTransitResult) BulkTransitItem {
			if src.Err != nil {
				h.logger.Warn("批量变更申请状态失败", elog.Int64("aid", src.ApplicationID), elog.FieldErr(src.Err))
				code := errorCode(src.Err)
				return BulkTransitItem{ID: src.ApplicationID, Code: code.Code, Msg: code.Msg}
			}
			return BulkTransitItem{ID: src.ApplicationID, Status: src.Status.String()}
		}),
	}, nil
}

func (h *Handler) ScheduleInterview(ctx *ginx.Context, req ScheduleInterviewReq, sess session.Session) (ginx.Result, error) {
	in, err := req.Interview.toInput()
	if err != nil {
		return invalidInterviewResult, err
	}
	app, err := h.svc.ScheduleInterview(ctx.Request.Context(), req.ID, actorOf(sess), in)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *Handler) Interviews(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	interviews, err := h.svc.Interviews(ctx.Request.Context(), req.ID, actorOf(sess))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: slice.Map(interviews, func(_ int, src domain.Interview) Interview {
		return newInterview(src)
	})}, nil
}

func (h *Handler) Notifications(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	view, err := h.svc.Notifications(ctx.Request.Context(), req.ID, actorOf(sess))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newNotificationView(view)}, nil
}

func (h *Handler) MyNotifications(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	views, err := h.svc.ApplicantNotifications(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(views, func(_ int, src domain.NotificationView) NotificationView {
		return newNotificationView(src)
	})}, nil
}

// Export 直接返回 xlsx 文件
func (h *Handler) Export(ctx *gin.Context) {
	var req JobIDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}
	data, err := h.svc.Export(ctx.Request.Context(), req.JobID)
	if err != nil {
		h.logger.Error("导出岗位投递失败", elog.Int64("jid", req.JobID), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="applications-%d.xlsx"`, req.JobID))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}
