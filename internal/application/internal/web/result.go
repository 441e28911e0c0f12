package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/ecodeclub/talentflow/internal/application/internal/errs"
	"github.com/ecodeclub/talentflow/internal/application/internal/service"
	"github.com/ecodeclub/talentflow/internal/job"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInterviewResult = ginx.Result{
		Code: errs.InvalidInterview.Code,
		Msg:  errs.InvalidInterview.Msg,
	}
)

// errorCode 终态要先于非法流转判断
func errorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return errs.JobNotFound
	case errors.Is(err, service.ErrNotFound):
		return errs.ApplicationNotFound
	case errors.Is(err, domain.ErrTerminalState):
		return errs.TerminalState
	case errors.Is(err, domain.ErrIllegalTransition):
		return errs.IllegalTransition
	case errors.Is(err, domain.ErrForbidden):
		return errs.Forbidden
	case errors.Is(err, domain.ErrMissingSideEffectInput):
		return errs.MissingSideEffectInput
	case errors.Is(err, service.ErrConcurrentModification):
		return errs.ConcurrentModification
	case errors.Is(err, service.ErrDuplicateApplication):
		return errs.DuplicateApplication
	case errors.Is(err, job.ErrNotLive):
		return errs.JobNotLive
	case errors.Is(err, job.ErrPastDeadline):
		return errs.JobPastDeadline
	default:
		return errs.SystemError
	}
}

func errorResult(err error) ginx.Result {
	code := errorCode(err)
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}
