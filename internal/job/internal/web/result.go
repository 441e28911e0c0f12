package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talentflow/internal/job/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	jobLockedResult = ginx.Result{
		Code: errs.JobLocked.Code,
		Msg:  errs.JobLocked.Msg,
	}
	jobNotLiveResult = ginx.Result{
		Code: errs.JobNotLive.Code,
		Msg:  errs.JobNotLive.Msg,
	}
	jobPastDeadlineResult = ginx.Result{
		Code: errs.JobPastDeadline.Code,
		Msg:  errs.JobPastDeadline.Msg,
	}
	invalidJobResult = ginx.Result{
		Code: errs.InvalidJob.Code,
		Msg:  errs.InvalidJob.Msg,
	}
	jobStatusChangeResult = ginx.Result{
		Code: errs.JobStatusChange.Code,
		Msg:  errs.JobStatusChange.Msg,
	}
)
