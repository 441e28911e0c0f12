package errs

var (
	SystemError            = ErrorCode{Code: 520101, Msg: "系统错误"}
	ApplicationNotFound    = ErrorCode{Code: 520102, Msg: "申请不存在"}
	IllegalTransition      = ErrorCode{Code: 520103, Msg: "当前状态不能变更到目标状态"}
	TerminalState          = ErrorCode{Code: 520104, Msg: "申请已结束，不能再变更"}
	Forbidden              = ErrorCode{Code: 520105, Msg: "无权执行该操作"}
	MissingSideEffectInput = ErrorCode{Code: 520106, Msg: "请填写面试时间和地点"}
	ConcurrentModification = ErrorCode{Code: 520107, Msg: "申请已被他人修改，请刷新后重试"}
	DuplicateApplication   = ErrorCode{Code: 520108, Msg: "已经投递过该岗位"}
	JobNotFound            = ErrorCode{Code: 520109, Msg: "岗位不存在"}
	JobNotLive             = ErrorCode{Code: 520110, Msg: "岗位已下线"}
	JobPastDeadline        = ErrorCode{Code: 520111, Msg: "岗位已过截止日期"}
	InvalidInterview       = ErrorCode{Code: 520112, Msg: "面试时间格式错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
