package errs

var (
	SystemError     = ErrorCode{Code: 520201, Msg: "系统错误"}
	JobNotFound     = ErrorCode{Code: 520202, Msg: "岗位不存在"}
	JobLocked       = ErrorCode{Code: 520203, Msg: "岗位已发布或已关闭，不能编辑"}
	JobNotLive      = ErrorCode{Code: 520204, Msg: "岗位已下线"}
	JobPastDeadline = ErrorCode{Code: 520205, Msg: "岗位已过截止日期"}
	InvalidJob      = ErrorCode{Code: 520206, Msg: "岗位信息不合法"}
	JobStatusChange = ErrorCode{Code: 520207, Msg: "岗位当前状态不允许该操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
