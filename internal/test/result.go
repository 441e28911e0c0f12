package test

type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// Failed 业务错误时响应体里只有 code 和 msg
func Failed[T any](code int, msg string) Result[T] {
	return Result[T]{Code: code, Msg: msg}
}
