package errs

var (
	SystemError            = ErrorCode{Code: 503001, Msg: "系统错误"}
	OrderNotFound          = ErrorCode{Code: 404001, Msg: "订单未找到"}
	InvalidInput           = ErrorCode{Code: 402001, Msg: "非法输入"}
	StatusConflict         = ErrorCode{Code: 409001, Msg: "订单状态不允许该操作"}
	ConcurrentModification = ErrorCode{Code: 409002, Msg: "订单已被并发修改,请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
