package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// OrderNotFound 订单或支付链接不存在
	OrderNotFound = ErrorCode{Code: 404001, Msg: "订单未找到"}
	// InvalidInput 参数或签名校验失败
	InvalidInput = ErrorCode{Code: 402001, Msg: "非法输入"}
	// StateConflict 当前支付状态不允许该操作
	StateConflict = ErrorCode{Code: 409001, Msg: "支付状态冲突"}
	// ConcurrentModification 订单被并发修改且重试耗尽
	ConcurrentModification = ErrorCode{Code: 409002, Msg: "订单被并发修改, 请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
