package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// CarrierUnavailable 承运商5xx或超时, 可以重试
	CarrierUnavailable = ErrorCode{Code: 503002, Msg: "承运商暂时不可用, 请重试"}
	OrderNotFound      = ErrorCode{Code: 404001, Msg: "订单未找到"}
	InvalidInput       = ErrorCode{Code: 402001, Msg: "非法输入"}
	// StageConflict 前置条件不满足或阶段正在执行
	StageConflict          = ErrorCode{Code: 409001, Msg: "发货阶段冲突"}
	ConcurrentModification = ErrorCode{Code: 409002, Msg: "订单被并发修改, 请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
