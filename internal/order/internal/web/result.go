package web

import (
	"errors"

	"github.com/desikart/fulfillment/internal/order/internal/errs"
	"github.com/desikart/fulfillment/internal/order/internal/service"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	statusConflictResult = ginx.Result{
		Code: errs.StatusConflict.Code,
		Msg:  errs.StatusConflict.Msg,
	}
	concurrentModificationResult = ginx.Result{
		Code: errs.ConcurrentModification.Code,
		Msg:  errs.ConcurrentModification.Msg,
	}
)

// errorResult 把服务层错误翻译为统一的Result,
// 字段级校验错误原样带给前端, 让运营改完即可重试同一个幂等调用
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStatusTransition),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrDeliveryBlocked):
		return statusConflictResult, err
	case errors.Is(err, service.ErrConcurrentModification):
		return concurrentModificationResult, err
	}
	if fe, ok := validation.From(err); ok {
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  errs.InvalidInput.Msg,
			Data: fe.Fields,
		}, err
	}
	return systemErrorResult, err
}
