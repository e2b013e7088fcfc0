package web

import (
	"errors"

	"github.com/desikart/fulfillment/internal/payment/internal/errs"
	"github.com/desikart/fulfillment/internal/payment/internal/service"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	if fe, ok := validation.From(err); ok {
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  errs.InvalidInput.Msg,
			Data: fe.Fields,
		}, err
	}
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, err
	case errors.Is(err, service.ErrInvalidSignature):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, err
	case errors.Is(err, service.ErrNotCODOrder),
		errors.Is(err, service.ErrNotPrepaidOrder),
		errors.Is(err, service.ErrPendingLinkExists),
		errors.Is(err, service.ErrNoPaymentLink):
		return ginx.Result{Code: errs.StateConflict.Code, Msg: err.Error()}, err
	case errors.Is(err, service.ErrConcurrentModification):
		return ginx.Result{Code: errs.ConcurrentModification.Code, Msg: errs.ConcurrentModification.Msg}, err
	default:
		return systemErrorResult, err
	}
}
