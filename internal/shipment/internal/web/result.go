package web

import (
	"errors"

	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
	"github.com/desikart/fulfillment/internal/shipment/internal/errs"
	"github.com/desikart/fulfillment/internal/shipment/internal/service"
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
	var apiErr *carrier.APIError
	if errors.As(err, &apiErr) {
		return ginx.Result{
			Code: errs.InvalidInput.Code,
			Msg:  apiErr.Message,
			Data: apiErr.Fields,
		}, err
	}
	switch {
	case errors.Is(err, carrier.ErrRetriable):
		return ginx.Result{Code: errs.CarrierUnavailable.Code, Msg: errs.CarrierUnavailable.Msg}, err
	case errors.Is(err, service.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, err
	case errors.Is(err, service.ErrUnknownStage):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, err
	case errors.Is(err, service.ErrStageInProgress),
		errors.Is(err, service.ErrPreconditionNotMet):
		return ginx.Result{Code: errs.StageConflict.Code, Msg: err.Error()}, err
	case errors.Is(err, service.ErrConcurrentModification):
		return ginx.Result{Code: errs.ConcurrentModification.Code, Msg: errs.ConcurrentModification.Msg}, err
	default:
		return systemErrorResult, err
	}
}
