package web

import (
	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/service"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 运营侧的订单生命周期操作
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.Detail))
	g.POST("/accept", ginx.B[AcceptOrderReq](h.Accept))
	g.POST("/advance", ginx.B[AdvanceOrderReq](h.Advance))
	g.POST("/cancel", ginx.B[CancelOrderReq](h.Cancel))
	g.POST("/status/override", ginx.B[OverrideStatusReq](h.OverrideStatus))
	g.POST("/gst/save", ginx.B[SaveGstDetailsReq](h.SaveGstDetails))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderDetailResp{Order: toOrderVO(order)}}, nil
}

// Accept pending -> confirmed
func (h *AdminHandler) Accept(ctx *ginx.Context, req AcceptOrderReq) (ginx.Result, error) {
	order, err := h.svc.Accept(ctx.Request.Context(), service.AcceptOrderCommand{
		OrderSN: req.OrderSN,
		Actor:   req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderStatusResp{
		Status:        order.Status.String(),
		PaymentStatus: order.Payment.Status.String(),
	}}, nil
}

// Advance 沿固定序列推进一步
func (h *AdminHandler) Advance(ctx *ginx.Context, req AdvanceOrderReq) (ginx.Result, error) {
	order, err := h.svc.Advance(ctx.Request.Context(), service.AdvanceOrderCommand{
		OrderSN: req.OrderSN,
		Actor:   req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderStatusResp{
		Status:        order.Status.String(),
		PaymentStatus: order.Payment.Status.String(),
	}}, nil
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req CancelOrderReq) (ginx.Result, error) {
	_, err := h.svc.Cancel(ctx.Request.Context(), service.CancelOrderCommand{
		OrderSN: req.OrderSN,
		Reason:  req.Reason,
		Actor:   "admin",
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// OverrideStatus 审计型紧急修正
func (h *AdminHandler) OverrideStatus(ctx *ginx.Context, req OverrideStatusReq) (ginx.Result, error) {
	target, ok := domain.OrderStatusFromString(req.Target)
	if !ok {
		var fe validation.FieldErrors
		fe.Add("target", "目标状态非法")
		return errorResult(fe.AsError())
	}
	order, err := h.svc.OverrideStatus(ctx.Request.Context(), service.OverrideStatusCommand{
		OrderSN:       req.OrderSN,
		Target:        target,
		Justification: req.Justification,
		Actor:         req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderStatusResp{
		Status:        order.Status.String(),
		PaymentStatus: order.Payment.Status.String(),
	}}, nil
}

func (h *AdminHandler) SaveGstDetails(ctx *ginx.Context, req SaveGstDetailsReq) (ginx.Result, error) {
	order, err := h.svc.SetGstDetails(ctx.Request.Context(), service.SetGstDetailsCommand{
		OrderSN: req.OrderSN,
		Gst: domain.GstDetails{
			WantInvoice:   req.WantInvoice,
			Gstin:         req.Gstin,
			LegalName:     req.LegalName,
			PlaceOfSupply: req.PlaceOfSupply,
			TaxPercent:    req.TaxPercent,
			TaxBase:       req.TaxBase,
			TaxAmount:     req.TaxAmount,
			InvoiceNumber: req.InvoiceNumber,
			InvoiceURL:    req.InvoiceURL,
		},
		Actor: req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderDetailResp{Order: toOrderVO(order)}}, nil
}
