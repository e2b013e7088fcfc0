package web

import (
	"github.com/desikart/fulfillment/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 运营侧的收款操作
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/gateway-order/create", ginx.B[EnsureGatewayOrderReq](h.EnsureGatewayOrder))
	g.POST("/cod/confirm", ginx.B[ConfirmCODReq](h.ConfirmCOD))
	g.POST("/shipping-link/create", ginx.B[CreateShippingLinkReq](h.CreateShippingLink))
	g.POST("/shipping-link/cancel", ginx.B[CancelShippingLinkReq](h.CancelShippingLink))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) EnsureGatewayOrder(ctx *ginx.Context, req EnsureGatewayOrderReq) (ginx.Result, error) {
	order, err := h.svc.EnsureGatewayOrder(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: EnsureGatewayOrderResp{
		GatewayOrderID: order.Payment.GatewayOrderID,
		Amount:         order.Total,
	}}, nil
}

func (h *AdminHandler) ConfirmCOD(ctx *ginx.Context, req ConfirmCODReq) (ginx.Result, error) {
	err := h.svc.ConfirmCODCollected(ctx.Request.Context(), req.OrderSN, req.Operator)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) CreateShippingLink(ctx *ginx.Context, req CreateShippingLinkReq) (ginx.Result, error) {
	sp, err := h.svc.CreateShippingPaymentLink(ctx.Request.Context(), service.CreateShippingPaymentLinkCommand{
		OrderSN:     req.OrderSN,
		Amount:      req.Amount,
		Description: req.Description,
		Actor:       req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CreateShippingLinkResp{
		LinkID:   sp.LinkID,
		ShortURL: sp.ShortURL,
		Amount:   sp.Amount,
		Status:   sp.Status.String(),
	}}, nil
}

func (h *AdminHandler) CancelShippingLink(ctx *ginx.Context, req CancelShippingLinkReq) (ginx.Result, error) {
	err := h.svc.CancelShippingPaymentLink(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
