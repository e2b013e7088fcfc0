// Copyright 2024 desikart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/desikart/fulfillment/internal/payment/internal/domain"
	"github.com/desikart/fulfillment/internal/payment/internal/errs"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	"github.com/desikart/fulfillment/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// 网关对整包报文的签名头
const signatureHeader = "X-Razorpay-Signature"

var _ ginx.Handler = &Handler{}

// Handler 网关webhook入口, 不经过会话
type Handler struct {
	svc service.Service
	gw  gateway.Client
}

func NewHandler(svc service.Service, gw gateway.Client) *Handler {
	return &Handler{svc: svc, gw: gw}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/gateway/callback", ginx.W(h.GatewayCallback))
	g.POST("/link/callback", ginx.W(h.PaymentLinkCallback))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// GatewayCallback 先对原始报文验签, 验签不过不解析业务字段
func (h *Handler) GatewayCallback(ctx *ginx.Context) (ginx.Result, error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取回调报文失败: %w", err)
	}
	if !h.gw.VerifyWebhookSignature(body, ctx.GetHeader(signatureHeader)) {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, service.ErrInvalidSignature
	}
	var req GatewayCallbackReq
	if err = json.Unmarshal(body, &req); err != nil {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			fmt.Errorf("解析回调报文失败: %w", err)
	}
	err = h.svc.HandleGatewayCallback(ctx.Request.Context(), domain.GatewayCallback{
		EventID:          req.EventID,
		Event:            req.Event,
		OrderSN:          req.OrderSN,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
		Amount:           req.Amount,
		OccurredAt:       req.OccurredAt,
	}, string(body))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) PaymentLinkCallback(ctx *ginx.Context) (ginx.Result, error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取回调报文失败: %w", err)
	}
	if !h.gw.VerifyWebhookSignature(body, ctx.GetHeader(signatureHeader)) {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, service.ErrInvalidSignature
	}
	var req PaymentLinkCallbackReq
	if err = json.Unmarshal(body, &req); err != nil {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			fmt.Errorf("解析回调报文失败: %w", err)
	}
	err = h.svc.HandlePaymentLinkCallback(ctx.Request.Context(), domain.PaymentLinkCallback{
		EventID:          req.EventID,
		Event:            req.Event,
		LinkID:           req.LinkID,
		GatewayPaymentID: req.GatewayPaymentID,
		AmountPaid:       req.AmountPaid,
		OccurredAt:       req.OccurredAt,
	}, string(body))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
