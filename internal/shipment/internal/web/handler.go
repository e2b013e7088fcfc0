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
	"github.com/desikart/fulfillment/internal/shipment/internal/domain"
	"github.com/desikart/fulfillment/internal/shipment/internal/errs"
	"github.com/desikart/fulfillment/internal/shipment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 承运商轨迹推送入口, 不经过会话, 按事件ID去重
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/shipment")
	g.POST("/tracking/callback", ginx.B[TrackingCallbackReq](h.TrackingCallback))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) TrackingCallback(ctx *ginx.Context, req TrackingCallbackReq) (ginx.Result, error) {
	if req.EventID == "" || req.OrderSN == "" {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, nil
	}
	err := h.svc.MarkTrackingUpdated(ctx.Request.Context(), domain.TrackingCallback{
		EventID:       req.EventID,
		OrderSN:       req.OrderSN,
		AWBCode:       req.AWBCode,
		CarrierStatus: req.CurrentStatus,
		OccurredAt:    req.Timestamp,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
