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
	"github.com/desikart/fulfillment/internal/shipment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 运营侧的发货编排入口,
// 生成类接口只做触发, 结果通过/status轮询或阶段事件获取
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shipment")
	g.POST("/create", ginx.B[StageReq](h.stageOf(domain.StageCreateOrder)))
	g.POST("/awb/assign", ginx.B[StageReq](h.stageOf(domain.StageAssignAWB)))
	g.POST("/pickup/generate", ginx.B[StageReq](h.stageOf(domain.StageGeneratePickup)))
	g.POST("/label/generate", ginx.B[StageReq](h.stageOf(domain.StageGenerateLabel)))
	g.POST("/invoice/generate", ginx.B[StageReq](h.stageOf(domain.StageGenerateInvoice)))
	g.POST("/manifest/generate", ginx.B[StageReq](h.stageOf(domain.StageGenerateManifest)))
	g.POST("/package/save", ginx.B[SavePackageReq](h.SavePackage))
	g.POST("/status", ginx.B[ShipmentStatusReq](h.Status))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) stageOf(stage domain.Stage) func(*ginx.Context, StageReq) (ginx.Result, error) {
	return func(ctx *ginx.Context, req StageReq) (ginx.Result, error) {
		err := h.svc.Trigger(ctx.Request.Context(), req.OrderSN, stage)
		if err != nil {
			return errorResult(err)
		}
		return ginx.Result{Data: StageAck{
			OrderSN:  req.OrderSN,
			Stage:    string(stage),
			Accepted: true,
		}}, nil
	}
}

func (h *AdminHandler) SavePackage(ctx *ginx.Context, req SavePackageReq) (ginx.Result, error) {
	err := h.svc.SavePackage(ctx.Request.Context(), service.SavePackageCommand{
		OrderSN: req.OrderSN,
		Length:  req.Length,
		Breadth: req.Breadth,
		Height:  req.Height,
		Weight:  req.Weight,
		Notes:   req.Notes,
		Images:  req.Images,
		Actor:   req.Operator,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Status(ctx *ginx.Context, req ShipmentStatusReq) (ginx.Result, error) {
	record, err := h.svc.FindShipment(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newShipment(record)}, nil
}
