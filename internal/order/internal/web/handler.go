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
	"context"
	"fmt"

	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/service"
	"github.com/desikart/fulfillment/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 面向买家与结算协作方的订单接口
type Handler struct {
	svc         service.Service
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
}

func NewHandler(svc service.Service, snGenerator *sequencenumber.Generator, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, snGenerator: snGenerator, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 结算协作方创建pending订单, RequestID防止重复提交
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	sn, err := h.snGenerator.Generate(uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	method := domain.PaymentMethodPrepaid
	if req.PaymentMethod == domain.PaymentMethodCOD.String() {
		method = domain.PaymentMethodCOD
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		SN:      sn,
		BuyerID: uid,
		Items: slice.Map(req.Items, func(idx int, src OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				SKU:       src.SKU,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		ShippingAddress: toAddressDomain(req.ShippingAddress),
		BillingAddress:  toAddressDomain(req.BillingAddress),
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingFee:     req.ShippingFee,
		Total:           req.Total,
		Payment: domain.PaymentRecord{
			Method:         method,
			GatewayOrderID: req.GatewayOrderID,
		},
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CreateOrderResp{OrderSN: order.SN}}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

// RetrieveOrderStatus 买家轮询订单状态
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			Status:        order.Status.String(),
			PaymentStatus: order.Payment.Status.String(),
		},
	}, nil
}

// ListOrders 分页查询买家自己的订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrdersByUID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
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

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RetrieveOrderDetailResp{Order: toOrderVO(order)}}, nil
}

// CancelOrder 买家自助取消
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	_, err = h.svc.Cancel(ctx.Request.Context(), service.CancelOrderCommand{
		OrderSN: order.SN,
		Reason:  req.Reason,
		Actor:   fmt.Sprintf("buyer:%d", order.BuyerID),
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// shippingPaymentStatusVO 尚未创建补差价链接时返回空串而不是unknown
func shippingPaymentStatusVO(s domain.ShippingPaymentStatus) string {
	if s == 0 {
		return ""
	}
	return s.String()
}

func toAddressDomain(a Address) domain.Address {
	return domain.Address{
		Name:    a.Name,
		Phone:   a.Phone,
		Email:   a.Email,
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
		Country: a.Country,
	}
}

func toOrderVO(order domain.Order) Order {
	invoiceURL, invoiceSource := order.InvoiceURL()
	return Order{
		SN:           order.SN,
		Status:       order.Status.String(),
		CancelReason: order.CancelReason,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				SKU:       src.SKU,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		ShippingAddress: Address{
			Name:    order.ShippingAddress.Name,
			Phone:   order.ShippingAddress.Phone,
			Email:   order.ShippingAddress.Email,
			Line1:   order.ShippingAddress.Line1,
			Line2:   order.ShippingAddress.Line2,
			City:    order.ShippingAddress.City,
			State:   order.ShippingAddress.State,
			Pincode: order.ShippingAddress.Pincode,
			Country: order.ShippingAddress.Country,
		},
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		ShippingFee: order.ShippingFee,
		Total:       order.Total,
		Payment: Payment{
			Method:           order.Payment.Method.String(),
			Status:           order.Payment.Status.String(),
			GatewayOrderID:   order.Payment.GatewayOrderID,
			GatewayPaymentID: order.Payment.GatewayPaymentID,
			PaidAt:           order.Payment.PaidAt,
		},
		Shipment: Shipment{
			ShipmentID:  order.Shipment.ShipmentID,
			AWBCode:     order.Shipment.AWBCode,
			CourierName: order.Shipment.CourierName,
			Status:      string(order.Shipment.Status),
			LabelURL:    order.Shipment.LabelURL,
			InvoiceURL:  order.Shipment.InvoiceURL,
			ManifestURL: order.Shipment.ManifestURL,
		},
		Package: Package{
			Length:   order.Package.Length,
			Breadth:  order.Package.Breadth,
			Height:   order.Package.Height,
			Weight:   order.Package.Weight,
			Notes:    order.Package.Notes,
			Images:   order.Package.Images,
			PackedAt: order.Package.PackedAt,
		},
		ShippingPayment: ShippingPayment{
			LinkID:     order.ShippingPayment.LinkID,
			ShortURL:   order.ShippingPayment.ShortURL,
			Status:     shippingPaymentStatusVO(order.ShippingPayment.Status),
			Currency:   order.ShippingPayment.Currency,
			Amount:     order.ShippingPayment.Amount,
			AmountPaid: order.ShippingPayment.AmountPaid,
			PaidAt:     order.ShippingPayment.PaidAt,
		},
		Gst: Gst{
			WantInvoice:   order.Gst.WantInvoice,
			Gstin:         order.Gst.Gstin,
			LegalName:     order.Gst.LegalName,
			PlaceOfSupply: order.Gst.PlaceOfSupply,
			TaxPercent:    order.Gst.TaxPercent,
			TaxBase:       order.Gst.TaxBase,
			TaxAmount:     order.Gst.TaxAmount,
			InvoiceNumber: order.Gst.InvoiceNumber,
		},
		InvoiceURL:    invoiceURL,
		InvoiceSource: string(invoiceSource),
		Ctime:         order.Ctime,
		Utime:         order.Utime,
	}
}
