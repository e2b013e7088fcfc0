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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrOrderNotFound          = errors.New("订单未找到")
	ErrConcurrentModification = dao.ErrRecordChangedConcurrently
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindOrderByShippingPaymentLinkID(ctx context.Context, linkID string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error)

	UpdateStatus(ctx context.Context, sn string, version int64, status domain.OrderStatus, cancelReason string) error
	UpdatePayment(ctx context.Context, sn string, version int64, p domain.PaymentRecord) error
	UpdateShipment(ctx context.Context, sn string, version int64, s domain.ShipmentRecord) error
	UpdatePackage(ctx context.Context, sn string, version int64, p domain.ShippingPackage) error
	UpdateShippingPayment(ctx context.Context, sn string, version int64, sp domain.ShippingPayment) error
	UpdateGst(ctx context.Context, sn string, version int64, g domain.GstDetails) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.Create(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	order.Version = 1
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, o.wrapNotFound(err)
	}
	return o.fillItems(ctx, order)
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, o.wrapNotFound(err)
	}
	return o.fillItems(ctx, order)
}

func (o *orderRepository) FindOrderByShippingPaymentLinkID(ctx context.Context, linkID string) (domain.Order, error) {
	order, err := o.d.FindByShippingPaymentLinkID(ctx, linkID)
	if err != nil {
		return domain.Order{}, o.wrapNotFound(err)
	}
	return o.fillItems(ctx, order)
}

func (o *orderRepository) fillItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) wrapNotFound(err error) error {
	if errors.Is(err, dao.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	return err
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListByBuyerID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) UpdateStatus(ctx context.Context, sn string, version int64, status domain.OrderStatus, cancelReason string) error {
	fields := map[string]any{
		"Status": status.ToUint8(),
	}
	if cancelReason != "" {
		fields["CancelReason"] = cancelReason
	}
	return o.d.UpdateWithVersion(ctx, sn, version, fields)
}

func (o *orderRepository) UpdatePayment(ctx context.Context, sn string, version int64, p domain.PaymentRecord) error {
	return o.d.UpdateWithVersion(ctx, sn, version, map[string]any{
		"PaymentMethod":    p.Method.ToUint8(),
		"PaymentStatus":    p.Status.ToUint8(),
		"GatewayOrderId":   p.GatewayOrderID,
		"GatewayPaymentId": p.GatewayPaymentID,
		"GatewaySignature": p.GatewaySignature,
		"PaidAt":           p.PaidAt,
	})
}

func (o *orderRepository) UpdateShipment(ctx context.Context, sn string, version int64, s domain.ShipmentRecord) error {
	return o.d.UpdateWithVersion(ctx, sn, version, map[string]any{
		"ShipmentId":     s.ShipmentID,
		"CarrierOrderId": s.CarrierOrderID,
		"AwbCode":        s.AWBCode,
		"CourierName":    s.CourierName,
		"ShipmentStatus": string(s.Status),
		"PickupAt":       s.PickupAt,
		"LabelUrl":       s.LabelURL,
		"InvoiceUrl":     s.InvoiceURL,
		"ManifestUrl":    s.ManifestURL,
	})
}

func (o *orderRepository) UpdatePackage(ctx context.Context, sn string, version int64, p domain.ShippingPackage) error {
	return o.d.UpdateWithVersion(ctx, sn, version, map[string]any{
		"PkgLength":  p.Length,
		"PkgBreadth": p.Breadth,
		"PkgHeight":  p.Height,
		"PkgWeight":  p.Weight,
		"PkgNotes":   p.Notes,
		"PkgImages":  sqlx.JsonColumn[[]string]{Val: p.Images, Valid: true},
		"PackedAt":   p.PackedAt,
	})
}

func (o *orderRepository) UpdateShippingPayment(ctx context.Context, sn string, version int64, sp domain.ShippingPayment) error {
	return o.d.UpdateWithVersion(ctx, sn, version, map[string]any{
		"SpLinkId":     sp.LinkID,
		"SpShortUrl":   sp.ShortURL,
		"SpStatus":     sp.Status.ToUint8(),
		"SpCurrency":   sp.Currency,
		"SpAmount":     sp.Amount,
		"SpAmountPaid": sp.AmountPaid,
		"SpPaymentIds": sqlx.JsonColumn[[]string]{Val: sp.PaymentIDs, Valid: true},
		"SpPaidAt":     sp.PaidAt,
	})
}

func (o *orderRepository) UpdateGst(ctx context.Context, sn string, version int64, g domain.GstDetails) error {
	return o.d.UpdateWithVersion(ctx, sn, version, map[string]any{
		"GstWantInvoice":   g.WantInvoice,
		"Gstin":            g.Gstin,
		"GstLegalName":     g.LegalName,
		"GstPlaceOfSupply": g.PlaceOfSupply,
		"GstTaxPercent":    g.TaxPercent,
		"GstTaxBase":       g.TaxBase,
		"GstTaxAmount":     g.TaxAmount,
		"GstInvoiceNumber": g.InvoiceNumber,
		"GstInvoiceUrl":    g.InvoiceURL,
	})
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:               order.ID,
		SN:               order.SN,
		BuyerId:          order.BuyerID,
		ShippingAddress:  sqlx.JsonColumn[dao.Address]{Val: toAddressEntity(order.ShippingAddress), Valid: true},
		BillingAddress:   sqlx.JsonColumn[dao.Address]{Val: toAddressEntity(order.BillingAddress), Valid: true},
		Subtotal:         order.Subtotal,
		Tax:              order.Tax,
		ShippingFee:      order.ShippingFee,
		Total:            order.Total,
		Status:           order.Status.ToUint8(),
		CancelReason:     order.CancelReason,
		PaymentMethod:    order.Payment.Method.ToUint8(),
		PaymentStatus:    order.Payment.Status.ToUint8(),
		GatewayOrderId:   order.Payment.GatewayOrderID,
		GatewayPaymentId: order.Payment.GatewayPaymentID,
		GatewaySignature: order.Payment.GatewaySignature,
		PaidAt:           order.Payment.PaidAt,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			Name:      src.Name,
			SKU:       src.SKU,
			UnitPrice: src.UnitPrice,
			Quantity:  src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:              order.Id,
		SN:              order.SN,
		BuyerID:         order.BuyerId,
		ShippingAddress: toAddressDomain(order.ShippingAddress.Val),
		BillingAddress:  toAddressDomain(order.BillingAddress.Val),
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		Status:          domain.OrderStatus(order.Status),
		CancelReason:    order.CancelReason,
		Payment: domain.PaymentRecord{
			Method:           domain.PaymentMethod(order.PaymentMethod),
			Status:           domain.PaymentStatus(order.PaymentStatus),
			GatewayOrderID:   order.GatewayOrderId,
			GatewayPaymentID: order.GatewayPaymentId,
			GatewaySignature: order.GatewaySignature,
			PaidAt:           order.PaidAt,
		},
		Shipment: domain.ShipmentRecord{
			ShipmentID:     order.ShipmentId,
			CarrierOrderID: order.CarrierOrderId,
			AWBCode:        order.AwbCode,
			CourierName:    order.CourierName,
			Status:         domain.ShipmentStatus(order.ShipmentStatus),
			PickupAt:       order.PickupAt,
			LabelURL:       order.LabelUrl,
			InvoiceURL:     order.InvoiceUrl,
			ManifestURL:    order.ManifestUrl,
		},
		Package: domain.ShippingPackage{
			Length:   order.PkgLength,
			Breadth:  order.PkgBreadth,
			Height:   order.PkgHeight,
			Weight:   order.PkgWeight,
			Notes:    order.PkgNotes,
			Images:   order.PkgImages.Val,
			PackedAt: order.PackedAt,
		},
		ShippingPayment: domain.ShippingPayment{
			LinkID:     order.SpLinkId,
			ShortURL:   order.SpShortUrl,
			Status:     domain.ShippingPaymentStatus(order.SpStatus),
			Currency:   order.SpCurrency,
			Amount:     order.SpAmount,
			AmountPaid: order.SpAmountPaid,
			PaymentIDs: order.SpPaymentIds.Val,
			PaidAt:     order.SpPaidAt,
		},
		Gst: domain.GstDetails{
			WantInvoice:   order.GstWantInvoice,
			Gstin:         order.Gstin,
			LegalName:     order.GstLegalName,
			PlaceOfSupply: order.GstPlaceOfSupply,
			TaxPercent:    order.GstTaxPercent,
			TaxBase:       order.GstTaxBase,
			TaxAmount:     order.GstTaxAmount,
			InvoiceNumber: order.GstInvoiceNumber,
			InvoiceURL:    order.GstInvoiceUrl,
		},
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductId,
				Name:      src.Name,
				SKU:       src.SKU,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Version: order.Version,
		Ctime:   order.Ctime,
		Utime:   order.Utime,
	}
}

func toAddressEntity(a domain.Address) dao.Address {
	return dao.Address{
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

func toAddressDomain(a dao.Address) domain.Address {
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
