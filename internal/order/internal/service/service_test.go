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

package service

import (
	"context"
	"testing"

	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/event"
	"github.com/desikart/fulfillment/internal/order/internal/repository"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 基于内存map的仓储实现, 版本号语义与DAO一致
type fakeRepository struct {
	orders map[string]domain.Order
	nextID int64
}

func newFakeRepository(orders ...domain.Order) *fakeRepository {
	repo := &fakeRepository{orders: make(map[string]domain.Order)}
	for _, o := range orders {
		repo.orders[o.SN] = o
	}
	return repo
}

func (f *fakeRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	f.nextID++
	order.ID = f.nextID
	order.Version = 1
	f.orders[order.SN] = order
	return order, nil
}

func (f *fakeRepository) FindOrderBySN(_ context.Context, sn string) (domain.Order, error) {
	order, ok := f.orders[sn]
	if !ok {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeRepository) FindOrderBySNAndBuyerID(_ context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, ok := f.orders[sn]
	if !ok || order.BuyerID != buyerID {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeRepository) FindOrderByShippingPaymentLinkID(_ context.Context, linkID string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ShippingPayment.LinkID == linkID {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrOrderNotFound
}

func (f *fakeRepository) ListOrders(_ context.Context, _, _ int) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		res = append(res, o)
	}
	return res, nil
}

func (f *fakeRepository) TotalOrders(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeRepository) ListOrdersByBuyerID(_ context.Context, buyerID int64, _, _ int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepository) TotalOrdersByBuyerID(_ context.Context, buyerID int64) (int64, error) {
	var total int64
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			total++
		}
	}
	return total, nil
}

func (f *fakeRepository) cas(sn string, version int64, mutate func(o *domain.Order)) error {
	order, ok := f.orders[sn]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if order.Version != version {
		return repository.ErrConcurrentModification
	}
	mutate(&order)
	order.Version++
	f.orders[sn] = order
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, sn string, version int64, status domain.OrderStatus, cancelReason string) error {
	return f.cas(sn, version, func(o *domain.Order) {
		o.Status = status
		o.CancelReason = cancelReason
	})
}

func (f *fakeRepository) UpdatePayment(_ context.Context, sn string, version int64, p domain.PaymentRecord) error {
	return f.cas(sn, version, func(o *domain.Order) { o.Payment = p })
}

func (f *fakeRepository) UpdateShipment(_ context.Context, sn string, version int64, s domain.ShipmentRecord) error {
	return f.cas(sn, version, func(o *domain.Order) { o.Shipment = s })
}

func (f *fakeRepository) UpdatePackage(_ context.Context, sn string, version int64, p domain.ShippingPackage) error {
	return f.cas(sn, version, func(o *domain.Order) { o.Package = p })
}

func (f *fakeRepository) UpdateShippingPayment(_ context.Context, sn string, version int64, sp domain.ShippingPayment) error {
	return f.cas(sn, version, func(o *domain.Order) { o.ShippingPayment = sp })
}

func (f *fakeRepository) UpdateGst(_ context.Context, sn string, version int64, g domain.GstDetails) error {
	return f.cas(sn, version, func(o *domain.Order) { o.Gst = g })
}

type fakeProducer struct {
	events []event.OrderStatusEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderStatusEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func newTestOrder(sn string, status domain.OrderStatus, method domain.PaymentMethod, payStatus domain.PaymentStatus) domain.Order {
	return domain.Order{
		ID:      1,
		SN:      sn,
		BuyerID: 100,
		Items: []domain.OrderItem{
			{ProductID: 11, Name: "手机壳", UnitPrice: 49900, Quantity: 2},
		},
		Subtotal:    99800,
		Tax:         0,
		ShippingFee: 5000,
		Total:       104800,
		Status:      status,
		Payment:     domain.PaymentRecord{Method: method, Status: payStatus},
		Version:     1,
	}
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	t.Run("COD订单默认cod_pending", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := NewService(repo, &fakeProducer{}, Policy{BlockDeliveryWhenUnpaid: true})
		order := newTestOrder("OR0001", 0, domain.PaymentMethodCOD, 0)
		created, err := svc.CreateOrder(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, created.Status)
		assert.Equal(t, domain.PaymentStatusCODPending, created.Payment.Status)
		assert.Equal(t, int64(1), created.Version)
	})

	t.Run("预付订单默认awaiting_payment", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := NewService(repo, &fakeProducer{}, Policy{BlockDeliveryWhenUnpaid: true})
		order := newTestOrder("OR0002", 0, domain.PaymentMethodPrepaid, 0)
		created, err := svc.CreateOrder(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusAwaitingPayment, created.Payment.Status)
	})

	t.Run("校验失败收集全部字段错误", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := NewService(repo, &fakeProducer{}, Policy{})
		_, err := svc.CreateOrder(context.Background(), domain.Order{
			SN:      "OR0003",
			BuyerID: 100,
			Items: []domain.OrderItem{
				{ProductID: 11, UnitPrice: -1, Quantity: 0},
			},
			Subtotal: 100,
			Total:    999,
		})
		require.Error(t, err)
		fe, ok := validation.From(err)
		require.True(t, ok)
		fields := make(map[string]bool)
		for _, f := range fe.Fields {
			fields[f.Field] = true
		}
		assert.True(t, fields["items[0].quantity"])
		assert.True(t, fields["items[0].unitPrice"])
		assert.True(t, fields["paymentMethod"])
		assert.True(t, fields["total"])
		assert.Empty(t, repo.orders)
	})
}

func TestService_Accept(t *testing.T) {
	t.Parallel()

	t.Run("pending可以确认", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR1001", domain.OrderStatusPending, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{BlockDeliveryWhenUnpaid: true})
		order, err := svc.Accept(context.Background(), AcceptOrderCommand{OrderSN: "OR1001", Actor: "admin:1"})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
		assert.Equal(t, int64(2), order.Version)
		require.Len(t, producer.events, 1)
		assert.Equal(t, "pending", producer.events[0].OldStatus)
		assert.Equal(t, "confirmed", producer.events[0].NewStatus)
		assert.Equal(t, "admin:1", producer.events[0].Actor)
	})

	t.Run("非pending确认被拒绝", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR1002", domain.OrderStatusShipped, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{})
		_, err := svc.Accept(context.Background(), AcceptOrderCommand{OrderSN: "OR1002"})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Empty(t, producer.events)
	})
}

func TestService_Advance(t *testing.T) {
	t.Parallel()

	t.Run("沿固定序列推进到delivered", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR2001", domain.OrderStatusConfirmed, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{BlockDeliveryWhenUnpaid: true})
		wants := []domain.OrderStatus{
			domain.OrderStatusProcessing,
			domain.OrderStatusShipped,
			domain.OrderStatusDelivered,
		}
		for _, want := range wants {
			order, err := svc.Advance(context.Background(), AdvanceOrderCommand{OrderSN: "OR2001", Actor: "admin:1"})
			require.NoError(t, err)
			assert.Equal(t, want, order.Status)
		}
		assert.Len(t, producer.events, 3)
	})

	t.Run("终态不可再推进", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR2002", domain.OrderStatusDelivered, domain.PaymentMethodCOD, domain.PaymentStatusCODPaid))
		svc := NewService(repo, &fakeProducer{}, Policy{})
		_, err := svc.Advance(context.Background(), AdvanceOrderCommand{OrderSN: "OR2002"})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("预付未支付禁止标记送达", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR2003", domain.OrderStatusShipped, domain.PaymentMethodPrepaid, domain.PaymentStatusAwaitingPayment))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{BlockDeliveryWhenUnpaid: true})
		_, err := svc.Advance(context.Background(), AdvanceOrderCommand{OrderSN: "OR2003"})
		assert.ErrorIs(t, err, ErrDeliveryBlocked)
		assert.Empty(t, producer.events)
	})

	t.Run("守卫关闭时预付未支付也可送达", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR2004", domain.OrderStatusShipped, domain.PaymentMethodPrepaid, domain.PaymentStatusAwaitingPayment))
		svc := NewService(repo, &fakeProducer{}, Policy{BlockDeliveryWhenUnpaid: false})
		order, err := svc.Advance(context.Background(), AdvanceOrderCommand{OrderSN: "OR2004"})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})

	t.Run("COD未收款不受送达守卫限制", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR2005", domain.OrderStatusShipped, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		svc := NewService(repo, &fakeProducer{}, Policy{BlockDeliveryWhenUnpaid: true})
		order, err := svc.Advance(context.Background(), AdvanceOrderCommand{OrderSN: "OR2005"})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("shipped仍可取消并记录原因", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR3001", domain.OrderStatusShipped, domain.PaymentMethodPrepaid, domain.PaymentStatusPaid))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{BlockDeliveryWhenUnpaid: true})
		order, err := svc.Cancel(context.Background(), CancelOrderCommand{OrderSN: "OR3001", Reason: "买家拒收", Actor: "admin:1"})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, "买家拒收", order.CancelReason)
		require.Len(t, producer.events, 1)
		assert.Equal(t, "买家拒收", producer.events[0].Reason)
	})

	t.Run("重复取消冲突且不发布第二条事件", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR3002", domain.OrderStatusConfirmed, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{})
		_, err := svc.Cancel(context.Background(), CancelOrderCommand{OrderSN: "OR3002", Reason: "缺货"})
		require.NoError(t, err)
		_, err = svc.Cancel(context.Background(), CancelOrderCommand{OrderSN: "OR3002", Reason: "再次取消"})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Len(t, producer.events, 1)
	})

	t.Run("delivered不可取消", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR3003", domain.OrderStatusDelivered, domain.PaymentMethodCOD, domain.PaymentStatusCODPaid))
		svc := NewService(repo, &fakeProducer{}, Policy{})
		_, err := svc.Cancel(context.Background(), CancelOrderCommand{OrderSN: "OR3003"})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}

func TestService_OverrideStatus(t *testing.T) {
	t.Parallel()

	t.Run("可以绕过转换表但事件带审计字段", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR4001", domain.OrderStatusDelivered, domain.PaymentMethodCOD, domain.PaymentStatusCODPaid))
		producer := &fakeProducer{}
		svc := NewService(repo, producer, Policy{BlockDeliveryWhenUnpaid: true})
		order, err := svc.OverrideStatus(context.Background(), OverrideStatusCommand{
			OrderSN:       "OR4001",
			Target:        domain.OrderStatusShipped,
			Justification: "承运商误报签收",
			Actor:         "admin:7",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
		require.Len(t, producer.events, 1)
		assert.True(t, producer.events[0].Override)
		assert.Equal(t, "承运商误报签收", producer.events[0].Justification)
		assert.Equal(t, "admin:7", producer.events[0].Actor)
	})

	t.Run("缺少理由或操作者被拒绝", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR4002", domain.OrderStatusPending, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
		svc := NewService(repo, &fakeProducer{}, Policy{})
		_, err := svc.OverrideStatus(context.Background(), OverrideStatusCommand{
			OrderSN: "OR4002",
			Target:  domain.OrderStatusConfirmed,
		})
		require.Error(t, err)
		fe, ok := validation.From(err)
		require.True(t, ok)
		assert.Len(t, fe.Fields, 2)
	})
}

func TestService_SetGstDetails(t *testing.T) {
	t.Parallel()

	t.Run("taxBase与taxAmount缺省推导", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR5001", domain.OrderStatusConfirmed, domain.PaymentMethodPrepaid, domain.PaymentStatusPaid))
		svc := NewService(repo, &fakeProducer{}, Policy{})
		order, err := svc.SetGstDetails(context.Background(), SetGstDetailsCommand{
			OrderSN: "OR5001",
			Gst: domain.GstDetails{
				WantInvoice: true,
				Gstin:       "22AAAAA0000A1Z5",
				TaxPercent:  18,
			},
			Actor: "admin:1",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(99800), order.Gst.TaxBase)
		assert.Equal(t, int64(17964), order.Gst.TaxAmount)
	})

	t.Run("显式税额偏差超限被拒绝", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository(newTestOrder("OR5002", domain.OrderStatusConfirmed, domain.PaymentMethodPrepaid, domain.PaymentStatusPaid))
		svc := NewService(repo, &fakeProducer{}, Policy{})
		_, err := svc.SetGstDetails(context.Background(), SetGstDetailsCommand{
			OrderSN: "OR5002",
			Gst: domain.GstDetails{
				TaxPercent: 18,
				TaxBase:    100000,
				TaxAmount:  19000,
			},
		})
		require.Error(t, err)
		fe, ok := validation.From(err)
		require.True(t, ok)
		assert.Equal(t, "taxAmount", fe.Fields[0].Field)
	})
}

func TestService_ConcurrentModification(t *testing.T) {
	t.Parallel()
	repo := newFakeRepository(newTestOrder("OR6001", domain.OrderStatusPending, domain.PaymentMethodCOD, domain.PaymentStatusCODPending))
	svc := NewService(repo, &fakeProducer{}, Policy{})
	// 版本号过期的回写必须失败
	err := svc.SavePayment(context.Background(), "OR6001", 99, domain.PaymentRecord{
		Method: domain.PaymentMethodCOD,
		Status: domain.PaymentStatusCODPaid,
	})
	assert.ErrorIs(t, err, ErrConcurrentModification)

	err = svc.SavePayment(context.Background(), "OR6001", 1, domain.PaymentRecord{
		Method: domain.PaymentMethodCOD,
		Status: domain.PaymentStatusCODPaid,
	})
	require.NoError(t, err)
	order, err := svc.FindOrderBySN(context.Background(), "OR6001")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCODPaid, order.Payment.Status)
	assert.Equal(t, int64(2), order.Version)
}
