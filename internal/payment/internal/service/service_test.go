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

	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment/internal/domain"
	"github.com/desikart/fulfillment/internal/payment/internal/event"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	gatewaymocks "github.com/desikart/fulfillment/internal/payment/internal/gateway/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeOrderService 只实现支付对账用到的读与回写
type fakeOrderService struct {
	order.Service
	orders       map[string]order.Order
	savePayments int
	saveLinks    int
	// beforeSaveLink 在下一次SaveShippingPayment校验版本前执行一次,
	// 用来模拟并发写
	beforeSaveLink func(f *fakeOrderService)
}

func newFakeOrderService(orders ...order.Order) *fakeOrderService {
	f := &fakeOrderService{orders: make(map[string]order.Order)}
	for _, o := range orders {
		f.orders[o.SN] = o
	}
	return f
}

func (f *fakeOrderService) FindOrderBySN(_ context.Context, sn string) (order.Order, error) {
	o, ok := f.orders[sn]
	if !ok {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderService) FindOrderByShippingPaymentLinkID(_ context.Context, linkID string) (order.Order, error) {
	for _, o := range f.orders {
		if o.ShippingPayment.LinkID == linkID {
			return o, nil
		}
	}
	return order.Order{}, order.ErrOrderNotFound
}

func (f *fakeOrderService) SavePayment(_ context.Context, sn string, version int64, p order.PaymentRecord) error {
	o := f.orders[sn]
	if o.Version != version {
		return order.ErrConcurrentModification
	}
	f.savePayments++
	o.Payment = p
	o.Version++
	f.orders[sn] = o
	return nil
}

func (f *fakeOrderService) SaveShippingPayment(_ context.Context, sn string, version int64, sp order.ShippingPayment) error {
	if f.beforeSaveLink != nil {
		hook := f.beforeSaveLink
		f.beforeSaveLink = nil
		hook(f)
	}
	o := f.orders[sn]
	if o.Version != version {
		return order.ErrConcurrentModification
	}
	f.saveLinks++
	o.ShippingPayment = sp
	o.Version++
	f.orders[sn] = o
	return nil
}

// fakeWebhookRepo 内存去重表
type fakeWebhookRepo struct {
	seen map[string]bool
}

func newFakeWebhookRepo() *fakeWebhookRepo {
	return &fakeWebhookRepo{seen: make(map[string]bool)}
}

func (f *fakeWebhookRepo) MarkReceived(_ context.Context, source, eventID, _ string) (bool, error) {
	key := source + ":" + eventID
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakeWebhookRepo) Unmark(_ context.Context, source, eventID string) error {
	delete(f.seen, source+":"+eventID)
	return nil
}

type fakeGateway struct {
	createOrderCalls int
	createLinkCalls  int
	cancelLinkCalls  int
	validSignature   bool
	nextLink         gateway.PaymentLink
}

func (f *fakeGateway) CreateOrder(_ context.Context, req gateway.CreateGatewayOrderReq) (gateway.GatewayOrder, error) {
	f.createOrderCalls++
	return gateway.GatewayOrder{ID: "order_gw_1", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt}, nil
}

func (f *fakeGateway) CreatePaymentLink(_ context.Context, req gateway.CreatePaymentLinkReq) (gateway.PaymentLink, error) {
	f.createLinkCalls++
	link := f.nextLink
	if link.ID == "" {
		link = gateway.PaymentLink{ID: "plink_1", ShortURL: "https://rzp.io/l/x", Amount: req.Amount, Currency: req.Currency, Status: "created"}
	}
	return link, nil
}

func (f *fakeGateway) CancelPaymentLink(_ context.Context, _ string) error {
	f.cancelLinkCalls++
	return nil
}

func (f *fakeGateway) VerifyWebhookSignature(_ []byte, _ string) bool { return true }

func (f *fakeGateway) VerifyPaymentSignature(_, _, _ string) bool { return f.validSignature }

type fakeRefundProducer struct {
	events []event.RefundRequestedEvent
}

func (f *fakeRefundProducer) Produce(_ context.Context, evt event.RefundRequestedEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func prepaidOrder(sn string, payStatus order.PaymentStatus) order.Order {
	return order.Order{
		SN:      sn,
		BuyerID: 100,
		Total:   104800,
		Status:  order.StatusConfirmed,
		Payment: order.PaymentRecord{
			Method:         order.PaymentMethodPrepaid,
			Status:         payStatus,
			GatewayOrderID: "order_gw_1",
		},
		Version: 1,
	}
}

func TestService_HandleGatewayCallback(t *testing.T) {
	t.Parallel()

	captured := domain.GatewayCallback{
		EventID:          "evt_1",
		Event:            domain.GatewayEventPaymentCaptured,
		OrderSN:          "OR1001",
		GatewayOrderID:   "order_gw_1",
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
		OccurredAt:       1700000000000,
	}

	t.Run("首次回调落库后置为paid", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR1001", order.PaymentStatusAwaitingPayment))
		gw := &fakeGateway{validSignature: true}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		err := svc.HandleGatewayCallback(context.Background(), captured, "{}")
		require.NoError(t, err)
		o := orderSvc.orders["OR1001"]
		assert.Equal(t, order.PaymentStatusPaid, o.Payment.Status)
		assert.Equal(t, "pay_1", o.Payment.GatewayPaymentID)
		assert.Equal(t, int64(1700000000000), o.Payment.PaidAt)
	})

	t.Run("同一事件重复投递只生效一次", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR1001", order.PaymentStatusAwaitingPayment))
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{validSignature: true}, &fakeRefundProducer{})
		require.NoError(t, svc.HandleGatewayCallback(context.Background(), captured, "{}"))
		require.NoError(t, svc.HandleGatewayCallback(context.Background(), captured, "{}"))
		assert.Equal(t, 1, orderSvc.savePayments)
	})

	t.Run("签名非法直接拒绝", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR1001", order.PaymentStatusAwaitingPayment))
		repo := newFakeWebhookRepo()
		svc := NewService(orderSvc, repo, &fakeGateway{validSignature: false}, &fakeRefundProducer{})
		err := svc.HandleGatewayCallback(context.Background(), captured, "{}")
		assert.ErrorIs(t, err, ErrInvalidSignature)
		// 验签失败不应占用去重表
		assert.Empty(t, repo.seen)
		assert.Zero(t, orderSvc.savePayments)
	})

	t.Run("应用失败释放去重标记等待重投", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService()
		repo := newFakeWebhookRepo()
		svc := NewService(orderSvc, repo, &fakeGateway{validSignature: true}, &fakeRefundProducer{})
		cb := captured
		cb.EventID = "evt_3"
		cb.OrderSN = "OR1002"
		// 订单还没落库, 第一次投递应用失败
		err := svc.HandleGatewayCallback(context.Background(), cb, "{}")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
		// 订单落库后网关重投同一事件, 不能被当成重复丢弃
		orderSvc.orders["OR1002"] = prepaidOrder("OR1002", order.PaymentStatusAwaitingPayment)
		require.NoError(t, svc.HandleGatewayCallback(context.Background(), cb, "{}"))
		assert.Equal(t, order.PaymentStatusPaid, orderSvc.orders["OR1002"].Payment.Status)
	})

	t.Run("failed不会降级已支付的订单", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR1001", order.PaymentStatusPaid))
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{validSignature: true}, &fakeRefundProducer{})
		failed := captured
		failed.EventID = "evt_2"
		failed.Event = domain.GatewayEventPaymentFailed
		require.NoError(t, svc.HandleGatewayCallback(context.Background(), failed, "{}"))
		assert.Equal(t, order.PaymentStatusPaid, orderSvc.orders["OR1001"].Payment.Status)
		assert.Zero(t, orderSvc.savePayments)
	})
}

func TestService_ConfirmCODCollected(t *testing.T) {
	t.Parallel()

	codOrder := func() order.Order {
		return order.Order{
			SN:      "OR2001",
			Total:   50000,
			Status:  order.StatusDelivered,
			Payment: order.PaymentRecord{Method: order.PaymentMethodCOD, Status: order.PaymentStatusCODPending},
			Version: 1,
		}
	}

	t.Run("cod_pending翻转为cod_paid", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(codOrder())
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		require.NoError(t, svc.ConfirmCODCollected(context.Background(), "OR2001", "admin:1"))
		assert.Equal(t, order.PaymentStatusCODPaid, orderSvc.orders["OR2001"].Payment.Status)
	})

	t.Run("重复确认无效果", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(codOrder())
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		require.NoError(t, svc.ConfirmCODCollected(context.Background(), "OR2001", "admin:1"))
		require.NoError(t, svc.ConfirmCODCollected(context.Background(), "OR2001", "system:auto-cod"))
		assert.Equal(t, 1, orderSvc.savePayments)
	})

	t.Run("非COD订单被拒绝", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR2002", order.PaymentStatusPaid))
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		err := svc.ConfirmCODCollected(context.Background(), "OR2002", "admin:1")
		assert.ErrorIs(t, err, ErrNotCODOrder)
	})
}

func TestService_RequestRefund(t *testing.T) {
	t.Parallel()

	t.Run("paid订单置为refunded并发事件", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR3001", order.PaymentStatusPaid)
		o.Payment.GatewayPaymentID = "pay_9"
		orderSvc := newFakeOrderService(o)
		producer := &fakeRefundProducer{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, producer)
		require.NoError(t, svc.RequestRefund(context.Background(), "OR3001", "买家取消"))
		assert.Equal(t, order.PaymentStatusRefunded, orderSvc.orders["OR3001"].Payment.Status)
		require.Len(t, producer.events, 1)
		assert.Equal(t, "pay_9", producer.events[0].GatewayPaymentID)
		assert.Equal(t, int64(104800), producer.events[0].Amount)
	})

	t.Run("未支付订单静默返回", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR3002", order.PaymentStatusAwaitingPayment))
		producer := &fakeRefundProducer{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, producer)
		require.NoError(t, svc.RequestRefund(context.Background(), "OR3002", "取消"))
		assert.Empty(t, producer.events)
		assert.Zero(t, orderSvc.savePayments)
	})

	t.Run("重复退款请求只发一次事件", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR3003", order.PaymentStatusPaid))
		producer := &fakeRefundProducer{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, producer)
		require.NoError(t, svc.RequestRefund(context.Background(), "OR3003", "取消"))
		require.NoError(t, svc.RequestRefund(context.Background(), "OR3003", "取消"))
		assert.Len(t, producer.events, 1)
	})
}

func TestService_ShippingPaymentLink(t *testing.T) {
	t.Parallel()

	t.Run("创建链接并落库为pending", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(prepaidOrder("OR4001", order.PaymentStatusPaid))
		gw := &fakeGateway{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		sp, err := svc.CreateShippingPaymentLink(context.Background(), CreateShippingPaymentLinkCommand{
			OrderSN:     "OR4001",
			Amount:      8000,
			Description: "超重补差价",
			Actor:       "admin:1",
		})
		require.NoError(t, err)
		assert.Equal(t, "plink_1", sp.LinkID)
		assert.Equal(t, order.ShippingPaymentStatusPending, sp.Status)
		assert.Equal(t, int64(8000), sp.Amount)
		assert.Equal(t, 1, gw.createLinkCalls)
	})

	t.Run("在途链接禁止重复创建", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR4002", order.PaymentStatusPaid)
		o.ShippingPayment = order.ShippingPayment{LinkID: "plink_0", Status: order.ShippingPaymentStatusPartial, Amount: 8000, AmountPaid: 3000}
		orderSvc := newFakeOrderService(o)
		gw := &fakeGateway{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		_, err := svc.CreateShippingPaymentLink(context.Background(), CreateShippingPaymentLinkCommand{OrderSN: "OR4002", Amount: 5000})
		assert.ErrorIs(t, err, ErrPendingLinkExists)
		assert.Zero(t, gw.createLinkCalls)
	})

	t.Run("上一条链接完结后可以再创建", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR4003", order.PaymentStatusPaid)
		o.ShippingPayment = order.ShippingPayment{LinkID: "plink_0", Status: order.ShippingPaymentStatusExpired, Amount: 8000}
		orderSvc := newFakeOrderService(o)
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		sp, err := svc.CreateShippingPaymentLink(context.Background(), CreateShippingPaymentLinkCommand{OrderSN: "OR4003", Amount: 5000})
		require.NoError(t, err)
		assert.Equal(t, "plink_1", sp.LinkID)
	})

	t.Run("取消在途链接", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR4004", order.PaymentStatusPaid)
		o.ShippingPayment = order.ShippingPayment{LinkID: "plink_0", Status: order.ShippingPaymentStatusPending, Amount: 8000}
		orderSvc := newFakeOrderService(o)
		gw := &fakeGateway{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		require.NoError(t, svc.CancelShippingPaymentLink(context.Background(), "OR4004"))
		assert.Equal(t, 1, gw.cancelLinkCalls)
		assert.Equal(t, order.ShippingPaymentStatusCancelled, orderSvc.orders["OR4004"].ShippingPayment.Status)
		// 已完结链接重复取消不再调网关
		require.NoError(t, svc.CancelShippingPaymentLink(context.Background(), "OR4004"))
		assert.Equal(t, 1, gw.cancelLinkCalls)
	})

	t.Run("取消落库撞上并发回调时重读重试", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		gw := gatewaymocks.NewMockClient(ctrl)
		gw.EXPECT().CancelPaymentLink(gomock.Any(), "plink_0").Return(nil)
		o := prepaidOrder("OR4005", order.PaymentStatusPaid)
		o.ShippingPayment = order.ShippingPayment{LinkID: "plink_0", Status: order.ShippingPaymentStatusPending, Amount: 8000}
		orderSvc := newFakeOrderService(o)
		// 网关侧已取消, 本地第一次落库前插入一笔并发版本变更
		orderSvc.beforeSaveLink = func(f *fakeOrderService) {
			cur := f.orders["OR4005"]
			cur.Version++
			f.orders["OR4005"] = cur
		}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		require.NoError(t, svc.CancelShippingPaymentLink(context.Background(), "OR4005"))
		assert.Equal(t, order.ShippingPaymentStatusCancelled, orderSvc.orders["OR4005"].ShippingPayment.Status)
		assert.Equal(t, 1, orderSvc.saveLinks)
	})
}

func TestService_HandlePaymentLinkCallback(t *testing.T) {
	t.Parallel()

	linkedOrder := func() order.Order {
		o := prepaidOrder("OR5001", order.PaymentStatusPaid)
		o.ShippingPayment = order.ShippingPayment{
			LinkID:   "plink_1",
			Status:   order.ShippingPaymentStatusPending,
			Currency: "INR",
			Amount:   10000,
		}
		return o
	}

	t.Run("多笔部分支付逐笔累加到paid", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(linkedOrder())
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		err := svc.HandlePaymentLinkCallback(context.Background(), domain.PaymentLinkCallback{
			EventID: "evt_a", Event: domain.LinkEventPartiallyPaid,
			LinkID: "plink_1", GatewayPaymentID: "pay_a", AmountPaid: 4000, OccurredAt: 100,
		}, "{}")
		require.NoError(t, err)
		sp := orderSvc.orders["OR5001"].ShippingPayment
		assert.Equal(t, int64(4000), sp.AmountPaid)
		assert.Equal(t, order.ShippingPaymentStatusPartial, sp.Status)

		err = svc.HandlePaymentLinkCallback(context.Background(), domain.PaymentLinkCallback{
			EventID: "evt_b", Event: domain.LinkEventPaid,
			LinkID: "plink_1", GatewayPaymentID: "pay_b", AmountPaid: 6000, OccurredAt: 200,
		}, "{}")
		require.NoError(t, err)
		sp = orderSvc.orders["OR5001"].ShippingPayment
		assert.Equal(t, int64(10000), sp.AmountPaid)
		assert.Equal(t, order.ShippingPaymentStatusPaid, sp.Status)
		assert.Equal(t, int64(200), sp.PaidAt)
	})

	t.Run("同一事件重复投递不重复累加", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(linkedOrder())
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		cb := domain.PaymentLinkCallback{
			EventID: "evt_a", Event: domain.LinkEventPartiallyPaid,
			LinkID: "plink_1", GatewayPaymentID: "pay_a", AmountPaid: 4000, OccurredAt: 100,
		}
		require.NoError(t, svc.HandlePaymentLinkCallback(context.Background(), cb, "{}"))
		require.NoError(t, svc.HandlePaymentLinkCallback(context.Background(), cb, "{}"))
		assert.Equal(t, int64(4000), orderSvc.orders["OR5001"].ShippingPayment.AmountPaid)
		assert.Equal(t, 1, orderSvc.saveLinks)
	})

	t.Run("回调先于链接落库到达时不吞事件", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR5002", order.PaymentStatusPaid)
		orderSvc := newFakeOrderService(o)
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		cb := domain.PaymentLinkCallback{
			EventID: "evt_early", Event: domain.LinkEventPaid,
			LinkID: "plink_9", GatewayPaymentID: "pay_z", AmountPaid: 10000, OccurredAt: 300,
		}
		// LinkID还没落库, 第一次投递按订单不存在失败
		err := svc.HandlePaymentLinkCallback(context.Background(), cb, "{}")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
		// 链接随后落库, 网关重投同一事件必须生效
		o.ShippingPayment = order.ShippingPayment{
			LinkID: "plink_9", Status: order.ShippingPaymentStatusPending,
			Currency: "INR", Amount: 10000,
		}
		orderSvc.orders["OR5002"] = o
		require.NoError(t, svc.HandlePaymentLinkCallback(context.Background(), cb, "{}"))
		sp := orderSvc.orders["OR5002"].ShippingPayment
		assert.Equal(t, int64(10000), sp.AmountPaid)
		assert.Equal(t, order.ShippingPaymentStatusPaid, sp.Status)
	})

	t.Run("过期事件只影响在途链接", func(t *testing.T) {
		t.Parallel()
		o := linkedOrder()
		o.ShippingPayment.Status = order.ShippingPaymentStatusPaid
		o.ShippingPayment.AmountPaid = 10000
		orderSvc := newFakeOrderService(o)
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		err := svc.HandlePaymentLinkCallback(context.Background(), domain.PaymentLinkCallback{
			EventID: "evt_x", Event: domain.LinkEventExpired, LinkID: "plink_1",
		}, "{}")
		require.NoError(t, err)
		assert.Equal(t, order.ShippingPaymentStatusPaid, orderSvc.orders["OR5001"].ShippingPayment.Status)
	})
}

func TestService_EnsureGatewayOrder(t *testing.T) {
	t.Parallel()

	t.Run("缺网关订单时补建", func(t *testing.T) {
		t.Parallel()
		o := prepaidOrder("OR6001", order.PaymentStatusAwaitingPayment)
		o.Payment.GatewayOrderID = ""
		orderSvc := newFakeOrderService(o)
		gw := &fakeGateway{}
		svc := NewService(orderSvc, newFakeWebhookRepo(), gw, &fakeRefundProducer{})
		got, err := svc.EnsureGatewayOrder(context.Background(), "OR6001")
		require.NoError(t, err)
		assert.Equal(t, "order_gw_1", got.Payment.GatewayOrderID)
		assert.Equal(t, 1, gw.createOrderCalls)
		// 再次调用不会重复创建
		_, err = svc.EnsureGatewayOrder(context.Background(), "OR6001")
		require.NoError(t, err)
		assert.Equal(t, 1, gw.createOrderCalls)
	})

	t.Run("COD订单不能创建网关订单", func(t *testing.T) {
		t.Parallel()
		orderSvc := newFakeOrderService(order.Order{
			SN:      "OR6002",
			Payment: order.PaymentRecord{Method: order.PaymentMethodCOD, Status: order.PaymentStatusCODPending},
			Version: 1,
		})
		svc := NewService(orderSvc, newFakeWebhookRepo(), &fakeGateway{}, &fakeRefundProducer{})
		_, err := svc.EnsureGatewayOrder(context.Background(), "OR6002")
		assert.ErrorIs(t, err, ErrNotPrepaidOrder)
	})
}
