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
	"errors"
	"fmt"
	"time"

	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment/internal/domain"
	"github.com/desikart/fulfillment/internal/payment/internal/event"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	"github.com/desikart/fulfillment/internal/payment/internal/repository"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrOrderNotFound          = order.ErrOrderNotFound
	ErrConcurrentModification = order.ErrConcurrentModification
	// ErrInvalidSignature 签名校验失败的回调一律拒绝, 不落任何状态
	ErrInvalidSignature = errors.New("回调签名校验失败")
	// ErrNotCODOrder 只有COD订单可以确认线下收款
	ErrNotCODOrder = errors.New("非COD订单不能确认货到付款")
	// ErrPendingLinkExists 已有在途补差价链接时禁止重复创建
	ErrPendingLinkExists = errors.New("存在未完结的补差价链接")
	// ErrNoPaymentLink 订单上没有可操作的补差价链接
	ErrNoPaymentLink = errors.New("订单没有补差价链接")
	// ErrNotPrepaidOrder 网关订单只服务预付订单
	ErrNotPrepaidOrder = errors.New("非预付订单不能创建网关订单")
)

// CAS冲突重试上限, 超出后把冲突暴露给调用方
const maxCASRetries = 3

const (
	sourceGateway     = "gateway"
	sourcePaymentLink = "payment_link"
)

// Policy 支付对账的可配置行为
type Policy struct {
	// AutoConfirmCODOnDelivered 订单送达后自动把cod_pending翻转为cod_paid
	AutoConfirmCODOnDelivered bool
}

type CreateShippingPaymentLinkCommand struct {
	OrderSN     string
	Amount      int64
	Description string
	Actor       string
}

type Service interface {
	// EnsureGatewayOrder 为预付订单补建网关订单, 已有网关订单时原样返回
	EnsureGatewayOrder(ctx context.Context, orderSN string) (order.Order, error)
	HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback, payload string) error
	ConfirmCODCollected(ctx context.Context, orderSN string, actor string) error
	RequestRefund(ctx context.Context, orderSN string, reason string) error

	CreateShippingPaymentLink(ctx context.Context, cmd CreateShippingPaymentLinkCommand) (order.ShippingPayment, error)
	CancelShippingPaymentLink(ctx context.Context, orderSN string) error
	HandlePaymentLinkCallback(ctx context.Context, cb domain.PaymentLinkCallback, payload string) error
}

func NewService(orderSvc order.Service,
	webhookRepo repository.WebhookEventRepository,
	gw gateway.Client,
	producer event.RefundEventProducer) Service {
	return &service{
		orderSvc:    orderSvc,
		webhookRepo: webhookRepo,
		gw:          gw,
		producer:    producer,
		l:           elog.DefaultLogger,
	}
}

type service struct {
	orderSvc    order.Service
	webhookRepo repository.WebhookEventRepository
	gw          gateway.Client
	producer    event.RefundEventProducer
	l           *elog.Component
}

func (s *service) EnsureGatewayOrder(ctx context.Context, orderSN string) (order.Order, error) {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return order.Order{}, err
	}
	if o.Payment.Method != order.PaymentMethodPrepaid {
		return order.Order{}, ErrNotPrepaidOrder
	}
	if o.Payment.GatewayOrderID != "" {
		return o, nil
	}
	gwOrder, err := s.gw.CreateOrder(ctx, gateway.CreateGatewayOrderReq{
		Amount:   o.Total,
		Currency: "INR",
		Receipt:  o.SN,
	})
	if err != nil {
		return order.Order{}, err
	}
	p := o.Payment
	p.GatewayOrderID = gwOrder.ID
	if err = s.orderSvc.SavePayment(ctx, o.SN, o.Version, p); err != nil {
		return order.Order{}, err
	}
	o.Payment = p
	o.Version++
	return o, nil
}

// HandleGatewayCallback 先验签, 再去重, 最后带版本号回写,
// 重复事件静默成功, 应用失败必须释放去重标记, 否则重投会被当成重复丢弃
func (s *service) HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback, payload string) error {
	if cb.Event == domain.GatewayEventPaymentCaptured &&
		!s.gw.VerifyPaymentSignature(cb.GatewayOrderID, cb.GatewayPaymentID, cb.Signature) {
		return fmt.Errorf("%w: orderSN=%s", ErrInvalidSignature, cb.OrderSN)
	}
	first, err := s.webhookRepo.MarkReceived(ctx, sourceGateway, cb.EventID, payload)
	if err != nil {
		return fmt.Errorf("记录webhook事件失败: %w", err)
	}
	if !first {
		s.l.Info("忽略重复的网关回调", elog.String("eventID", cb.EventID))
		return nil
	}
	err = s.casRetry(ctx, func() error {
		o, er := s.orderSvc.FindOrderBySN(ctx, cb.OrderSN)
		if er != nil {
			return er
		}
		p, changed := s.applyGatewayEvent(o, cb)
		if !changed {
			return nil
		}
		return s.orderSvc.SavePayment(ctx, o.SN, o.Version, p)
	})
	if err != nil {
		s.unmark(ctx, sourceGateway, cb.EventID)
	}
	return err
}

// applyGatewayEvent 已经到达终局的支付状态不会被回调降级
func (s *service) applyGatewayEvent(o order.Order, cb domain.GatewayCallback) (order.PaymentRecord, bool) {
	p := o.Payment
	switch cb.Event {
	case domain.GatewayEventPaymentCaptured:
		if p.Status == order.PaymentStatusPaid || p.Status == order.PaymentStatusRefunded {
			return p, false
		}
		p.Status = order.PaymentStatusPaid
		p.GatewayPaymentID = cb.GatewayPaymentID
		p.GatewaySignature = cb.Signature
		if cb.OccurredAt > 0 {
			p.PaidAt = cb.OccurredAt
		} else {
			p.PaidAt = time.Now().UnixMilli()
		}
		return p, true
	case domain.GatewayEventPaymentFailed:
		if p.Status != order.PaymentStatusAwaitingPayment {
			return p, false
		}
		p.Status = order.PaymentStatusFailed
		p.GatewayPaymentID = cb.GatewayPaymentID
		return p, true
	default:
		s.l.Warn("未识别的网关事件类型",
			elog.String("event", cb.Event),
			elog.String("eventID", cb.EventID))
		return p, false
	}
}

// ConfirmCODCollected cod_pending -> cod_paid, 重复确认无效果
func (s *service) ConfirmCODCollected(ctx context.Context, orderSN string, actor string) error {
	return s.casRetry(ctx, func() error {
		o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
		if err != nil {
			return err
		}
		if o.Payment.Method != order.PaymentMethodCOD {
			return ErrNotCODOrder
		}
		if o.Payment.Status == order.PaymentStatusCODPaid {
			return nil
		}
		p := o.Payment
		p.Status = order.PaymentStatusCODPaid
		p.PaidAt = time.Now().UnixMilli()
		if err = s.orderSvc.SavePayment(ctx, o.SN, o.Version, p); err != nil {
			return err
		}
		s.l.Info("COD收款确认",
			elog.String("orderSN", orderSN),
			elog.String("actor", actor))
		return nil
	})
}

// RequestRefund 把主支付置为refunded并向退款执行方发事件,
// 只有paid状态需要退款, 其余状态静默返回
func (s *service) RequestRefund(ctx context.Context, orderSN string, reason string) error {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return err
	}
	if o.Payment.Status != order.PaymentStatusPaid {
		return nil
	}
	err = s.casRetry(ctx, func() error {
		cur, er := s.orderSvc.FindOrderBySN(ctx, orderSN)
		if er != nil {
			return er
		}
		if cur.Payment.Status != order.PaymentStatusPaid {
			return nil
		}
		p := cur.Payment
		p.Status = order.PaymentStatusRefunded
		return s.orderSvc.SavePayment(ctx, cur.SN, cur.Version, p)
	})
	if err != nil {
		return err
	}
	evt := event.RefundRequestedEvent{
		OrderSN:          o.SN,
		GatewayPaymentID: o.Payment.GatewayPaymentID,
		Amount:           o.Total,
		Reason:           reason,
		RequestedAt:      time.Now().UnixMilli(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 状态已落库, 事件丢失靠人工对账兜底
		s.l.Error("发布退款请求事件失败",
			elog.String("orderSN", o.SN),
			elog.FieldErr(er))
	}
	return nil
}

func (s *service) CreateShippingPaymentLink(ctx context.Context, cmd CreateShippingPaymentLinkCommand) (order.ShippingPayment, error) {
	var fe validation.FieldErrors
	if cmd.OrderSN == "" {
		fe.Add("sn", "订单序列号不能为空")
	}
	if cmd.Amount <= 0 {
		fe.Add("amount", "补差价金额必须大于0")
	}
	if err := fe.AsError(); err != nil {
		return order.ShippingPayment{}, err
	}
	o, err := s.orderSvc.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return order.ShippingPayment{}, err
	}
	if o.ShippingPayment.Status.Open() {
		return order.ShippingPayment{}, fmt.Errorf("%w: linkID=%s", ErrPendingLinkExists, o.ShippingPayment.LinkID)
	}
	link, err := s.gw.CreatePaymentLink(ctx, gateway.CreatePaymentLinkReq{
		Amount:        cmd.Amount,
		Currency:      "INR",
		Description:   cmd.Description,
		ReferenceID:   o.SN,
		AcceptPartial: true,
		CustomerName:  o.ShippingAddress.Name,
		CustomerPhone: o.ShippingAddress.Phone,
		CustomerEmail: o.ShippingAddress.Email,
	})
	if err != nil {
		return order.ShippingPayment{}, err
	}
	sp := order.ShippingPayment{
		LinkID:   link.ID,
		ShortURL: link.ShortURL,
		Status:   order.ShippingPaymentStatusPending,
		Currency: link.Currency,
		Amount:   cmd.Amount,
	}
	if err = s.orderSvc.SaveShippingPayment(ctx, o.SN, o.Version, sp); err != nil {
		return order.ShippingPayment{}, err
	}
	s.l.Info("创建补差价链接",
		elog.String("orderSN", o.SN),
		elog.String("linkID", link.ID),
		elog.Int64("amount", cmd.Amount),
		elog.String("actor", cmd.Actor))
	return sp, nil
}

// CancelShippingPaymentLink 已完结的链接重复取消无效果
func (s *service) CancelShippingPaymentLink(ctx context.Context, orderSN string) error {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return err
	}
	if o.ShippingPayment.LinkID == "" {
		return ErrNoPaymentLink
	}
	if !o.ShippingPayment.Status.Open() {
		return nil
	}
	if err = s.gw.CancelPaymentLink(ctx, o.ShippingPayment.LinkID); err != nil {
		return err
	}
	// 网关侧已取消, 本地落库撞上并发回调时必须重读重试
	return s.casRetry(ctx, func() error {
		cur, er := s.orderSvc.FindOrderBySN(ctx, orderSN)
		if er != nil {
			return er
		}
		if !cur.ShippingPayment.Status.Open() {
			return nil
		}
		sp := cur.ShippingPayment
		sp.Status = order.ShippingPaymentStatusCancelled
		return s.orderSvc.SaveShippingPayment(ctx, cur.SN, cur.Version, sp)
	})
}

// HandlePaymentLinkCallback 部分支付逐笔累加, 按paymentID去重
func (s *service) HandlePaymentLinkCallback(ctx context.Context, cb domain.PaymentLinkCallback, payload string) error {
	first, err := s.webhookRepo.MarkReceived(ctx, sourcePaymentLink, cb.EventID, payload)
	if err != nil {
		return fmt.Errorf("记录webhook事件失败: %w", err)
	}
	if !first {
		s.l.Info("忽略重复的支付链接回调", elog.String("eventID", cb.EventID))
		return nil
	}
	if cb.OccurredAt == 0 {
		cb.OccurredAt = time.Now().UnixMilli()
	}
	err = s.casRetry(ctx, func() error {
		o, er := s.orderSvc.FindOrderByShippingPaymentLinkID(ctx, cb.LinkID)
		if er != nil {
			return er
		}
		sp, changed := s.applyLinkEvent(o.ShippingPayment, cb)
		if !changed {
			return nil
		}
		return s.orderSvc.SaveShippingPayment(ctx, o.SN, o.Version, sp)
	})
	if err != nil {
		// 回调可能先于LinkID落库到达, 释放标记等网关重投
		s.unmark(ctx, sourcePaymentLink, cb.EventID)
	}
	return err
}

func (s *service) unmark(ctx context.Context, source, eventID string) {
	if err := s.webhookRepo.Unmark(ctx, source, eventID); err != nil {
		s.l.Error("释放webhook去重标记失败",
			elog.String("source", source),
			elog.String("eventID", eventID),
			elog.FieldErr(err))
	}
}

func (s *service) applyLinkEvent(sp order.ShippingPayment, cb domain.PaymentLinkCallback) (order.ShippingPayment, bool) {
	switch cb.Event {
	case domain.LinkEventPaid, domain.LinkEventPartiallyPaid:
		next := sp.ApplyCapture(cb.GatewayPaymentID, cb.AmountPaid, cb.OccurredAt)
		return next, next.AmountPaid != sp.AmountPaid || next.Status != sp.Status
	case domain.LinkEventExpired:
		if !sp.Status.Open() {
			return sp, false
		}
		sp.Status = order.ShippingPaymentStatusExpired
		return sp, true
	case domain.LinkEventCancelled:
		if !sp.Status.Open() {
			return sp, false
		}
		sp.Status = order.ShippingPaymentStatusCancelled
		return sp, true
	default:
		s.l.Warn("未识别的支付链接事件类型",
			elog.String("event", cb.Event),
			elog.String("eventID", cb.EventID))
		return sp, false
	}
}

// casRetry 乐观锁冲突说明读到的版本已过期, 重读重算后重试
func (s *service) casRetry(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < maxCASRetries; i++ {
		err = fn()
		if err == nil || !errors.Is(err, order.ErrConcurrentModification) {
			return err
		}
	}
	return err
}
