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

	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/event"
	"github.com/desikart/fulfillment/internal/order/internal/repository"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound          = repository.ErrOrderNotFound
	ErrConcurrentModification = repository.ErrConcurrentModification
	// ErrInvalidStatusTransition 当前状态不允许目标转换
	ErrInvalidStatusTransition = errors.New("订单状态不允许该转换")
	// ErrAlreadyCancelled 重复取消是无效果的冲突, 不会产生第二条取消事件
	ErrAlreadyCancelled = errors.New("订单已处于取消状态")
	// ErrDeliveryBlocked 预付订单款项未到账时禁止推进到delivered
	ErrDeliveryBlocked = errors.New("预付订单未支付成功, 不允许标记为已送达")
)

// Policy 状态机的可配置守卫
type Policy struct {
	// BlockDeliveryWhenUnpaid 默认开启, 仅审计过的OverrideStatus可以绕过
	BlockDeliveryWhenUnpaid bool
}

type AcceptOrderCommand struct {
	OrderSN string
	Actor   string
}

type AdvanceOrderCommand struct {
	OrderSN string
	Actor   string
}

type CancelOrderCommand struct {
	OrderSN string
	Reason  string
	Actor   string
}

// OverrideStatusCommand 紧急修正专用, 绕过转换表但强制留痕
type OverrideStatusCommand struct {
	OrderSN       string
	Target        domain.OrderStatus
	Justification string
	Actor         string
}

type SetGstDetailsCommand struct {
	OrderSN string
	Gst     domain.GstDetails
	Actor   string
}

type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error)
	FindOrderByShippingPaymentLinkID(ctx context.Context, linkID string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	ListOrdersByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)

	Accept(ctx context.Context, cmd AcceptOrderCommand) (domain.Order, error)
	Advance(ctx context.Context, cmd AdvanceOrderCommand) (domain.Order, error)
	Cancel(ctx context.Context, cmd CancelOrderCommand) (domain.Order, error)
	OverrideStatus(ctx context.Context, cmd OverrideStatusCommand) (domain.Order, error)
	SetGstDetails(ctx context.Context, cmd SetGstDetailsCommand) (domain.Order, error)

	// 下面是支付与发货模块回写聚合的入口, 全部走版本号CAS
	SavePayment(ctx context.Context, sn string, version int64, p domain.PaymentRecord) error
	SaveShipment(ctx context.Context, sn string, version int64, s domain.ShipmentRecord) error
	SavePackage(ctx context.Context, sn string, version int64, p domain.ShippingPackage) error
	SaveShippingPayment(ctx context.Context, sn string, version int64, sp domain.ShippingPayment) error
}

func NewService(repo repository.OrderRepository, producer event.StatusEventProducer, policy Policy) Service {
	return &service{
		repo:     repo,
		producer: producer,
		policy:   policy,
		l:        elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.OrderRepository
	producer event.StatusEventProducer
	policy   Policy
	l        *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := s.validateNewOrder(order); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatusPending
	if order.Payment.Status == 0 {
		switch order.Payment.Method {
		case domain.PaymentMethodCOD:
			order.Payment.Status = domain.PaymentStatusCODPending
		default:
			order.Payment.Status = domain.PaymentStatusAwaitingPayment
		}
	}
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) validateNewOrder(order domain.Order) error {
	var fe validation.FieldErrors
	if order.SN == "" {
		fe.Add("sn", "订单序列号不能为空")
	}
	if order.BuyerID <= 0 {
		fe.Add("buyerID", "买家ID非法")
	}
	if len(order.Items) == 0 {
		fe.Add("items", "订单项不能为空")
	}
	for i, it := range order.Items {
		if it.Quantity <= 0 {
			fe.Add(fmt.Sprintf("items[%d].quantity", i), "数量必须大于0")
		}
		if it.UnitPrice < 0 {
			fe.Add(fmt.Sprintf("items[%d].unitPrice", i), "单价不能为负")
		}
	}
	if order.Payment.Method != domain.PaymentMethodCOD && order.Payment.Method != domain.PaymentMethodPrepaid {
		fe.Add("paymentMethod", "支付方式非法")
	}
	if order.Total != order.Subtotal+order.Tax+order.ShippingFee {
		fe.Add("total", "总额不等于小计+税+运费")
	}
	return fe.AsError()
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, uid)
}

func (s *service) FindOrderByShippingPaymentLinkID(ctx context.Context, linkID string) (domain.Order, error) {
	return s.repo.FindOrderByShippingPaymentLinkID(ctx, linkID)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListOrdersByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByBuyerID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByBuyerID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

// Accept 仅允许 pending -> confirmed
func (s *service) Accept(ctx context.Context, cmd AcceptOrderCommand) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status != domain.OrderStatusPending {
		return domain.Order{}, fmt.Errorf("%w: %s -> confirmed", ErrInvalidStatusTransition, order.Status)
	}
	return s.transition(ctx, order, domain.OrderStatusConfirmed, event.OrderStatusEvent{Actor: cmd.Actor})
}

// Advance 沿 pending->confirmed->processing->shipped->delivered 推进一步
func (s *service) Advance(ctx context.Context, cmd AdvanceOrderCommand) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return domain.Order{}, err
	}
	next, ok := order.Status.Next()
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s已是终态", ErrInvalidStatusTransition, order.Status)
	}
	if next == domain.OrderStatusDelivered && s.deliveryBlocked(order) {
		return domain.Order{}, ErrDeliveryBlocked
	}
	return s.transition(ctx, order, next, event.OrderStatusEvent{Actor: cmd.Actor})
}

func (s *service) deliveryBlocked(order domain.Order) bool {
	if !s.policy.BlockDeliveryWhenUnpaid {
		return false
	}
	return order.Payment.Method == domain.PaymentMethodPrepaid &&
		(order.Payment.Status == domain.PaymentStatusAwaitingPayment ||
			order.Payment.Status == domain.PaymentStatusFailed)
}

// Cancel delivered和cancelled之外的任何状态都可以取消,
// 重复取消返回冲突且不发布事件
func (s *service) Cancel(ctx context.Context, cmd CancelOrderCommand) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status == domain.OrderStatusCancelled {
		return domain.Order{}, ErrAlreadyCancelled
	}
	if !order.Status.Cancellable() {
		return domain.Order{}, fmt.Errorf("%w: %s不允许取消", ErrInvalidStatusTransition, order.Status)
	}
	order.CancelReason = cmd.Reason
	return s.transition(ctx, order, domain.OrderStatusCancelled, event.OrderStatusEvent{
		Reason: cmd.Reason,
		Actor:  cmd.Actor,
	})
}

// OverrideStatus 可以写入任意状态值, 仅用于紧急修正,
// 每次调用都带理由与操作者落审计日志并发布事件
func (s *service) OverrideStatus(ctx context.Context, cmd OverrideStatusCommand) (domain.Order, error) {
	var fe validation.FieldErrors
	if _, ok := domain.OrderStatusFromString(cmd.Target.String()); !ok {
		fe.Add("target", "目标状态非法")
	}
	if cmd.Justification == "" {
		fe.Add("justification", "必须提供修正理由")
	}
	if cmd.Actor == "" {
		fe.Add("actor", "必须提供操作者")
	}
	if err := fe.AsError(); err != nil {
		return domain.Order{}, err
	}
	order, err := s.repo.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return domain.Order{}, err
	}
	s.l.Warn("订单状态被人工覆盖",
		elog.String("orderSN", order.SN),
		elog.String("old", order.Status.String()),
		elog.String("new", cmd.Target.String()),
		elog.String("actor", cmd.Actor),
		elog.String("justification", cmd.Justification))
	return s.transition(ctx, order, cmd.Target, event.OrderStatusEvent{
		Override:      true,
		Justification: cmd.Justification,
		Actor:         cmd.Actor,
	})
}

func (s *service) transition(ctx context.Context, order domain.Order, target domain.OrderStatus, meta event.OrderStatusEvent) (domain.Order, error) {
	old := order.Status
	err := s.repo.UpdateStatus(ctx, order.SN, order.Version, target, order.CancelReason)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = target
	order.Version++

	evt := meta
	evt.OrderSN = order.SN
	evt.OldStatus = old.String()
	evt.NewStatus = target.String()
	evt.PaymentMethod = order.Payment.Method.String()
	evt.PaymentStatus = order.Payment.Status.String()
	evt.ChangedAt = time.Now().UnixMilli()
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 事件发布失败不回滚状态, 只记录告警, 下游有轮询兜底
		s.l.Error("发布订单状态变更事件失败",
			elog.String("orderSN", order.SN),
			elog.FieldErr(er))
	}
	return order, nil
}

// SetGstDetails taxBase缺省取订单小计, taxAmount缺省按税率推导,
// 显式给出的taxAmount与推导值的偏差不能超过一个最小货币单位
func (s *service) SetGstDetails(ctx context.Context, cmd SetGstDetailsCommand) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, cmd.OrderSN)
	if err != nil {
		return domain.Order{}, err
	}
	g := cmd.Gst
	if g.TaxBase == 0 {
		g.TaxBase = order.Subtotal
	}
	if g.TaxAmount == 0 {
		g.TaxAmount = g.ComputedTaxAmount()
	}
	var fe validation.FieldErrors
	if g.TaxPercent < 0 || g.TaxPercent > 100 {
		fe.Add("taxPercent", "税率非法")
	}
	if diff := g.TaxAmount - g.ComputedTaxAmount(); diff > 1 || diff < -1 {
		fe.Add("taxAmount", "税额与税率推导值不一致")
	}
	if err = fe.AsError(); err != nil {
		return domain.Order{}, err
	}
	if err = s.repo.UpdateGst(ctx, order.SN, order.Version, g); err != nil {
		return domain.Order{}, err
	}
	order.Gst = g
	order.Version++
	return order, nil
}

func (s *service) SavePayment(ctx context.Context, sn string, version int64, p domain.PaymentRecord) error {
	return s.repo.UpdatePayment(ctx, sn, version, p)
}

func (s *service) SaveShipment(ctx context.Context, sn string, version int64, sh domain.ShipmentRecord) error {
	return s.repo.UpdateShipment(ctx, sn, version, sh)
}

func (s *service) SavePackage(ctx context.Context, sn string, version int64, p domain.ShippingPackage) error {
	return s.repo.UpdatePackage(ctx, sn, version, p)
}

func (s *service) SaveShippingPayment(ctx context.Context, sn string, version int64, sp domain.ShippingPayment) error {
	return s.repo.UpdateShippingPayment(ctx, sn, version, sp)
}
