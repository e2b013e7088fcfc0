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

package event

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ReconcileService 消费侧用到的支付对账能力, 由service包实现
type ReconcileService interface {
	ConfirmCODCollected(ctx context.Context, orderSN string, actor string) error
	RequestRefund(ctx context.Context, orderSN string, reason string) error
}

// OrderStatusEventConsumer 订阅订单状态变更,
// 送达时按策略自动确认COD收款, 已支付订单取消时发起退款
type OrderStatusEventConsumer struct {
	svc      ReconcileService
	consumer mq.Consumer
	// autoConfirmCOD 对应策略 AutoConfirmCODOnDelivered
	autoConfirmCOD bool
	logger         *elog.Component
}

func NewOrderStatusEventConsumer(svc ReconcileService, q mq.MQ, autoConfirmCOD bool) (*OrderStatusEventConsumer, error) {
	groupID := "payment-order-status"
	consumer, err := q.Consumer(OrderStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderStatusEventConsumer{
		svc:            svc,
		consumer:       consumer,
		autoConfirmCOD: autoConfirmCOD,
		logger:         elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OrderStatusEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单状态变更事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderStatusEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt OrderStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	switch evt.NewStatus {
	case "delivered":
		if c.autoConfirmCOD && evt.PaymentMethod == "cod" {
			return c.svc.ConfirmCODCollected(ctx, evt.OrderSN, "system:auto-cod")
		}
		return nil
	case "cancelled":
		if evt.PaymentStatus == "paid" {
			return c.svc.RequestRefund(ctx, evt.OrderSN, evt.Reason)
		}
		return nil
	default:
		return nil
	}
}
