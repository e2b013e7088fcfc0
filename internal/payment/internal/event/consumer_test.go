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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconcileService struct {
	codConfirms []string
	refunds     []string
}

func (f *fakeReconcileService) ConfirmCODCollected(_ context.Context, orderSN string, _ string) error {
	f.codConfirms = append(f.codConfirms, orderSN)
	return nil
}

func (f *fakeReconcileService) RequestRefund(_ context.Context, orderSN string, _ string) error {
	f.refunds = append(f.refunds, orderSN)
	return nil
}

func TestOrderStatusEventConsumer(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name            string
		evt             OrderStatusEvent
		autoConfirmCOD  bool
		wantCODConfirms []string
		wantRefunds     []string
	}{
		{
			name: "COD送达自动确认收款",
			evt: OrderStatusEvent{
				OrderSN:       "OR1001",
				OldStatus:     "shipped",
				NewStatus:     "delivered",
				PaymentMethod: "cod",
				PaymentStatus: "cod_pending",
			},
			autoConfirmCOD:  true,
			wantCODConfirms: []string{"OR1001"},
		},
		{
			name: "策略关闭时不自动确认",
			evt: OrderStatusEvent{
				OrderSN:       "OR1002",
				NewStatus:     "delivered",
				PaymentMethod: "cod",
				PaymentStatus: "cod_pending",
			},
			autoConfirmCOD: false,
		},
		{
			name: "已支付订单取消触发退款请求",
			evt: OrderStatusEvent{
				OrderSN:       "OR1003",
				OldStatus:     "confirmed",
				NewStatus:     "cancelled",
				PaymentMethod: "prepaid",
				PaymentStatus: "paid",
				Reason:        "缺货",
			},
			autoConfirmCOD: true,
			wantRefunds:    []string{"OR1003"},
		},
		{
			name: "未支付订单取消不触发退款",
			evt: OrderStatusEvent{
				OrderSN:       "OR1004",
				NewStatus:     "cancelled",
				PaymentMethod: "prepaid",
				PaymentStatus: "awaiting_payment",
			},
			autoConfirmCOD: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), OrderStatusEventName, 1))

			svc := &fakeReconcileService{}
			consumer, err := NewOrderStatusEventConsumer(svc, q, tc.autoConfirmCOD)
			require.NoError(t, err)

			producer, err := q.Producer(OrderStatusEventName)
			require.NoError(t, err)
			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			require.NoError(t, consumer.Consume(ctx))

			assert.Equal(t, tc.wantCODConfirms, svc.codConfirms)
			assert.Equal(t, tc.wantRefunds, svc.refunds)
		})
	}
}
