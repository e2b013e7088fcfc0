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

const (
	OrderStatusEventName = "order-status-events"
	RefundEventName      = "payment-refund-events"
)

// OrderStatusEvent 订单模块发布的状态变更事件的本模块投影
type OrderStatusEvent struct {
	OrderSN       string `json:"orderSN"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	Reason        string `json:"reason,omitempty"`
	Override      bool   `json:"override,omitempty"`
	Justification string `json:"justification,omitempty"`
	Actor         string `json:"actor,omitempty"`
	ChangedAt     int64  `json:"changedAt"`
}

// RefundRequestedEvent 已支付订单被取消后向退款执行方发出的请求,
// 真正的资金划转由下游完成
type RefundRequestedEvent struct {
	OrderSN          string `json:"orderSN"`
	GatewayPaymentID string `json:"gatewayPaymentID"`
	Amount           int64  `json:"amount"`
	Reason           string `json:"reason,omitempty"`
	RequestedAt      int64  `json:"requestedAt"`
}
