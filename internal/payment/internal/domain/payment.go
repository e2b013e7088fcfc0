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

package domain

const (
	GatewayEventPaymentCaptured = "payment.captured"
	GatewayEventPaymentFailed   = "payment.failed"

	LinkEventPaid          = "payment_link.paid"
	LinkEventPartiallyPaid = "payment_link.partially_paid"
	LinkEventExpired       = "payment_link.expired"
	LinkEventCancelled     = "payment_link.cancelled"
)

// GatewayCallback 网关针对订单主支付的webhook回调,
// EventID用于去重, Signature为订单号与支付号的校验和
type GatewayCallback struct {
	EventID          string
	Event            string
	OrderSN          string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	Amount           int64
	OccurredAt       int64
}

// PaymentLinkCallback 补差价支付链接的webhook回调,
// 同一链接可能收到多笔部分支付
type PaymentLinkCallback struct {
	EventID          string
	Event            string
	LinkID           string
	GatewayPaymentID string
	AmountPaid       int64
	OccurredAt       int64
}
