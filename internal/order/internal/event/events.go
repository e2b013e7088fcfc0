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

const StatusEventName = "order-status-events"

// OrderStatusEvent 每次成功的状态转换都会发布一条,
// 供前端实时刷新、下游通知分发以及支付模块的联动消费
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
