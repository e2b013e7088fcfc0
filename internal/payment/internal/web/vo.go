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

package web

// GatewayCallbackReq 主支付webhook报文, 整包签名在HTTP头中
type GatewayCallbackReq struct {
	EventID          string `json:"eventID"`
	Event            string `json:"event"`
	OrderSN          string `json:"orderSN"`
	GatewayOrderID   string `json:"gatewayOrderID"`
	GatewayPaymentID string `json:"gatewayPaymentID"`
	Signature        string `json:"signature"`
	Amount           int64  `json:"amount"`
	OccurredAt       int64  `json:"occurredAt"`
}

// PaymentLinkCallbackReq 补差价链接webhook报文
type PaymentLinkCallbackReq struct {
	EventID          string `json:"eventID"`
	Event            string `json:"event"`
	LinkID           string `json:"linkID"`
	GatewayPaymentID string `json:"gatewayPaymentID"`
	AmountPaid       int64  `json:"amountPaid"`
	OccurredAt       int64  `json:"occurredAt"`
}

type EnsureGatewayOrderReq struct {
	OrderSN string `json:"sn"`
}

type EnsureGatewayOrderResp struct {
	GatewayOrderID string `json:"gatewayOrderID"`
	Amount         int64  `json:"amount"`
}

type ConfirmCODReq struct {
	OrderSN  string `json:"sn"`
	Operator string `json:"operator"`
}

type CreateShippingLinkReq struct {
	OrderSN     string `json:"sn"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Operator    string `json:"operator"`
}

type CreateShippingLinkResp struct {
	LinkID   string `json:"linkID"`
	ShortURL string `json:"shortURL"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

type CancelShippingLinkReq struct {
	OrderSN string `json:"sn"`
}
