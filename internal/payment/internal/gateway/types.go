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

package gateway

import "context"

// GatewayOrder 网关侧订单, 预付订单发起收款前必须先创建
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

type PaymentLink struct {
	ID       string
	ShortURL string
	Amount   int64
	Currency string
	Status   string
}

type CreateGatewayOrderReq struct {
	// Amount 单位paise
	Amount   int64
	Currency string
	// Receipt 透传订单序列号, 回调时用于定位订单
	Receipt string
}

type CreatePaymentLinkReq struct {
	Amount      int64
	Currency    string
	Description string
	ReferenceID string
	// AcceptPartial 补差价链接允许多笔部分支付
	AcceptPartial bool
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// Client 收款网关客户端, 签名校验不发起网络调用
//
//go:generate mockgen -source=./types.go -destination=./mocks/gateway.mock.go -package=gatewaymocks -typed=true Client
type Client interface {
	CreateOrder(ctx context.Context, req CreateGatewayOrderReq) (GatewayOrder, error)
	CreatePaymentLink(ctx context.Context, req CreatePaymentLinkReq) (PaymentLink, error)
	CancelPaymentLink(ctx context.Context, linkID string) error
	VerifyWebhookSignature(body []byte, signature string) bool
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}
