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

package payment

import (
	"github.com/desikart/fulfillment/internal/payment/internal/domain"
	"github.com/desikart/fulfillment/internal/payment/internal/event"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway/razorpay"
	"github.com/desikart/fulfillment/internal/payment/internal/service"
	"github.com/desikart/fulfillment/internal/payment/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Policy       = service.Policy

	GatewayClient = gateway.Client
	GatewayConfig = razorpay.Config

	GatewayCallback      = domain.GatewayCallback
	PaymentLinkCallback  = domain.PaymentLinkCallback
	RefundRequestedEvent = event.RefundRequestedEvent

	OrderStatusEventConsumer = event.OrderStatusEventConsumer
)

var (
	ErrInvalidSignature  = service.ErrInvalidSignature
	ErrNotCODOrder       = service.ErrNotCODOrder
	ErrPendingLinkExists = service.ErrPendingLinkExists
	ErrNoPaymentLink     = service.ErrNoPaymentLink
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	Consumer *OrderStatusEventConsumer
}
