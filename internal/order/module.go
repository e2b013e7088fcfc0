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

package order

import (
	"github.com/desikart/fulfillment/internal/order/internal/domain"
	"github.com/desikart/fulfillment/internal/order/internal/event"
	"github.com/desikart/fulfillment/internal/order/internal/service"
	"github.com/desikart/fulfillment/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Policy       = service.Policy

	Order           = domain.Order
	OrderItem       = domain.OrderItem
	Address         = domain.Address
	PaymentRecord   = domain.PaymentRecord
	ShipmentRecord  = domain.ShipmentRecord
	ShippingPackage = domain.ShippingPackage
	ShippingPayment = domain.ShippingPayment
	GstDetails      = domain.GstDetails

	OrderStatus           = domain.OrderStatus
	PaymentMethod         = domain.PaymentMethod
	PaymentStatus         = domain.PaymentStatus
	ShipmentStatus        = domain.ShipmentStatus
	ShippingPaymentStatus = domain.ShippingPaymentStatus

	StatusEvent = event.OrderStatusEvent

	AcceptOrderCommand    = service.AcceptOrderCommand
	AdvanceOrderCommand   = service.AdvanceOrderCommand
	CancelOrderCommand    = service.CancelOrderCommand
	OverrideStatusCommand = service.OverrideStatusCommand
)

const (
	StatusPending    = domain.OrderStatusPending
	StatusConfirmed  = domain.OrderStatusConfirmed
	StatusProcessing = domain.OrderStatusProcessing
	StatusShipped    = domain.OrderStatusShipped
	StatusDelivered  = domain.OrderStatusDelivered
	StatusCancelled  = domain.OrderStatusCancelled

	PaymentMethodCOD     = domain.PaymentMethodCOD
	PaymentMethodPrepaid = domain.PaymentMethodPrepaid

	PaymentStatusAwaitingPayment = domain.PaymentStatusAwaitingPayment
	PaymentStatusPaid            = domain.PaymentStatusPaid
	PaymentStatusFailed          = domain.PaymentStatusFailed
	PaymentStatusCODPending      = domain.PaymentStatusCODPending
	PaymentStatusCODPaid         = domain.PaymentStatusCODPaid
	PaymentStatusRefunded        = domain.PaymentStatusRefunded

	ShipmentStatusOrderCreated    = domain.ShipmentStatusOrderCreated
	ShipmentStatusAWBAssigned     = domain.ShipmentStatusAWBAssigned
	ShipmentStatusPickupGenerated = domain.ShipmentStatusPickupGenerated
	ShipmentStatusLabelReady      = domain.ShipmentStatusLabelReady
	ShipmentStatusInvoiceReady    = domain.ShipmentStatusInvoiceReady
	ShipmentStatusManifestReady   = domain.ShipmentStatusManifestReady
	ShipmentStatusTrackingUpdated = domain.ShipmentStatusTrackingUpdated

	ShippingPaymentStatusPending   = domain.ShippingPaymentStatusPending
	ShippingPaymentStatusPaid      = domain.ShippingPaymentStatusPaid
	ShippingPaymentStatusPartial   = domain.ShippingPaymentStatusPartial
	ShippingPaymentStatusExpired   = domain.ShippingPaymentStatusExpired
	ShippingPaymentStatusCancelled = domain.ShippingPaymentStatusCancelled

	StatusEventName = event.StatusEventName
)

var (
	ErrOrderNotFound           = service.ErrOrderNotFound
	ErrConcurrentModification  = service.ErrConcurrentModification
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
	ErrAlreadyCancelled        = service.ErrAlreadyCancelled
	ErrDeliveryBlocked         = service.ErrDeliveryBlocked
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
