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

package shipment

import (
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier/shiprocket"
	"github.com/desikart/fulfillment/internal/shipment/internal/domain"
	"github.com/desikart/fulfillment/internal/shipment/internal/event"
	"github.com/desikart/fulfillment/internal/shipment/internal/service"
	"github.com/desikart/fulfillment/internal/shipment/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service

	Stage = domain.Stage

	CarrierClient = carrier.Client
	CarrierConfig = shiprocket.Config
	APIError      = carrier.APIError

	TrackingCallback    = domain.TrackingCallback
	StageCompletedEvent = event.StageCompletedEvent
	SavePackageCommand  = service.SavePackageCommand
)

const (
	StageCreateOrder      = domain.StageCreateOrder
	StageAssignAWB        = domain.StageAssignAWB
	StageGeneratePickup   = domain.StageGeneratePickup
	StageGenerateLabel    = domain.StageGenerateLabel
	StageGenerateInvoice  = domain.StageGenerateInvoice
	StageGenerateManifest = domain.StageGenerateManifest
)

var (
	ErrStageInProgress    = service.ErrStageInProgress
	ErrPreconditionNotMet = service.ErrPreconditionNotMet
	ErrUnknownStage       = service.ErrUnknownStage
	ErrRetriable          = carrier.ErrRetriable
	ErrOrderAlreadyExists = carrier.ErrOrderAlreadyExists
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
