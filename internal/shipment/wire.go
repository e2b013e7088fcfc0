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

//go:build wireinject

package shipment

import (
	"sync"

	"github.com/desikart/fulfillment/internal/media"
	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier/shiprocket"
	"github.com/desikart/fulfillment/internal/shipment/internal/event"
	"github.com/desikart/fulfillment/internal/shipment/internal/repository"
	"github.com/desikart/fulfillment/internal/shipment/internal/repository/dao"
	"github.com/desikart/fulfillment/internal/shipment/internal/service"
	"github.com/desikart/fulfillment/internal/shipment/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// PickupLocation 承运商后台配置的揽收点名称
type PickupLocation string

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewTrackingEventRepository,
	initCarrierClient,
	event.NewStageEventProducer,
	initService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	om *order.Module,
	mm *media.Module,
	cfg CarrierConfig,
	pickupLocation PickupLocation) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*media.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initCarrierClient(cfg CarrierConfig) carrier.Client {
	return shiprocket.NewClient(cfg)
}

func initService(orderSvc order.Service,
	carrierClient carrier.Client,
	trackingRepo repository.TrackingEventRepository,
	mediaSvc media.Service,
	producer event.StageEventProducer,
	cache ecache.Cache,
	pickupLocation PickupLocation) service.Service {
	return service.NewService(orderSvc, carrierClient, trackingRepo, mediaSvc, producer, cache, string(pickupLocation))
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.TrackingEventDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewTrackingEventGORMDAO(db)
}
