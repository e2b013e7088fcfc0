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

package payment

import (
	"sync"

	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment/internal/event"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	"github.com/desikart/fulfillment/internal/payment/internal/gateway/razorpay"
	"github.com/desikart/fulfillment/internal/payment/internal/repository"
	"github.com/desikart/fulfillment/internal/payment/internal/repository/dao"
	"github.com/desikart/fulfillment/internal/payment/internal/service"
	"github.com/desikart/fulfillment/internal/payment/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewWebhookEventRepository,
	initGatewayClient,
	event.NewRefundEventProducer,
	service.NewService,
	initConsumer,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, q mq.MQ, om *order.Module, cfg GatewayConfig, policy Policy) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initGatewayClient(cfg GatewayConfig) gateway.Client {
	return razorpay.NewClient(cfg)
}

func initConsumer(svc service.Service, q mq.MQ, policy Policy) (*event.OrderStatusEventConsumer, error) {
	return event.NewOrderStatusEventConsumer(svc, q, policy.AutoConfirmCODOnDelivered)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.WebhookEventDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewWebhookEventGORMDAO(db)
}
