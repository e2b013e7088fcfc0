//go:build wireinject

package ioc

import (
	"github.com/desikart/fulfillment/internal/media"
	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment"
	"github.com/desikart/fulfillment/internal/pkg/middleware"
	"github.com/desikart/fulfillment/internal/shipment"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		middleware.NewMetricsBuilder,
		InitOrderModule,
		InitMediaModule,
		InitPaymentModule,
		InitShipmentModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*shipment.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*media.Module), "Hdl"),
		initConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}

func initConsumers(pm *payment.Module) []Consumer {
	return []Consumer{pm.Consumer}
}
