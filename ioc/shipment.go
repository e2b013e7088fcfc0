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

package ioc

import (
	"time"

	"github.com/desikart/fulfillment/internal/media"
	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/shipment"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitShipmentModule(db *egorm.Component,
	q mq.MQ,
	ec ecache.Cache,
	om *order.Module,
	mm *media.Module) *shipment.Module {
	type ShiprocketConfig struct {
		BaseURL        string `yaml:"baseURL"`
		Email          string `yaml:"email"`
		Password       string `yaml:"password"`
		TimeoutSec     int    `yaml:"timeoutSec"`
		PickupLocation string `yaml:"pickupLocation"`
	}
	var cfg ShiprocketConfig
	err := econf.UnmarshalKey("shiprocket", &cfg)
	if err != nil {
		panic(err)
	}
	sm, err := shipment.InitModule(db, q, ec, om, mm, shipment.CarrierConfig{
		BaseURL:  cfg.BaseURL,
		Email:    cfg.Email,
		Password: cfg.Password,
		Timeout:  time.Duration(cfg.TimeoutSec) * time.Second,
	}, shipment.PickupLocation(cfg.PickupLocation))
	if err != nil {
		panic(err)
	}
	return sm
}
