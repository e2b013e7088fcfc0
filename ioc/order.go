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
	"github.com/desikart/fulfillment/internal/order"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitOrderModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) *order.Module {
	type OrderConfig struct {
		BlockDeliveryWhenUnpaid bool `yaml:"blockDeliveryWhenUnpaid"`
	}
	var cfg OrderConfig
	err := econf.UnmarshalKey("order", &cfg)
	if err != nil {
		panic(err)
	}
	om, err := order.InitModule(db, q, ec, order.Policy{
		BlockDeliveryWhenUnpaid: cfg.BlockDeliveryWhenUnpaid,
	})
	if err != nil {
		panic(err)
	}
	return om
}
