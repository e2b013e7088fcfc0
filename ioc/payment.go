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

	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/payment"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitPaymentModule(db *egorm.Component, q mq.MQ, om *order.Module) *payment.Module {
	type RazorpayConfig struct {
		BaseURL       string `yaml:"baseURL"`
		KeyID         string `yaml:"keyID"`
		KeySecret     string `yaml:"keySecret"`
		WebhookSecret string `yaml:"webhookSecret"`
		TimeoutSec    int    `yaml:"timeoutSec"`
	}
	type PolicyConfig struct {
		AutoConfirmCODOnDelivered bool `yaml:"autoConfirmCODOnDelivered"`
	}
	var cfg RazorpayConfig
	err := econf.UnmarshalKey("razorpay", &cfg)
	if err != nil {
		panic(err)
	}
	var policy PolicyConfig
	err = econf.UnmarshalKey("payment", &policy)
	if err != nil {
		panic(err)
	}
	pm, err := payment.InitModule(db, q, om, payment.GatewayConfig{
		BaseURL:       cfg.BaseURL,
		KeyID:         cfg.KeyID,
		KeySecret:     cfg.KeySecret,
		WebhookSecret: cfg.WebhookSecret,
		Timeout:       time.Duration(cfg.TimeoutSec) * time.Second,
	}, payment.Policy{
		AutoConfirmCODOnDelivered: policy.AutoConfirmCODOnDelivered,
	})
	if err != nil {
		panic(err)
	}
	return pm
}
