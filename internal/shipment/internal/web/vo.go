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

package web

import (
	"github.com/desikart/fulfillment/internal/order"
)

type StageReq struct {
	OrderSN string `json:"orderSN"`
}

type StageAck struct {
	OrderSN string `json:"orderSN"`
	Stage   string `json:"stage"`
	// 异步执行, 调用方通过轮询或事件获知结果
	Accepted bool `json:"accepted"`
}

type ShipmentStatusReq struct {
	OrderSN string `json:"orderSN"`
}

type Shipment struct {
	ShipmentID     int64  `json:"shipmentID,omitempty"`
	CarrierOrderID int64  `json:"carrierOrderID,omitempty"`
	AWBCode        string `json:"awbCode,omitempty"`
	CourierName    string `json:"courierName,omitempty"`
	Status         string `json:"status,omitempty"`
	PickupAt       int64  `json:"pickupAt,omitempty"`
	LabelURL       string `json:"labelURL,omitempty"`
	InvoiceURL     string `json:"invoiceURL,omitempty"`
	ManifestURL    string `json:"manifestURL,omitempty"`
}

func newShipment(r order.ShipmentRecord) Shipment {
	return Shipment{
		ShipmentID:     r.ShipmentID,
		CarrierOrderID: r.CarrierOrderID,
		AWBCode:        r.AWBCode,
		CourierName:    r.CourierName,
		Status:         string(r.Status),
		PickupAt:       r.PickupAt,
		LabelURL:       r.LabelURL,
		InvoiceURL:     r.InvoiceURL,
		ManifestURL:    r.ManifestURL,
	}
}

type SavePackageReq struct {
	OrderSN  string   `json:"orderSN"`
	Length   float64  `json:"length"`
	Breadth  float64  `json:"breadth"`
	Height   float64  `json:"height"`
	Weight   float64  `json:"weight"`
	Notes    string   `json:"notes"`
	Images   []string `json:"images"`
	Operator string   `json:"operator"`
}

type TrackingCallbackReq struct {
	EventID       string `json:"event_id"`
	OrderSN       string `json:"order_sn"`
	AWBCode       string `json:"awb"`
	CurrentStatus string `json:"current_status"`
	Timestamp     int64  `json:"timestamp"`
}
