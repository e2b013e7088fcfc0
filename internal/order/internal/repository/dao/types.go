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

package dao

import (
	"github.com/ecodeclub/ekit/sqlx"
)

// Order 订单聚合根, 原文档模型的内嵌对象被平铺为列,
// 地址快照和图片列表保留为JSON列
type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`

	ShippingAddress sqlx.JsonColumn[Address] `gorm:"type:json;comment:收货地址快照"`
	BillingAddress  sqlx.JsonColumn[Address] `gorm:"type:json;comment:账单地址快照"`

	Subtotal    int64 `gorm:"not null;comment:商品小计;单位为paise"`
	Tax         int64 `gorm:"not null;comment:税额;单位为paise"`
	ShippingFee int64 `gorm:"not null;comment:预收运费;单位为paise"`
	Total       int64 `gorm:"not null;comment:订单总额;单位为paise"`

	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=pending 2=confirmed 3=processing 4=shipped 5=delivered 6=cancelled"`
	CancelReason string `gorm:"type:varchar(512);comment:取消原因"`

	PaymentMethod    uint8  `gorm:"type:tinyint unsigned;not null;comment:支付方式 1=cod 2=prepaid"`
	PaymentStatus    uint8  `gorm:"type:tinyint unsigned;not null;comment:支付状态 1=awaiting_payment 2=paid 3=failed 4=cod_pending 5=cod_paid 6=refunded"`
	GatewayOrderId   string `gorm:"type:varchar(128);index:idx_gateway_order_id;comment:网关订单ID"`
	GatewayPaymentId string `gorm:"type:varchar(128);comment:网关支付ID"`
	GatewaySignature string `gorm:"type:varchar(256);comment:网关回调签名"`
	PaidAt           int64  `gorm:"comment:支付完成时间"`

	ShipmentId     int64  `gorm:"index:idx_shipment_id;comment:承运商shipment ID"`
	CarrierOrderId int64  `gorm:"comment:承运商订单ID"`
	AwbCode        string `gorm:"type:varchar(64);comment:运单号"`
	CourierName    string `gorm:"type:varchar(128);comment:快递公司名称"`
	ShipmentStatus string `gorm:"type:varchar(32);comment:承运商侧状态"`
	PickupAt       int64  `gorm:"comment:取件预约时间"`
	LabelUrl       string `gorm:"type:varchar(512);comment:面单URL"`
	InvoiceUrl     string `gorm:"type:varchar(512);comment:承运商发票URL"`
	ManifestUrl    string `gorm:"type:varchar(512);comment:交接清单URL"`

	PkgLength  float64                   `gorm:"comment:包裹长;单位cm"`
	PkgBreadth float64                   `gorm:"comment:包裹宽;单位cm"`
	PkgHeight  float64                   `gorm:"comment:包裹高;单位cm"`
	PkgWeight  float64                   `gorm:"comment:包裹重量;单位kg"`
	PkgNotes   string                    `gorm:"type:varchar(1024);comment:打包备注"`
	PkgImages  sqlx.JsonColumn[[]string] `gorm:"type:json;comment:包裹照片URL列表,最多5张"`
	PackedAt   int64                     `gorm:"comment:打包完成时间"`

	SpLinkId     string                    `gorm:"type:varchar(128);index:idx_sp_link_id;comment:补差价支付链接ID"`
	SpShortUrl   string                    `gorm:"type:varchar(512);comment:补差价支付短链"`
	SpStatus     uint8                     `gorm:"type:tinyint unsigned;comment:补差价状态 1=pending 2=paid 3=partial 4=expired 5=cancelled"`
	SpCurrency   string                    `gorm:"type:varchar(8);comment:补差价币种"`
	SpAmount     int64                     `gorm:"comment:补差价应收金额;单位为paise"`
	SpAmountPaid int64                     `gorm:"comment:补差价已收金额;单位为paise"`
	SpPaymentIds sqlx.JsonColumn[[]string] `gorm:"type:json;comment:已应用的网关支付ID列表"`
	SpPaidAt     int64                     `gorm:"comment:补差价付清时间"`

	GstWantInvoice   bool   `gorm:"comment:是否需要GST发票"`
	Gstin            string `gorm:"type:varchar(32);comment:买方GSTIN"`
	GstLegalName     string `gorm:"type:varchar(256);comment:买方法定名称"`
	GstPlaceOfSupply string `gorm:"type:varchar(64);comment:供应地"`
	GstTaxPercent    int64  `gorm:"comment:税率百分比"`
	GstTaxBase       int64  `gorm:"comment:计税基数;单位为paise"`
	GstTaxAmount     int64  `gorm:"comment:税额;单位为paise"`
	GstInvoiceNumber string `gorm:"type:varchar(64);comment:GST发票号"`
	GstInvoiceUrl    string `gorm:"type:varchar(512);comment:GST发票URL"`

	Version int64 `gorm:"not null;default:1;comment:乐观锁版本号"`
	Ctime   int64
	Utime   int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品ID"`
	Name      string `gorm:"type:varchar(256);not null;comment:商品名称快照"`
	SKU       string `gorm:"type:varchar(128);comment:SKU编码,可为空,投递承运商时兜底合成"`
	UnitPrice int64  `gorm:"not null;comment:单价;单位为paise"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}
