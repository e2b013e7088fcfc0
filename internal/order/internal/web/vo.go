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

// CreateOrderReq 下单入口由结算协作方调用, RequestID用于请求去重
type CreateOrderReq struct {
	RequestID       string      `json:"requestID"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	Subtotal        int64       `json:"subtotal"`
	Tax             int64       `json:"tax"`
	ShippingFee     int64       `json:"shippingFee"`
	Total           int64       `json:"total"`
	PaymentMethod   string      `json:"paymentMethod"` // cod | prepaid
	GatewayOrderID  string      `json:"gatewayOrderID,omitempty"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type RetrieveOrderStatusReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type CancelOrderReq struct {
	OrderSN string `json:"sn"`
	Reason  string `json:"reason"`
}

type AcceptOrderReq struct {
	OrderSN  string `json:"sn"`
	Operator string `json:"operator"`
}

type AdvanceOrderReq struct {
	OrderSN  string `json:"sn"`
	Operator string `json:"operator"`
}

// OverrideStatusReq 审计型状态覆盖, 理由与操作者必填
type OverrideStatusReq struct {
	OrderSN       string `json:"sn"`
	Target        string `json:"target"`
	Justification string `json:"justification"`
	Operator      string `json:"operator"`
}

type SaveGstDetailsReq struct {
	OrderSN       string `json:"sn"`
	WantInvoice   bool   `json:"wantInvoice"`
	Gstin         string `json:"gstin"`
	LegalName     string `json:"legalName"`
	PlaceOfSupply string `json:"placeOfSupply"`
	TaxPercent    int64  `json:"taxPercent"`
	TaxBase       int64  `json:"taxBase,omitempty"`
	TaxAmount     int64  `json:"taxAmount,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	InvoiceURL    string `json:"invoiceURL,omitempty"`
	Operator      string `json:"operator"`
}

// Order 对外只有一个规范的status字段, 历史上的orderStatus别名在此统一
type Order struct {
	SN              string          `json:"sn"`
	Status          string          `json:"status"`
	CancelReason    string          `json:"cancelReason,omitempty"`
	Items           []OrderItem     `json:"items,omitempty"`
	ShippingAddress Address         `json:"shippingAddress"`
	Subtotal        int64           `json:"subtotal"`
	Tax             int64           `json:"tax"`
	ShippingFee     int64           `json:"shippingFee"`
	Total           int64           `json:"total"`
	Payment         Payment         `json:"payment"`
	Shipment        Shipment        `json:"shipment"`
	Package         Package         `json:"package"`
	ShippingPayment ShippingPayment `json:"shippingPayment"`
	Gst             Gst             `json:"gst"`
	InvoiceURL      string          `json:"invoiceURL,omitempty"`
	InvoiceSource   string          `json:"invoiceSource,omitempty"`
	Ctime           int64           `json:"ctime"`
	Utime           int64           `json:"utime"`
}

type Payment struct {
	Method           string `json:"method"`
	Status           string `json:"status"`
	GatewayOrderID   string `json:"gatewayOrderID,omitempty"`
	GatewayPaymentID string `json:"gatewayPaymentID,omitempty"`
	PaidAt           int64  `json:"paidAt,omitempty"`
}

type Shipment struct {
	ShipmentID  int64  `json:"shipmentID,omitempty"`
	AWBCode     string `json:"awbCode,omitempty"`
	CourierName string `json:"courierName,omitempty"`
	Status      string `json:"status,omitempty"`
	LabelURL    string `json:"labelURL,omitempty"`
	InvoiceURL  string `json:"invoiceURL,omitempty"`
	ManifestURL string `json:"manifestURL,omitempty"`
}

type Package struct {
	Length   float64  `json:"length,omitempty"`
	Breadth  float64  `json:"breadth,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Weight   float64  `json:"weight,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Images   []string `json:"images,omitempty"`
	PackedAt int64    `json:"packedAt,omitempty"`
}

type ShippingPayment struct {
	LinkID     string `json:"linkID,omitempty"`
	ShortURL   string `json:"shortURL,omitempty"`
	Status     string `json:"status,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
	AmountPaid int64  `json:"amountPaid,omitempty"`
	PaidAt     int64  `json:"paidAt,omitempty"`
}

type Gst struct {
	WantInvoice   bool   `json:"wantInvoice"`
	Gstin         string `json:"gstin,omitempty"`
	LegalName     string `json:"legalName,omitempty"`
	PlaceOfSupply string `json:"placeOfSupply,omitempty"`
	TaxPercent    int64  `json:"taxPercent,omitempty"`
	TaxBase       int64  `json:"taxBase,omitempty"`
	TaxAmount     int64  `json:"taxAmount,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
}
