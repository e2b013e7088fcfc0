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

package domain

// OrderStatus 订单状态, 除cancelled外只能沿固定顺序单调推进
type OrderStatus uint8

const (
	OrderStatusPending    OrderStatus = 1
	OrderStatusConfirmed  OrderStatus = 2
	OrderStatusProcessing OrderStatus = 3
	OrderStatusShipped    OrderStatus = 4
	OrderStatusDelivered  OrderStatus = 5
	OrderStatusCancelled  OrderStatus = 6
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusConfirmed:
		return "confirmed"
	case OrderStatusProcessing:
		return "processing"
	case OrderStatusShipped:
		return "shipped"
	case OrderStatusDelivered:
		return "delivered"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Next 返回线性序列中的下一个状态, delivered和cancelled没有下一个状态
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped:
		return s + 1, true
	default:
		return 0, false
	}
}

// Cancellable cancelled为终态, delivered之后不允许再取消
func (s OrderStatus) Cancellable() bool {
	return s != OrderStatusDelivered && s != OrderStatusCancelled
}

func OrderStatusFromString(s string) (OrderStatus, bool) {
	for _, st := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}

type PaymentMethod uint8

const (
	PaymentMethodCOD     PaymentMethod = 1
	PaymentMethodPrepaid PaymentMethod = 2
)

func (m PaymentMethod) ToUint8() uint8 {
	return uint8(m)
}

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCOD:
		return "cod"
	case PaymentMethodPrepaid:
		return "prepaid"
	default:
		return "unknown"
	}
}

type PaymentStatus uint8

const (
	PaymentStatusAwaitingPayment PaymentStatus = 1
	PaymentStatusPaid            PaymentStatus = 2
	PaymentStatusFailed          PaymentStatus = 3
	PaymentStatusCODPending      PaymentStatus = 4
	PaymentStatusCODPaid         PaymentStatus = 5
	PaymentStatusRefunded        PaymentStatus = 6
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusAwaitingPayment:
		return "awaiting_payment"
	case PaymentStatusPaid:
		return "paid"
	case PaymentStatusFailed:
		return "failed"
	case PaymentStatusCODPending:
		return "cod_pending"
	case PaymentStatusCODPaid:
		return "cod_paid"
	case PaymentStatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// ShipmentStatus 承运商侧的推进状态, 取值与承运商API对齐
type ShipmentStatus string

const (
	ShipmentStatusOrderCreated    ShipmentStatus = "ORDER_CREATED"
	ShipmentStatusAWBAssigned     ShipmentStatus = "AWB_ASSIGNED"
	ShipmentStatusPickupGenerated ShipmentStatus = "PICKUP_GENERATED"
	ShipmentStatusLabelReady      ShipmentStatus = "LABEL_READY"
	ShipmentStatusInvoiceReady    ShipmentStatus = "INVOICE_READY"
	ShipmentStatusManifestReady   ShipmentStatus = "MANIFEST_READY"
	ShipmentStatusTrackingUpdated ShipmentStatus = "TRACKING_UPDATED"
)

type ShippingPaymentStatus uint8

const (
	ShippingPaymentStatusPending   ShippingPaymentStatus = 1
	ShippingPaymentStatusPaid      ShippingPaymentStatus = 2
	ShippingPaymentStatusPartial   ShippingPaymentStatus = 3
	ShippingPaymentStatusExpired   ShippingPaymentStatus = 4
	ShippingPaymentStatusCancelled ShippingPaymentStatus = 5
)

func (s ShippingPaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s ShippingPaymentStatus) String() string {
	switch s {
	case ShippingPaymentStatusPending:
		return "pending"
	case ShippingPaymentStatusPaid:
		return "paid"
	case ShippingPaymentStatusPartial:
		return "partial"
	case ShippingPaymentStatusExpired:
		return "expired"
	case ShippingPaymentStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Open pending或partial视为在途, 在途的补差价链接禁止重复创建
func (s ShippingPaymentStatus) Open() bool {
	return s == ShippingPaymentStatusPending || s == ShippingPaymentStatusPartial
}

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Items   []OrderItem

	ShippingAddress Address
	BillingAddress  Address

	// 金额单位为paise, 100表示1卢比
	Subtotal    int64
	Tax         int64
	ShippingFee int64
	Total       int64

	Status       OrderStatus
	CancelReason string

	Payment         PaymentRecord
	Shipment        ShipmentRecord
	Package         ShippingPackage
	ShippingPayment ShippingPayment
	Gst             GstDetails

	Version int64
	Ctime   int64
	Utime   int64
}

// TotalUnits 所有订单项的数量之和
func (o Order) TotalUnits() int64 {
	var units int64
	for _, it := range o.Items {
		units += it.Quantity
	}
	return units
}

type InvoiceSource string

const (
	InvoiceSourceGST     InvoiceSource = "gst"
	InvoiceSourceCarrier InvoiceSource = "carrier"
	InvoiceSourceNone    InvoiceSource = ""
)

// InvoiceURL 优先返回GST发票, 否则回退到承运商生成的发票,
// 同时告知调用方URL的来源, 前端按来源展示不同的标签
func (o Order) InvoiceURL() (string, InvoiceSource) {
	if o.Gst.InvoiceURL != "" {
		return o.Gst.InvoiceURL, InvoiceSourceGST
	}
	if o.Shipment.InvoiceURL != "" {
		return o.Shipment.InvoiceURL, InvoiceSourceCarrier
	}
	return "", InvoiceSourceNone
}

type OrderItem struct {
	ProductID int64
	Name      string
	SKU       string
	UnitPrice int64
	Quantity  int64
}

type Address struct {
	Name    string
	Phone   string
	Email   string
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
	Country string
}

type PaymentRecord struct {
	Method           PaymentMethod
	Status           PaymentStatus
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	PaidAt           int64
}

type ShipmentRecord struct {
	ShipmentID     int64
	CarrierOrderID int64
	AWBCode        string
	CourierName    string
	Status         ShipmentStatus
	PickupAt       int64
	LabelURL       string
	InvoiceURL     string
	ManifestURL    string
}

type ShippingPackage struct {
	// 长宽高单位为cm, 重量单位为kg
	Length   float64
	Breadth  float64
	Height   float64
	Weight   float64
	Notes    string
	Images   []string
	PackedAt int64
}

type ShippingPayment struct {
	LinkID     string
	ShortURL   string
	Status     ShippingPaymentStatus
	Currency   string
	Amount     int64
	AmountPaid int64
	PaymentIDs []string
	PaidAt     int64
}

// ApplyCapture 把一笔针对补差价链接的支付累加进来, 支持多笔部分支付,
// AmountPaid永远不会超过Amount, 凑够Amount的那一笔把状态置为paid
func (sp ShippingPayment) ApplyCapture(paymentID string, amount, now int64) ShippingPayment {
	for _, id := range sp.PaymentIDs {
		if id == paymentID {
			return sp
		}
	}
	sp.PaymentIDs = append(sp.PaymentIDs, paymentID)
	sp.AmountPaid += amount
	if sp.AmountPaid > sp.Amount {
		sp.AmountPaid = sp.Amount
	}
	if sp.AmountPaid >= sp.Amount {
		sp.Status = ShippingPaymentStatusPaid
		if sp.PaidAt == 0 {
			sp.PaidAt = now
		}
	} else if sp.AmountPaid > 0 {
		sp.Status = ShippingPaymentStatusPartial
	}
	return sp
}

type GstDetails struct {
	WantInvoice   bool
	Gstin         string
	LegalName     string
	PlaceOfSupply string
	// TaxPercent 为整数百分比, 法定档位 0/5/12/18/28
	TaxPercent    int64
	TaxBase       int64
	TaxAmount     int64
	InvoiceNumber string
	InvoiceURL    string
}

// ComputedTaxAmount 四舍五入到最小货币单位
func (g GstDetails) ComputedTaxAmount() int64 {
	return (g.TaxBase*g.TaxPercent + 50) / 100
}
