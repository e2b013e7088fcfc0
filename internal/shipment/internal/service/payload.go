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

package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/desikart/fulfillment/internal/order"
	"github.com/desikart/fulfillment/internal/pkg/validation"
	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
)

// 承运商对包裹的兜底参数
const (
	defaultLength  = 12.0
	defaultBreadth = 10.0
	defaultHeight  = 4.0
	// 每件商品估重kg
	unitWeight = 0.25
)

// buildCreateOrderPayload 把订单映射为承运商下单报文,
// 所有字段校验在任何外部调用之前完成, 一次性收集全部错误
func buildCreateOrderPayload(o order.Order, pickupLocation string) (carrier.CreateOrderReq, error) {
	var fe validation.FieldErrors

	addr := o.ShippingAddress
	phone, ok := normalizePhone(addr.Phone)
	if !ok {
		fe.Add("shippingAddress.phone", "手机号必须是10位数字")
	}
	if !validPincode(addr.Pincode) {
		fe.Add("shippingAddress.pincode", "邮编必须是6位数字")
	}
	if addr.Name == "" {
		fe.Add("shippingAddress.name", "收件人不能为空")
	}
	if addr.Line1 == "" {
		fe.Add("shippingAddress.line1", "地址不能为空")
	}
	if addr.City == "" {
		fe.Add("shippingAddress.city", "城市不能为空")
	}
	if addr.State == "" {
		fe.Add("shippingAddress.state", "邦不能为空")
	}
	if len(o.Items) == 0 {
		fe.Add("items", "订单项不能为空")
	}
	for i, it := range o.Items {
		if it.Quantity <= 0 {
			fe.Add(fmt.Sprintf("items[%d].quantity", i), "数量必须大于0")
		}
	}
	if err := fe.AsError(); err != nil {
		return carrier.CreateOrderReq{}, err
	}

	items := make([]carrier.Item, 0, len(o.Items))
	for _, it := range o.Items {
		sku := it.SKU
		if sku == "" {
			// 承运商要求SKU非空
			sku = fmt.Sprintf("SKU-%d", it.ProductID)
		}
		// 承运商拒绝0价商品行
		price := paiseToRupees(it.UnitPrice)
		if price < 1 {
			price = 1
		}
		items = append(items, carrier.Item{
			Name:         it.Name,
			SKU:          sku,
			SellingPrice: price,
			Units:        it.Quantity,
		})
	}

	subTotal := paiseToRupees(o.Subtotal)
	if subTotal < 1 {
		subTotal = 1
	}

	method := "Prepaid"
	if o.Payment.Method == order.PaymentMethodCOD {
		method = "COD"
	}

	length, breadth, height := o.Package.Length, o.Package.Breadth, o.Package.Height
	if length <= 0 || breadth <= 0 || height <= 0 {
		length, breadth, height = defaultLength, defaultBreadth, defaultHeight
	}
	weight := o.Package.Weight
	if weight <= 0 {
		weight = unitWeight * float64(o.TotalUnits())
		if weight < unitWeight {
			weight = unitWeight
		}
	}

	country := addr.Country
	if country == "" {
		country = "India"
	}

	return carrier.CreateOrderReq{
		OrderSN:        o.SN,
		OrderDate:      time.Now().Format("2006-01-02"),
		PickupLocation: pickupLocation,
		CustomerName:   addr.Name,
		CustomerPhone:  phone,
		CustomerEmail:  addr.Email,
		AddressLine1:   addr.Line1,
		AddressLine2:   addr.Line2,
		City:           addr.City,
		State:          addr.State,
		Pincode:        addr.Pincode,
		Country:        country,
		Items:          items,
		SubTotal:       subTotal,
		PaymentMethod:  method,
		Length:         length,
		Breadth:        breadth,
		Height:         height,
		Weight:         weight,
	}, nil
}

func paiseToRupees(p int64) float64 {
	return float64(p) / 100
}

// normalizePhone 去掉所有非数字字符, 12位且以91开头时去掉国家码,
// 最终必须恰好10位
func normalizePhone(raw string) (string, bool) {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

func validPincode(p string) bool {
	if len(p) != 6 {
		return false
	}
	for _, r := range p {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
