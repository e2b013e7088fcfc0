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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Next(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		status OrderStatus
		want   OrderStatus
		wantOK bool
	}{
		{name: "pending推进到confirmed", status: OrderStatusPending, want: OrderStatusConfirmed, wantOK: true},
		{name: "confirmed推进到processing", status: OrderStatusConfirmed, want: OrderStatusProcessing, wantOK: true},
		{name: "processing推进到shipped", status: OrderStatusProcessing, want: OrderStatusShipped, wantOK: true},
		{name: "shipped推进到delivered", status: OrderStatusShipped, want: OrderStatusDelivered, wantOK: true},
		{name: "delivered为终态", status: OrderStatusDelivered, wantOK: false},
		{name: "cancelled为终态", status: OrderStatusCancelled, wantOK: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, ok := tc.status.Next()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, next)
			}
		})
	}
}

func TestOrderStatus_Cancellable(t *testing.T) {
	t.Parallel()
	for _, st := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
	} {
		assert.True(t, st.Cancellable(), st.String())
	}
	assert.False(t, OrderStatusDelivered.Cancellable())
	assert.False(t, OrderStatusCancelled.Cancellable())
}

func TestOrderStatusFromString(t *testing.T) {
	t.Parallel()
	for _, st := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		got, ok := OrderStatusFromString(st.String())
		require.True(t, ok)
		assert.Equal(t, st, got)
	}
	_, ok := OrderStatusFromString("returned")
	assert.False(t, ok)
}

func TestShippingPayment_ApplyCapture(t *testing.T) {
	t.Parallel()
	base := ShippingPayment{
		LinkID:   "plink_1",
		Status:   ShippingPaymentStatusPending,
		Currency: "INR",
		Amount:   10000,
	}

	t.Run("部分支付", func(t *testing.T) {
		t.Parallel()
		sp := base.ApplyCapture("pay_1", 4000, 1700000000000)
		assert.Equal(t, int64(4000), sp.AmountPaid)
		assert.Equal(t, ShippingPaymentStatusPartial, sp.Status)
		assert.Zero(t, sp.PaidAt)
	})

	t.Run("同一paymentID重复投递只累加一次", func(t *testing.T) {
		t.Parallel()
		sp := base.ApplyCapture("pay_1", 4000, 1700000000000)
		sp = sp.ApplyCapture("pay_1", 4000, 1700000000001)
		assert.Equal(t, int64(4000), sp.AmountPaid)
		assert.Equal(t, []string{"pay_1"}, sp.PaymentIDs)
	})

	t.Run("多笔凑满后置为paid且只记录首次PaidAt", func(t *testing.T) {
		t.Parallel()
		sp := base.ApplyCapture("pay_1", 4000, 100)
		sp = sp.ApplyCapture("pay_2", 6000, 200)
		assert.Equal(t, int64(10000), sp.AmountPaid)
		assert.Equal(t, ShippingPaymentStatusPaid, sp.Status)
		assert.Equal(t, int64(200), sp.PaidAt)
		sp = sp.ApplyCapture("pay_3", 500, 300)
		assert.Equal(t, int64(10000), sp.AmountPaid)
		assert.Equal(t, int64(200), sp.PaidAt)
	})

	t.Run("超额支付截断到Amount", func(t *testing.T) {
		t.Parallel()
		sp := base.ApplyCapture("pay_1", 12000, 100)
		assert.Equal(t, int64(10000), sp.AmountPaid)
		assert.Equal(t, ShippingPaymentStatusPaid, sp.Status)
	})
}

func TestGstDetails_ComputedTaxAmount(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		percent int64
		base    int64
		want    int64
	}{
		{name: "零税率", percent: 0, base: 100000, want: 0},
		{name: "5%", percent: 5, base: 100000, want: 5000},
		{name: "12%", percent: 12, base: 99999, want: 12000},
		{name: "18%", percent: 18, base: 100000, want: 18000},
		{name: "28%", percent: 28, base: 3, want: 1},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := GstDetails{TaxPercent: tc.percent, TaxBase: tc.base}
			assert.Equal(t, tc.want, g.ComputedTaxAmount())
		})
	}
}

func TestOrder_InvoiceURL(t *testing.T) {
	t.Parallel()
	t.Run("GST发票优先", func(t *testing.T) {
		t.Parallel()
		o := Order{
			Gst:      GstDetails{InvoiceURL: "https://cdn.example.com/gst.pdf"},
			Shipment: ShipmentRecord{InvoiceURL: "https://carrier.example.com/inv.pdf"},
		}
		url, src := o.InvoiceURL()
		assert.Equal(t, "https://cdn.example.com/gst.pdf", url)
		assert.Equal(t, InvoiceSourceGST, src)
	})
	t.Run("回退到承运商发票", func(t *testing.T) {
		t.Parallel()
		o := Order{Shipment: ShipmentRecord{InvoiceURL: "https://carrier.example.com/inv.pdf"}}
		url, src := o.InvoiceURL()
		assert.Equal(t, "https://carrier.example.com/inv.pdf", url)
		assert.Equal(t, InvoiceSourceCarrier, src)
	})
	t.Run("都没有", func(t *testing.T) {
		t.Parallel()
		url, src := Order{}.InvoiceURL()
		assert.Empty(t, url)
		assert.Equal(t, InvoiceSourceNone, src)
	})
}
