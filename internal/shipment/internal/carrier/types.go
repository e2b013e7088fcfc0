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

package carrier

import (
	"context"
	"errors"
	"fmt"
)

// ErrRetriable 承运商5xx或网络超时, 调用方可以原样重试
var ErrRetriable = errors.New("承运商暂时不可用")

// ErrOrderAlreadyExists 订单在承运商侧已创建过, 调用方应反查已有标识而不是报错
var ErrOrderAlreadyExists = errors.New("承运商侧订单已存在")

// APIError 承运商4xx的终局错误, Fields携带逐字段的拒绝原因
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("承运商拒绝请求: http %d: %s", e.StatusCode, e.Message)
}

func IsRetriable(err error) bool {
	return errors.Is(err, ErrRetriable)
}

type Item struct {
	Name string
	SKU  string
	// SellingPrice 单位卢比
	SellingPrice float64
	Units        int64
}

// CreateOrderReq 金额单位为卢比, 尺寸cm, 重量kg
type CreateOrderReq struct {
	OrderSN        string
	OrderDate      string
	PickupLocation string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	Pincode       string
	Country       string

	Items    []Item
	SubTotal float64
	// COD | Prepaid
	PaymentMethod string

	Length  float64
	Breadth float64
	Height  float64
	Weight  float64
}

type CreateOrderResp struct {
	OrderID    int64
	ShipmentID int64
	Status     string
}

type AssignAWBResp struct {
	AWBCode     string
	CourierName string
}

type PickupResp struct {
	PickupScheduledDate string
	PickupTokenNumber   string
}

type DocumentResp struct {
	URL string
}

// Client 承运商客户端, 所有操作服务端幂等或由编排层兜底幂等
//
//go:generate mockgen -source=./types.go -destination=./mocks/carrier.mock.go -package=carriermocks -typed=true Client
type Client interface {
	CreateOrder(ctx context.Context, req CreateOrderReq) (CreateOrderResp, error)
	// LookupOrder 按平台订单号反查承运商侧订单, 用于创建结果丢失后的恢复
	LookupOrder(ctx context.Context, orderSN string) (CreateOrderResp, error)
	AssignAWB(ctx context.Context, shipmentID int64) (AssignAWBResp, error)
	GeneratePickup(ctx context.Context, shipmentID int64) (PickupResp, error)
	GenerateLabel(ctx context.Context, shipmentID int64) (DocumentResp, error)
	GenerateInvoice(ctx context.Context, carrierOrderID int64) (DocumentResp, error)
	GenerateManifest(ctx context.Context, shipmentID int64) (DocumentResp, error)
}
