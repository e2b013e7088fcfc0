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

package shiprocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/desikart/fulfillment/internal/shipment/internal/carrier"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
}

// token有效期以响应为准, 这里提前一小时过期以避开边界
const tokenSafetyMargin = time.Hour

var _ carrier.Client = (*Client)(nil)

// Client Shiprocket客户端, Bearer token登录换取, 过期自动续
type Client struct {
	client *resty.Client
	cfg    Config

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return &Client{client: client, cfg: cfg}
}

type loginResp struct {
	Token string `json:"token"`
}

func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}
	var res loginResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":    c.cfg.Email,
			"password": c.cfg.Password,
		}).
		SetResult(&res).
		Post("/v1/external/auth/login")
	if err != nil {
		return "", fmt.Errorf("%w: 登录失败: %s", carrier.ErrRetriable, err.Error())
	}
	if resp.IsError() {
		return "", c.classify(resp)
	}
	c.token = res.Token
	// token标称10天有效
	c.tokenExpiry = time.Now().Add(240*time.Hour - tokenSafetyMargin)
	return c.token, nil
}

// classify 4xx是终局错误并尽量带上逐字段原因, 5xx可重试,
// "订单已存在"单独识别成哨兵错误, 编排层靠它走反查恢复
func (c *Client) classify(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", carrier.ErrRetriable, code)
	}
	apiErr := &carrier.APIError{StatusCode: code, Message: resp.String()}
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Fields = body.Errors
	}
	if code == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Message), "already exists") {
		return fmt.Errorf("%w: %s", carrier.ErrOrderAlreadyExists, apiErr.Message)
	}
	return apiErr
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}
	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s", carrier.ErrRetriable, err.Error())
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		// token失效, 强制重新登录后重试一次
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		if token, err = c.ensureToken(ctx); err != nil {
			return err
		}
		resp, err = req.SetAuthToken(token).Post(path)
		if err != nil {
			return fmt.Errorf("%w: %s", carrier.ErrRetriable, err.Error())
		}
	}
	if resp.IsError() {
		return c.classify(resp)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}
	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(query).
		SetResult(out)
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: %s", carrier.ErrRetriable, err.Error())
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		if token, err = c.ensureToken(ctx); err != nil {
			return err
		}
		resp, err = req.SetAuthToken(token).Get(path)
		if err != nil {
			return fmt.Errorf("%w: %s", carrier.ErrRetriable, err.Error())
		}
	}
	if resp.IsError() {
		return c.classify(resp)
	}
	return nil
}

type createOrderResp struct {
	OrderID    int64  `json:"order_id"`
	ShipmentID int64  `json:"shipment_id"`
	Status     string `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, req carrier.CreateOrderReq) (carrier.CreateOrderResp, error) {
	items := make([]map[string]any, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, map[string]any{
			"name":          it.Name,
			"sku":           it.SKU,
			"units":         it.Units,
			"selling_price": it.SellingPrice,
		})
	}
	body := map[string]any{
		"order_id":              req.OrderSN,
		"order_date":            req.OrderDate,
		"pickup_location":       req.PickupLocation,
		"billing_customer_name": req.CustomerName,
		"billing_address":       req.AddressLine1,
		"billing_address_2":     req.AddressLine2,
		"billing_city":          req.City,
		"billing_pincode":       req.Pincode,
		"billing_state":         req.State,
		"billing_country":       req.Country,
		"billing_email":         req.CustomerEmail,
		"billing_phone":         req.CustomerPhone,
		"shipping_is_billing":   true,
		"order_items":           items,
		"payment_method":        req.PaymentMethod,
		"sub_total":             req.SubTotal,
		"length":                req.Length,
		"breadth":               req.Breadth,
		"height":                req.Height,
		"weight":                req.Weight,
	}
	var res createOrderResp
	if err := c.post(ctx, "/v1/external/orders/create/adhoc", body, &res); err != nil {
		return carrier.CreateOrderResp{}, err
	}
	return carrier.CreateOrderResp{
		OrderID:    res.OrderID,
		ShipmentID: res.ShipmentID,
		Status:     res.Status,
	}, nil
}

type lookupOrderResp struct {
	Data []struct {
		ID             int64  `json:"id"`
		ChannelOrderID string `json:"channel_order_id"`
		Status         string `json:"status"`
		Shipments      []struct {
			ID int64 `json:"id"`
		} `json:"shipments"`
	} `json:"data"`
}

// LookupOrder search按channel_order_id是模糊匹配, 这里精确比对后才认
func (c *Client) LookupOrder(ctx context.Context, orderSN string) (carrier.CreateOrderResp, error) {
	var res lookupOrderResp
	err := c.get(ctx, "/v1/external/orders", map[string]string{"search": orderSN}, &res)
	if err != nil {
		return carrier.CreateOrderResp{}, err
	}
	for _, d := range res.Data {
		if d.ChannelOrderID != orderSN {
			continue
		}
		out := carrier.CreateOrderResp{OrderID: d.ID, Status: d.Status}
		if len(d.Shipments) > 0 {
			out.ShipmentID = d.Shipments[0].ID
		}
		return out, nil
	}
	return carrier.CreateOrderResp{}, &carrier.APIError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("承运商侧未找到订单%s", orderSN),
	}
}

type assignAWBResp struct {
	AWBAssignStatus int64 `json:"awb_assign_status"`
	Response        struct {
		Data struct {
			AWBCode     string `json:"awb_code"`
			CourierName string `json:"courier_name"`
		} `json:"data"`
	} `json:"response"`
}

func (c *Client) AssignAWB(ctx context.Context, shipmentID int64) (carrier.AssignAWBResp, error) {
	var res assignAWBResp
	err := c.post(ctx, "/v1/external/courier/assign/awb", map[string]any{
		"shipment_id": shipmentID,
	}, &res)
	if err != nil {
		return carrier.AssignAWBResp{}, err
	}
	if res.Response.Data.AWBCode == "" {
		return carrier.AssignAWBResp{}, &carrier.APIError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "承运商未返回AWB",
		}
	}
	return carrier.AssignAWBResp{
		AWBCode:     res.Response.Data.AWBCode,
		CourierName: res.Response.Data.CourierName,
	}, nil
}

type pickupResp struct {
	PickupStatus int64 `json:"pickup_status"`
	Response     struct {
		PickupScheduledDate string `json:"pickup_scheduled_date"`
		PickupTokenNumber   string `json:"pickup_token_number"`
	} `json:"response"`
}

func (c *Client) GeneratePickup(ctx context.Context, shipmentID int64) (carrier.PickupResp, error) {
	var res pickupResp
	err := c.post(ctx, "/v1/external/courier/generate/pickup", map[string]any{
		"shipment_id": []int64{shipmentID},
	}, &res)
	if err != nil {
		return carrier.PickupResp{}, err
	}
	return carrier.PickupResp{
		PickupScheduledDate: res.Response.PickupScheduledDate,
		PickupTokenNumber:   res.Response.PickupTokenNumber,
	}, nil
}

type labelResp struct {
	LabelCreated int64  `json:"label_created"`
	LabelURL     string `json:"label_url"`
}

func (c *Client) GenerateLabel(ctx context.Context, shipmentID int64) (carrier.DocumentResp, error) {
	var res labelResp
	err := c.post(ctx, "/v1/external/courier/generate/label", map[string]any{
		"shipment_id": []int64{shipmentID},
	}, &res)
	if err != nil {
		return carrier.DocumentResp{}, err
	}
	return carrier.DocumentResp{URL: res.LabelURL}, nil
}

type invoiceResp struct {
	IsInvoiceCreated bool   `json:"is_invoice_created"`
	InvoiceURL       string `json:"invoice_url"`
}

func (c *Client) GenerateInvoice(ctx context.Context, carrierOrderID int64) (carrier.DocumentResp, error) {
	var res invoiceResp
	err := c.post(ctx, "/v1/external/orders/print/invoice", map[string]any{
		"ids": []int64{carrierOrderID},
	}, &res)
	if err != nil {
		return carrier.DocumentResp{}, err
	}
	return carrier.DocumentResp{URL: res.InvoiceURL}, nil
}

type manifestResp struct {
	ManifestURL string `json:"manifest_url"`
}

func (c *Client) GenerateManifest(ctx context.Context, shipmentID int64) (carrier.DocumentResp, error) {
	var res manifestResp
	err := c.post(ctx, "/v1/external/manifests/generate", map[string]any{
		"shipment_id": []int64{shipmentID},
	}, &res)
	if err != nil {
		return carrier.DocumentResp{}, err
	}
	return carrier.DocumentResp{URL: res.ManifestURL}, nil
}
