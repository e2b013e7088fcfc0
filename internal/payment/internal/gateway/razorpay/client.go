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

package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/desikart/fulfillment/internal/payment/internal/gateway"
	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL       string
	KeyID         string
	KeySecret     string
	WebhookSecret string
	Timeout       time.Duration
}

var _ gateway.Client = (*Client)(nil)

// Client Razorpay REST客户端, KeyID/KeySecret走HTTP Basic认证
type Client struct {
	client *resty.Client
	cfg    Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetTimeout(cfg.Timeout)
	return &Client{client: client, cfg: cfg}
}

type orderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *Client) CreateOrder(ctx context.Context, req gateway.CreateGatewayOrderReq) (gateway.GatewayOrder, error) {
	var res orderResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"amount":   req.Amount,
			"currency": req.Currency,
			"receipt":  req.Receipt,
		}).
		SetResult(&res).
		Post("/v1/orders")
	if err != nil {
		return gateway.GatewayOrder{}, fmt.Errorf("创建网关订单失败: %w", err)
	}
	if resp.IsError() {
		return gateway.GatewayOrder{}, fmt.Errorf("创建网关订单失败: http %d: %s", resp.StatusCode(), resp.String())
	}
	return gateway.GatewayOrder{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
	}, nil
}

type paymentLinkResp struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, req gateway.CreatePaymentLinkReq) (gateway.PaymentLink, error) {
	body := map[string]any{
		"amount":         req.Amount,
		"currency":       req.Currency,
		"description":    req.Description,
		"reference_id":   req.ReferenceID,
		"accept_partial": req.AcceptPartial,
		"notify":         map[string]any{"sms": true, "email": req.CustomerEmail != ""},
		"notes":          map[string]any{"order_sn": req.ReferenceID},
	}
	if req.CustomerName != "" || req.CustomerPhone != "" {
		body["customer"] = map[string]any{
			"name":    req.CustomerName,
			"contact": req.CustomerPhone,
			"email":   req.CustomerEmail,
		}
	}
	var res paymentLinkResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&res).
		Post("/v1/payment_links")
	if err != nil {
		return gateway.PaymentLink{}, fmt.Errorf("创建支付链接失败: %w", err)
	}
	if resp.IsError() {
		return gateway.PaymentLink{}, fmt.Errorf("创建支付链接失败: http %d: %s", resp.StatusCode(), resp.String())
	}
	return gateway.PaymentLink{
		ID:       res.ID,
		ShortURL: res.ShortURL,
		Amount:   res.Amount,
		Currency: res.Currency,
		Status:   res.Status,
	}, nil
}

func (c *Client) CancelPaymentLink(ctx context.Context, linkID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/v1/payment_links/%s/cancel", linkID))
	if err != nil {
		return fmt.Errorf("取消支付链接失败: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("取消支付链接失败: http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// VerifyWebhookSignature 对原始报文做HMAC-SHA256, 与签名头逐字节恒定时间比较
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	return verifyHMAC(c.cfg.WebhookSecret, body, signature)
}

// VerifyPaymentSignature 校验 order_id|payment_id 的校验和
func (c *Client) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	payload := fmt.Sprintf("%s|%s", gatewayOrderID, gatewayPaymentID)
	return verifyHMAC(c.cfg.KeySecret, []byte(payload), signature)
}

func verifyHMAC(secret string, payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
