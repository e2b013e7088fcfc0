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
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Service 对象删除走服务端长期密钥, 不发临时密钥
type Service interface {
	DeleteObject(ctx context.Context, objectURL string) error
}

func NewService(secretID, secretKey string) Service {
	return &cosService{
		secretID:  secretID,
		secretKey: secretKey,
		client:    resty.New().SetTimeout(10 * time.Second),
	}
}

type cosService struct {
	secretID  string
	secretKey string
	client    *resty.Client
}

func (s *cosService) DeleteObject(ctx context.Context, objectURL string) error {
	u, err := url.Parse(objectURL)
	if err != nil {
		return fmt.Errorf("非法的对象URL %q: %w", objectURL, err)
	}
	// 签名中的method必须是小写
	auth := s.authorization("delete", u.Path)
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", auth).
		Delete(objectURL)
	if err != nil {
		return fmt.Errorf("删除对象失败: %w", err)
	}
	// 对象不存在视为删除成功
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("删除对象失败: http %d", resp.StatusCode())
	}
	return nil
}

// authorization 按COS签名规范生成请求签名
// https://cloud.tencent.com/document/product/436/7778
func (s *cosService) authorization(method, path string) string {
	now := time.Now().Unix()
	keyTime := fmt.Sprintf("%d;%d", now-60, now+600)

	signKey := hmacSHA1(s.secretKey, keyTime)
	httpString := fmt.Sprintf("%s\n%s\n\n\n", method, path)
	stringToSign := fmt.Sprintf("sha1\n%s\n%s\n", keyTime, sha1Hex(httpString))
	signature := hmacSHA1(signKey, stringToSign)

	return fmt.Sprintf("q-sign-algorithm=sha1&q-ak=%s&q-sign-time=%s&q-key-time=%s"+
		"&q-header-list=&q-url-param-list=&q-signature=%s",
		s.secretID, keyTime, keyTime, signature)
}

func hmacSHA1(key, data string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func sha1Hex(data string) string {
	h := sha1.New()
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
