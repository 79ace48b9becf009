// Copyright 2023 ecodeclub
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

// Package toss 封装托管收银台的服务端确认接口。
// 交互式收款由前端挂件完成，后端只负责拿 paymentKey 换结算结果
package toss

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	BaseURL   string `yaml:"baseURL"`
	SecretKey string `yaml:"secretKey"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
	}
}

type ConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

// Settlement 确认成功后渠道返回的结算结果
type Settlement struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	TotalAmount int64  `json:"totalAmount"`
	// Raw 渠道返回的原始报文，原样存到订单上备查
	Raw string `json:"-"`
}

// Error 渠道返回的业务错误
type Error struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("渠道确认失败 http=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

func (c *Client) Confirm(ctx context.Context, confirm ConfirmRequest) (Settlement, error) {
	body, err := json.Marshal(confirm)
	if err != nil {
		return Settlement{}, fmt.Errorf("序列化确认请求失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payments/confirm", bytes.NewBuffer(body))
	if err != nil {
		return Settlement{}, fmt.Errorf("构建确认请求失败: %w", err)
	}
	// 渠道的 Basic 认证：secretKey 加冒号后整体编码，没有密码部分
	auth := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Settlement{}, fmt.Errorf("请求渠道失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Settlement{}, fmt.Errorf("读取渠道响应失败: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		channelErr := &Error{StatusCode: resp.StatusCode}
		// 解析不出来也要把状态码带出去
		_ = json.Unmarshal(data, channelErr)
		return Settlement{}, channelErr
	}

	var settlement Settlement
	if err = json.Unmarshal(data, &settlement); err != nil {
		return Settlement{}, fmt.Errorf("解析渠道响应失败: %w", err)
	}
	settlement.Raw = string(data)
	return settlement, nil
}
