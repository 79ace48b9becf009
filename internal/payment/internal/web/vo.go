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

package web

type ConfirmPaymentReq struct {
	// PaymentKey 支付挂件成功跳转时带回来的渠道凭据
	PaymentKey string `json:"paymentKey"`
	OrderSN    string `json:"orderSn"`
	Amount     int64  `json:"amount"`
}

type ConfirmPaymentResp struct {
	OrderSN       string `json:"orderSn"`
	Status        uint8  `json:"status"`
	PaymentStatus uint8  `json:"paymentStatus"`
	TotalAmount   int64  `json:"totalAmount"`
}

type PaymentFailReq struct {
	OrderSN string `json:"orderSn"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
