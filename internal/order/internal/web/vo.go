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

type ShippingAddress struct {
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	PostalCode   string `json:"postalCode"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	DeliveryNote string `json:"deliveryNote"`
}

type CreateOrderReq struct {
	// RequestID 客户端生成，用于创建订单的幂等保护
	RequestID   string          `json:"requestId"`
	CartItemIDs []int64         `json:"cartItemIds"`
	Address     ShippingAddress `json:"address"`
	OrderNote   string          `json:"orderNote"`
}

type CreateOrderResp struct {
	OrderSN     string `json:"orderSn"`
	TotalAmount int64  `json:"totalAmount"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type Order struct {
	SN            string          `json:"sn"`
	Status        uint8           `json:"status"`
	PaymentStatus uint8           `json:"paymentStatus"`
	Subtotal      int64           `json:"subtotal"`
	ShippingFee   int64           `json:"shippingFee"`
	TotalAmount   int64           `json:"totalAmount"`
	Address       ShippingAddress `json:"address"`
	OrderNote     string          `json:"orderNote"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []OrderItem     `json:"items,omitempty"`
	Ctime         int64           `json:"ctime"`
}

type OrderItem struct {
	ProductID int64             `json:"productId"`
	Name      string            `json:"name"`
	Price     int64             `json:"price"`
	Quantity  int64             `json:"quantity"`
	Options   map[string]string `json:"options,omitempty"`
}

type ListOrdersResp struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
}

type AdminListOrdersReq struct {
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type AdminUpdateStatusReq struct {
	SN     string `json:"sn"`
	Status uint8  `json:"status"`
}
