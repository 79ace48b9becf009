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

package domain

const (
	// FreeShippingThreshold 满额包邮门槛，单位为分
	FreeShippingThreshold = int64(50000)
	// DefaultShippingFee 不满门槛时的固定运费，单位为分
	DefaultShippingFee = int64(3000)
)

// CalculateShippingFee 满 500 元包邮，否则固定 30 元运费
func CalculateShippingFee(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return DefaultShippingFee
}

type Status uint8

const (
	StatusPending   Status = 1
	StatusConfirmed Status = 2
	StatusShipped   Status = 3
	StatusDelivered Status = 4
	StatusCancelled Status = 5
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// Cancellable 只有未发货的订单可以取消
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentStatus uint8

const (
	PaymentStatusPending    PaymentStatus = 1
	PaymentStatusProcessing PaymentStatus = 2
	PaymentStatusCompleted  PaymentStatus = 3
	PaymentStatusFailed     PaymentStatus = 4
	PaymentStatusCancelled  PaymentStatus = 5
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

type ShippingAddress struct {
	Recipient    string
	Phone        string
	PostalCode   string
	Address1     string
	Address2     string
	DeliveryNote string
}

type Order struct {
	ID            int64
	SN            string
	BuyerID       int64
	Status        Status
	PaymentStatus PaymentStatus
	Subtotal      int64
	ShippingFee   int64
	TotalAmount   int64
	Address       ShippingAddress
	OrderNote     string
	PaymentID     string
	PaymentMethod string
	// PaymentData 支付渠道返回的原始结算数据
	PaymentData string
	Items       []OrderItem
	Ctime       int64
	Utime       int64
}

// OrderItem 下单时的商品快照，创建后不可变，
// 商品后续改名改价不影响历史订单
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Price     int64
	Quantity  int64
	Options   map[string]string
	Ctime     int64
}

// Settlement 支付渠道的结算结果
type Settlement struct {
	PaymentID string
	Method    string
	Amount    int64
	Data      string
}
