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

package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go OrderRepository
type OrderRepository interface {
	// CreateOrder 落库订单及其订单项并扣减库存，整体原子
	CreateOrder(ctx context.Context, o domain.Order) (int64, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	MarkPaid(ctx context.Context, buyerID int64, sn string, settlement domain.Settlement) error
	UpdateStatus(ctx context.Context, buyerID int64, sn string, from []domain.Status, to domain.Status) error
	AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error)
	AdminCount(ctx context.Context, status domain.Status) (int64, error)
	AdminUpdateStatus(ctx context.Context, sn string, from, to domain.Status) error
	CloseExpired(ctx context.Context, cutoff int64) (int64, error)
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, o domain.Order) (int64, error) {
	entity, items, err := r.toEntity(o)
	if err != nil {
		return 0, err
	}
	return r.dao.CreateOrder(ctx, entity, items)
}

func (r *orderRepository) FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	items, err := r.dao.FindItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return r.itemToDomain(src)
	}), nil
}

func (r *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByBuyerID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return r.dao.CountByBuyerID(ctx, buyerID)
}

func (r *orderRepository) MarkPaid(ctx context.Context, buyerID int64, sn string, settlement domain.Settlement) error {
	return r.dao.MarkPaid(ctx, buyerID, sn, settlement.PaymentID, settlement.Method, settlement.Data)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, buyerID int64, sn string, from []domain.Status, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, buyerID, sn, slice.Map(from, func(idx int, src domain.Status) uint8 {
		return src.ToUint8()
	}), to.ToUint8())
}

func (r *orderRepository) AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.AdminList(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) AdminCount(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.AdminCount(ctx, status.ToUint8())
}

func (r *orderRepository) AdminUpdateStatus(ctx context.Context, sn string, from, to domain.Status) error {
	return r.dao.AdminUpdateStatus(ctx, sn, from.ToUint8(), to.ToUint8())
}

func (r *orderRepository) CloseExpired(ctx context.Context, cutoff int64) (int64, error) {
	return r.dao.CloseExpired(ctx, cutoff)
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:            o.Id,
		SN:            o.Sn,
		BuyerID:       o.BuyerId,
		Status:        domain.Status(o.Status),
		PaymentStatus: domain.PaymentStatus(o.PaymentStatus),
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		TotalAmount:   o.TotalAmount,
		Address: domain.ShippingAddress{
			Recipient:    o.Recipient,
			Phone:        o.Phone,
			PostalCode:   o.PostalCode,
			Address1:     o.Address1,
			Address2:     o.Address2,
			DeliveryNote: o.DeliveryNote,
		},
		OrderNote:     o.OrderNote,
		PaymentID:     o.PaymentId.String,
		PaymentMethod: o.PaymentMethod.String,
		PaymentData:   o.PaymentData.String,
		Ctime:         o.Ctime,
		Utime:         o.Utime,
	}
}

func (r *orderRepository) itemToDomain(item dao.OrderItem) domain.OrderItem {
	res := domain.OrderItem{
		ID:        item.Id,
		OrderID:   item.OrderId,
		ProductID: item.ProductId,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Ctime:     item.Ctime,
	}
	if item.Options.Valid {
		_ = json.Unmarshal([]byte(item.Options.String), &res.Options)
	}
	return res
}

func (r *orderRepository) toEntity(o domain.Order) (dao.Order, []dao.OrderItem, error) {
	entity := dao.Order{
		Sn:            o.SN,
		BuyerId:       o.BuyerID,
		Status:        o.Status.ToUint8(),
		PaymentStatus: o.PaymentStatus.ToUint8(),
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		TotalAmount:   o.TotalAmount,
		Recipient:     o.Address.Recipient,
		Phone:         o.Address.Phone,
		PostalCode:    o.Address.PostalCode,
		Address1:      o.Address.Address1,
		Address2:      o.Address.Address2,
		DeliveryNote:  o.Address.DeliveryNote,
		OrderNote:     o.OrderNote,
	}
	items := make([]dao.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		entityItem := dao.OrderItem{
			ProductId: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		if len(item.Options) > 0 {
			data, err := json.Marshal(item.Options)
			if err != nil {
				return dao.Order{}, nil, err
			}
			entityItem.Options = sql.NullString{String: string(data), Valid: true}
		}
		items = append(items, entityItem)
	}
	return entity, items, nil
}
