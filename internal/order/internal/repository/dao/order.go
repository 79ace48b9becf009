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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrStockNotEnough 条件扣减没有命中任何行，既可能是真没库存，
	// 也可能是并发下单抢完了最后一件
	ErrStockNotEnough = errors.New("库存不足")
	// ErrAlreadyPaid 支付状态更新没有命中任何行，订单已是完成态
	ErrAlreadyPaid = errors.New("订单已支付")
)

type OrderDAO interface {
	// CreateOrder 订单头、订单项和库存扣减在同一个事务里，
	// 任何一步失败整体回滚
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	// MarkPaid 只会命中非完成态的订单，重复结算返回 ErrAlreadyPaid
	MarkPaid(ctx context.Context, buyerID int64, sn, paymentID, method, data string) error
	// UpdateStatus 从 from 推进到 to，状态不符时报错
	UpdateStatus(ctx context.Context, buyerID int64, sn string, from []uint8, to uint8) error
	AdminList(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	AdminCount(ctx context.Context, status uint8) (int64, error)
	AdminUpdateStatus(ctx context.Context, sn string, from, to uint8) error
	// CloseExpired 取消创建时间早于 cutoff 且一直未支付的订单
	CloseExpired(ctx context.Context, cutoff int64) (int64, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			res := tx.Table("products").
				Where("id = ? AND stock >= ?", item.ProductId, item.Quantity).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", item.Quantity),
					"utime": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: 商品 %d", ErrStockNotEnough, item.ProductId)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return o.Id, nil
}

func (g *gormOrderDAO) FindBySN(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).
		Where("buyer_id = ? AND sn = ?", buyerID, sn).
		First(&o).Error
	return o, err
}

func (g *gormOrderDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("ctime ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (g *gormOrderDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).
		Count(&total).Error
	return total, err
}

func (g *gormOrderDAO) MarkPaid(ctx context.Context, buyerID int64, sn, paymentID, method, data string) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND sn = ? AND payment_status <> ?", buyerID, sn, PaymentStatusCompleted).
		Updates(map[string]any{
			"payment_id":     sql.NullString{String: paymentID, Valid: paymentID != ""},
			"payment_method": sql.NullString{String: method, Valid: method != ""},
			"payment_data":   sql.NullString{String: data, Valid: data != ""},
			"payment_status": PaymentStatusCompleted,
			"status":         StatusConfirmed,
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyPaid, sn)
	}
	return nil
}

func (g *gormOrderDAO) UpdateStatus(ctx context.Context, buyerID int64, sn string, from []uint8, to uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND sn = ? AND status IN ?", buyerID, sn, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("更新订单状态失败 sn=%s: %w", sn, gorm.ErrRecordNotFound)
	}
	return nil
}

func (g *gormOrderDAO) AdminList(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var os []Order
	query := g.db.WithContext(ctx).Model(&Order{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&os).Error
	return os, err
}

func (g *gormOrderDAO) AdminCount(ctx context.Context, status uint8) (int64, error) {
	var total int64
	query := g.db.WithContext(ctx).Model(&Order{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, err
}

func (g *gormOrderDAO) AdminUpdateStatus(ctx context.Context, sn string, from, to uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("更新订单状态失败 sn=%s: %w", sn, gorm.ErrRecordNotFound)
	}
	return nil
}

func (g *gormOrderDAO) CloseExpired(ctx context.Context, cutoff int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND payment_status = ? AND ctime < ?",
			StatusPending, PaymentStatusPending, cutoff).
		Updates(map[string]any{
			"status":         StatusCancelled,
			"payment_status": PaymentStatusCancelled,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

// 数据库层面的状态常量，与 domain 保持一致
const (
	StatusPending   = uint8(1)
	StatusConfirmed = uint8(2)
	StatusCancelled = uint8(5)

	PaymentStatusPending   = uint8(1)
	PaymentStatusCompleted = uint8(3)
	PaymentStatusCancelled = uint8(5)
)

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	Sn      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:订单状态 1=待支付 2=已确认 3=已发货 4=已送达 5=已取消"`
	// PaymentStatus 1=待支付 2=支付中 3=已完成 4=失败 5=已取消
	PaymentStatus uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态"`
	Subtotal      int64 `gorm:"not null;comment:商品小计;单位为分"`
	ShippingFee   int64 `gorm:"not null;comment:运费;单位为分"`
	TotalAmount   int64 `gorm:"not null;comment:实付总价;单位为分"`

	Recipient    string `gorm:"type:varchar(64);not null;comment:收件人"`
	Phone        string `gorm:"type:varchar(32);not null;comment:联系电话"`
	PostalCode   string `gorm:"type:varchar(16);comment:邮编"`
	Address1     string `gorm:"type:varchar(255);not null;comment:地址"`
	Address2     string `gorm:"type:varchar(255);comment:详细地址"`
	DeliveryNote string `gorm:"type:varchar(255);comment:配送备注"`
	OrderNote    string `gorm:"type:varchar(255);comment:订单备注"`

	PaymentId     sql.NullString `gorm:"type:varchar(255);comment:支付渠道结算ID"`
	PaymentMethod sql.NullString `gorm:"type:varchar(64);comment:支付方式"`
	PaymentData   sql.NullString `gorm:"type:text;comment:支付渠道原始结算数据"`

	Ctime int64
	Utime int64
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;index:idx_product_id;comment:商品ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:下单时商品名称快照"`
	Price     int64  `gorm:"not null;comment:下单时单价快照;单位为分"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	// Options 下单时的购买选项快照 JSON
	Options sql.NullString `gorm:"type:varchar(1024);comment:购买选项快照"`
	Ctime   int64
	Utime   int64
}

func (OrderItem) TableName() string {
	return "order_items"
}
