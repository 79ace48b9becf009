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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type CartItemDAO interface {
	FindByKey(ctx context.Context, uid, productID int64, optionsKey string) (CartItem, error)
	FindByID(ctx context.Context, uid, id int64) (CartItem, error)
	FindByUid(ctx context.Context, uid int64) ([]CartItem, error)
	FindByIDs(ctx context.Context, uid int64, ids []int64) ([]CartItem, error)
	Insert(ctx context.Context, item CartItem) (int64, error)
	UpdateQuantity(ctx context.Context, uid, id, quantity int64) error
	SumQuantity(ctx context.Context, uid int64) (int64, error)
	DeleteByIDs(ctx context.Context, uid int64, ids []int64) error
	DeleteByUid(ctx context.Context, uid int64) error
}

func NewCartItemGORMDAO(db *egorm.Component) CartItemDAO {
	return &gormCartItemDAO{db: db}
}

type gormCartItemDAO struct {
	db *egorm.Component
}

func (g *gormCartItemDAO) FindByKey(ctx context.Context, uid, productID int64, optionsKey string) (CartItem, error) {
	var item CartItem
	err := g.db.WithContext(ctx).
		Where("uid = ? AND product_id = ? AND options_key = ?", uid, productID, optionsKey).
		First(&item).Error
	return item, err
}

func (g *gormCartItemDAO) FindByID(ctx context.Context, uid, id int64) (CartItem, error) {
	var item CartItem
	err := g.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&item).Error
	return item, err
}

func (g *gormCartItemDAO) FindByUid(ctx context.Context, uid int64) ([]CartItem, error) {
	var items []CartItem
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&items).Error
	return items, err
}

func (g *gormCartItemDAO) FindByIDs(ctx context.Context, uid int64, ids []int64) ([]CartItem, error) {
	var items []CartItem
	err := g.db.WithContext(ctx).
		Where("uid = ? AND id IN ?", uid, ids).
		Find(&items).Error
	return items, err
}

func (g *gormCartItemDAO) Insert(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	err := g.db.WithContext(ctx).Create(&item).Error
	return item.Id, err
}

func (g *gormCartItemDAO) UpdateQuantity(ctx context.Context, uid, id, quantity int64) error {
	res := g.db.WithContext(ctx).Model(&CartItem{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("更新购物车条目失败 id=%d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (g *gormCartItemDAO) SumQuantity(ctx context.Context, uid int64) (int64, error) {
	var total sql.NullInt64
	err := g.db.WithContext(ctx).Model(&CartItem{}).
		Select("SUM(quantity)").
		Where("uid = ?", uid).
		Scan(&total).Error
	return total.Int64, err
}

// DeleteByIDs 不属于 uid 的 id 只是匹配不到行，不报错
func (g *gormCartItemDAO) DeleteByIDs(ctx context.Context, uid int64, ids []int64) error {
	return g.db.WithContext(ctx).
		Where("uid = ? AND id IN ?", uid, ids).
		Delete(&CartItem{}).Error
}

func (g *gormCartItemDAO) DeleteByUid(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Where("uid = ?", uid).Delete(&CartItem{}).Error
}

type CartItem struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"uniqueIndex:uniq_uid_product_options;comment:用户ID"`
	ProductId int64  `gorm:"uniqueIndex:uniq_uid_product_options;comment:商品ID"`
	// 选项的规范化键，空选项用哨兵值占位
	OptionsKey string         `gorm:"type:varchar(256);uniqueIndex:uniq_uid_product_options;comment:规范化选项"`
	Options    sql.NullString `gorm:"type:varchar(1024);comment:购买选项 JSON"`
	Quantity   int64          `gorm:"not null;comment:数量"`
	Ctime      int64
	Utime      int64
}

func (CartItem) TableName() string {
	return "cart_items"
}
