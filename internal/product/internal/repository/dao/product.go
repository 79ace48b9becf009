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
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// 排序字段白名单，未识别的字段回退到 ctime DESC
var sortColumns = map[string]string{
	"created_at": "ctime",
	"price":      "price",
	"name":       "name",
}

type ListFilter struct {
	Category   string
	ActiveOnly bool
	SortField  string
	Desc       bool
}

type AdminFilter struct {
	Keyword   string
	Status    uint8
	Category  string
	SortField string
	Desc      bool
}

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, f ListFilter, offset, limit int) ([]Product, error)
	Count(ctx context.Context, f ListFilter) (int64, error)
	ActiveCategories(ctx context.Context) ([]string, error)
	ListPromotional(ctx context.Context, limit int) ([]Product, error)
	ListLatest(ctx context.Context, limit int) ([]Product, error)
	ListCollaboration(ctx context.Context, category string, keywords []string, limit int) ([]Product, error)
	RecentOrderLines(ctx context.Context, limit int) ([]OrderLine, error)
	IncrViewCnt(ctx context.Context, id int64) error

	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	DeleteByID(ctx context.Context, id int64) error
	AdminList(ctx context.Context, f AdminFilter, offset, limit int) ([]Product, error)
	AdminCount(ctx context.Context, f AdminFilter) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, f ListFilter, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.listQuery(ctx, f).
		Order(d.orderClause(f.SortField, f.Desc)).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context, f ListFilter) (int64, error) {
	var total int64
	err := d.listQuery(ctx, f).Model(&Product{}).Count(&total).Error
	return total, err
}

func (d *ProductGORMDAO) listQuery(ctx context.Context, f ListFilter) *gorm.DB {
	query := d.db.WithContext(ctx)
	if f.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	return query
}

func (d *ProductGORMDAO) orderClause(field string, desc bool) string {
	col, ok := sortColumns[field]
	if !ok {
		return "ctime DESC"
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// ActiveCategories 只取在售商品的 category 列，分组计数在内存中完成
func (d *ProductGORMDAO) ActiveCategories(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("is_active = ?", true).
		Pluck("category", &res).Error
	return res, err
}

func (d *ProductGORMDAO) ListPromotional(ctx context.Context, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("is_active = ? AND is_promotional = ?", true, true).
		Order("ctime DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListLatest(ctx context.Context, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("ctime DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListCollaboration(ctx context.Context, category string, keywords []string, limit int) ([]Product, error) {
	conds := make([]string, 0, len(keywords)*2+1)
	args := make([]any, 0, len(keywords)*2+1)
	conds = append(conds, "category = ?")
	args = append(args, category)
	for _, kw := range keywords {
		pattern := "%" + kw + "%"
		conds = append(conds, "name LIKE ?", "description LIKE ?")
		args = append(args, pattern, pattern)
	}
	var res []Product
	err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Order("ctime DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// OrderLine 热销聚合用到的订单项投影。order_items 表归 order 模块所有，
// 这里只做只读投影，不建表
type OrderLine struct {
	ProductID int64
	Quantity  int64
}

func (d *ProductGORMDAO) RecentOrderLines(ctx context.Context, limit int) ([]OrderLine, error) {
	var res []OrderLine
	err := d.db.WithContext(ctx).Table("order_items").
		Select("product_id", "quantity").
		Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) IncrViewCnt(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("更新商品失败: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (d *ProductGORMDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

func (d *ProductGORMDAO) AdminList(ctx context.Context, f AdminFilter, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.adminQuery(ctx, f).
		Order(d.orderClause(f.SortField, f.Desc)).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) AdminCount(ctx context.Context, f AdminFilter) (int64, error) {
	var total int64
	err := d.adminQuery(ctx, f).Model(&Product{}).Count(&total).Error
	return total, err
}

func (d *ProductGORMDAO) adminQuery(ctx context.Context, f AdminFilter) *gorm.DB {
	query := d.db.WithContext(ctx)
	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if f.Status > 0 {
		query = query.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	return query
}

type Product struct {
	Id                 int64          `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name               string         `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description        string         `gorm:"not null;comment:商品描述"`
	Category           string         `gorm:"type:varchar(64);not null;index:idx_category;comment:商品分类"`
	Price              int64          `gorm:"not null;comment:商品单价;单位为货币最小单位"`
	OriginalPrice      int64          `gorm:"not null;default:0;comment:折扣前原价,0表示未设置"`
	DiscountPercentage int64          `gorm:"not null;default:0;comment:折扣百分比 0-100"`
	Stock              int64          `gorm:"not null;comment:库存数量"`
	Status             uint8          `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:状态 1=在售 2=缺货 3=隐藏"`
	IsActive           bool           `gorm:"not null;default:true;index:idx_is_active;comment:是否上架,隐藏状态必须为false"`
	ImageURL           string         `gorm:"type:varchar(512);not null;default:'';comment:旧版单图,CDN绝对路径"`
	Images             sql.NullString `gorm:"comment:商品图列表,JSON数组"`
	Options            sql.NullString `gorm:"comment:商品可选规格,JSON格式"`
	ViewCnt            int64          `gorm:"not null;default:0;comment:浏览计数"`
	IsPromotional      bool           `gorm:"not null;default:false;comment:是否促销商品"`
	PromotionStart     int64          `gorm:"comment:促销开始时间"`
	PromotionEnd       int64          `gorm:"comment:促销结束时间"`
	Ctime              int64
	Utime              int64
}
