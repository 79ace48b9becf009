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
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
)

type OrderLine = dao.OrderLine

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, f dao.ListFilter, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context, f dao.ListFilter) (int64, error)
	ActiveCategories(ctx context.Context) ([]string, error)
	ListPromotional(ctx context.Context, limit int) ([]domain.Product, error)
	ListLatest(ctx context.Context, limit int) ([]domain.Product, error)
	ListCollaboration(ctx context.Context, category string, keywords []string, limit int) ([]domain.Product, error)
	RecentOrderLines(ctx context.Context, limit int) ([]OrderLine, error)
	IncrViewCnt(ctx context.Context, id int64) error

	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	DeleteByID(ctx context.Context, id int64) error
	AdminList(ctx context.Context, f dao.AdminFilter, offset, limit int) ([]domain.Product, error)
	AdminCount(ctx context.Context, f dao.AdminFilter) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	ps, err := r.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) List(ctx context.Context, f dao.ListFilter, offset, limit int) ([]domain.Product, error) {
	ps, err := r.d.List(ctx, f, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) Count(ctx context.Context, f dao.ListFilter) (int64, error) {
	return r.d.Count(ctx, f)
}

func (r *productRepository) ActiveCategories(ctx context.Context) ([]string, error) {
	return r.d.ActiveCategories(ctx)
}

func (r *productRepository) ListPromotional(ctx context.Context, limit int) ([]domain.Product, error) {
	ps, err := r.d.ListPromotional(ctx, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) ListLatest(ctx context.Context, limit int) ([]domain.Product, error) {
	ps, err := r.d.ListLatest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) ListCollaboration(ctx context.Context, category string, keywords []string, limit int) ([]domain.Product, error) {
	ps, err := r.d.ListCollaboration(ctx, category, keywords, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) RecentOrderLines(ctx context.Context, limit int) ([]OrderLine, error) {
	return r.d.RecentOrderLines(ctx, limit)
}

func (r *productRepository) IncrViewCnt(ctx context.Context, id int64) error {
	return r.d.IncrViewCnt(ctx, id)
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) (int64, error) {
	return r.d.Create(ctx, r.toEntity(p))
}

func (r *productRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	return r.d.Update(ctx, id, fields)
}

func (r *productRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.d.DeleteByID(ctx, id)
}

func (r *productRepository) AdminList(ctx context.Context, f dao.AdminFilter, offset, limit int) ([]domain.Product, error) {
	ps, err := r.d.AdminList(ctx, f, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ps), nil
}

func (r *productRepository) AdminCount(ctx context.Context, f dao.AdminFilter) (int64, error) {
	return r.d.AdminCount(ctx, f)
}

func (r *productRepository) toDomains(ps []dao.Product) []domain.Product {
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	})
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	res := domain.Product{
		ID:                 p.Id,
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage,
		Stock:              p.Stock,
		Status:             domain.Status(p.Status),
		IsActive:           p.IsActive,
		ImageURL:           p.ImageURL,
		ViewCnt:            p.ViewCnt,
		IsPromotional:      p.IsPromotional,
		PromotionStart:     p.PromotionStart,
		PromotionEnd:       p.PromotionEnd,
		Ctime:              p.Ctime,
		Utime:              p.Utime,
	}
	if p.Images.Valid {
		// 脏数据只会让图走丢，不影响主流程
		_ = json.Unmarshal([]byte(p.Images.String), &res.Images)
	}
	if p.Options.Valid {
		_ = json.Unmarshal([]byte(p.Options.String), &res.Options)
	}
	return res
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage,
		Stock:              p.Stock,
		Status:             p.Status.ToUint8(),
		IsActive:           p.IsActive,
		ImageURL:           p.ImageURL,
		Images:             marshalJSON(p.Images),
		Options:            marshalJSON(p.Options),
		ViewCnt:            p.ViewCnt,
		IsPromotional:      p.IsPromotional,
		PromotionStart:     p.PromotionStart,
		PromotionEnd:       p.PromotionEnd,
	}
}

func marshalJSON(v any) sql.NullString {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}
