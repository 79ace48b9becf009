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
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go CartItemRepository
type CartItemRepository interface {
	FindByKey(ctx context.Context, uid, productID int64, optionsKey string) (domain.CartItem, error)
	FindByID(ctx context.Context, uid, id int64) (domain.CartItem, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.CartItem, error)
	FindByIDs(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error)
	Create(ctx context.Context, item domain.CartItem) (int64, error)
	UpdateQuantity(ctx context.Context, uid, id, quantity int64) error
	TotalQuantity(ctx context.Context, uid int64) (int64, error)
	DeleteByIDs(ctx context.Context, uid int64, ids []int64) error
	DeleteByUid(ctx context.Context, uid int64) error
}

func NewCartItemRepository(d dao.CartItemDAO) CartItemRepository {
	return &cartItemRepository{dao: d}
}

type cartItemRepository struct {
	dao dao.CartItemDAO
}

func (r *cartItemRepository) FindByKey(ctx context.Context, uid, productID int64, optionsKey string) (domain.CartItem, error) {
	item, err := r.dao.FindByKey(ctx, uid, productID, optionsKey)
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.toDomain(item), nil
}

func (r *cartItemRepository) FindByID(ctx context.Context, uid, id int64) (domain.CartItem, error) {
	item, err := r.dao.FindByID(ctx, uid, id)
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.toDomain(item), nil
}

func (r *cartItemRepository) FindByUid(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return r.toDomain(src)
	}), nil
}

func (r *cartItemRepository) FindByIDs(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error) {
	items, err := r.dao.FindByIDs(ctx, uid, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return r.toDomain(src)
	}), nil
}

func (r *cartItemRepository) Create(ctx context.Context, item domain.CartItem) (int64, error) {
	entity, err := r.toEntity(item)
	if err != nil {
		return 0, err
	}
	return r.dao.Insert(ctx, entity)
}

func (r *cartItemRepository) UpdateQuantity(ctx context.Context, uid, id, quantity int64) error {
	return r.dao.UpdateQuantity(ctx, uid, id, quantity)
}

func (r *cartItemRepository) TotalQuantity(ctx context.Context, uid int64) (int64, error) {
	return r.dao.SumQuantity(ctx, uid)
}

func (r *cartItemRepository) DeleteByIDs(ctx context.Context, uid int64, ids []int64) error {
	return r.dao.DeleteByIDs(ctx, uid, ids)
}

func (r *cartItemRepository) DeleteByUid(ctx context.Context, uid int64) error {
	return r.dao.DeleteByUid(ctx, uid)
}

func (r *cartItemRepository) toDomain(item dao.CartItem) domain.CartItem {
	res := domain.CartItem{
		ID:        item.Id,
		Uid:       item.Uid,
		ProductID: item.ProductId,
		Quantity:  item.Quantity,
		Ctime:     item.Ctime,
		Utime:     item.Utime,
	}
	if item.Options.Valid {
		// 写入时已校验过合法性，这里的错误可以忽略
		_ = json.Unmarshal([]byte(item.Options.String), &res.Options)
	}
	return res
}

func (r *cartItemRepository) toEntity(item domain.CartItem) (dao.CartItem, error) {
	res := dao.CartItem{
		Id:         item.ID,
		Uid:        item.Uid,
		ProductId:  item.ProductID,
		OptionsKey: item.OptionsKey(),
		Quantity:   item.Quantity,
	}
	if len(item.Options) > 0 {
		data, err := json.Marshal(item.Options)
		if err != nil {
			return dao.CartItem{}, err
		}
		res.Options = sql.NullString{String: string(data), Valid: true}
	}
	return res, nil
}
