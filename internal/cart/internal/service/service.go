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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("商品不存在")
	ErrProductUnavailable = errors.New("商品不可购买")
	ErrInsufficientStock  = errors.New("商品库存不足")
	ErrCartItemNotFound   = errors.New("购物车条目不存在")
	ErrInvalidQuantity    = errors.New("数量非法")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// Add 同一 (商品, 规范化选项) 已有条目时合并数量，
	// 合并后的数量超出库存返回 ErrInsufficientStock，原条目不变
	Add(ctx context.Context, uid int64, productID, quantity int64, options map[string]string) (domain.CartItem, error)
	// UpdateQuantity 以新数量整体校验库存，不是增量
	UpdateQuantity(ctx context.Context, uid, id, quantity int64) (domain.CartItem, error)
	Remove(ctx context.Context, uid, id int64) error
	// RemoveBatch 不属于 uid 的 id 静默跳过，批量不会因此失败
	RemoveBatch(ctx context.Context, uid int64, ids []int64) error
	Clear(ctx context.Context, uid int64) error
	// Count 角标计数，未登录或查询失败都返回 0
	Count(ctx context.Context, uid int64) int64
	List(ctx context.Context, uid int64) ([]domain.Line, error)
	// FindByIDs 供订单模块取结算条目
	FindByIDs(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error)
}

func NewService(repo repository.CartItemRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	repo       repository.CartItemRepository
	productSvc product.Service
	logger     *elog.Component
}

func (s *service) Add(ctx context.Context, uid int64, productID, quantity int64, options map[string]string) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, ErrInvalidQuantity
	}
	p, err := s.product(ctx, productID)
	if err != nil {
		return domain.CartItem{}, err
	}

	item := domain.CartItem{
		Uid:       uid,
		ProductID: productID,
		Quantity:  quantity,
		Options:   options,
	}
	existing, err := s.repo.FindByKey(ctx, uid, productID, item.OptionsKey())
	switch {
	case err == nil:
		combined := existing.Quantity + quantity
		if combined > p.Stock {
			return domain.CartItem{}, ErrInsufficientStock
		}
		if er := s.repo.UpdateQuantity(ctx, uid, existing.ID, combined); er != nil {
			return domain.CartItem{}, er
		}
		existing.Quantity = combined
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if quantity > p.Stock {
			return domain.CartItem{}, ErrInsufficientStock
		}
		id, er := s.repo.Create(ctx, item)
		if er != nil {
			return domain.CartItem{}, er
		}
		item.ID = id
		return item, nil
	default:
		return domain.CartItem{}, err
	}
}

func (s *service) UpdateQuantity(ctx context.Context, uid, id, quantity int64) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, ErrInvalidQuantity
	}
	item, err := s.repo.FindByID(ctx, uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CartItem{}, ErrCartItemNotFound
	}
	if err != nil {
		return domain.CartItem{}, err
	}
	p, err := s.product(ctx, item.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if quantity > p.Stock {
		return domain.CartItem{}, ErrInsufficientStock
	}
	if err = s.repo.UpdateQuantity(ctx, uid, id, quantity); err != nil {
		return domain.CartItem{}, err
	}
	item.Quantity = quantity
	return item, nil
}

// product 取商品并校验可购状态
func (s *service) product(ctx context.Context, productID int64) (product.Product, error) {
	p, err := s.productSvc.FindByID(ctx, productID)
	if errors.Is(err, product.ErrProductNotFound) {
		return product.Product{}, ErrProductNotFound
	}
	if err != nil {
		return product.Product{}, err
	}
	if !p.Purchasable() || p.Stock <= 0 {
		return product.Product{}, ErrProductUnavailable
	}
	return p, nil
}

func (s *service) Remove(ctx context.Context, uid, id int64) error {
	return s.repo.DeleteByIDs(ctx, uid, []int64{id})
}

func (s *service) RemoveBatch(ctx context.Context, uid int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.DeleteByIDs(ctx, uid, ids)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.DeleteByUid(ctx, uid)
}

func (s *service) Count(ctx context.Context, uid int64) int64 {
	if uid <= 0 {
		return 0
	}
	total, err := s.repo.TotalQuantity(ctx, uid)
	if err != nil {
		s.logger.Error("查询购物车数量失败", elog.Int64("uid", uid), elog.FieldErr(err))
		return 0
	}
	return total
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Line, error) {
	items, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []domain.Line{}, nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	ps, err := s.productSvc.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]product.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	lines := make([]domain.Line, 0, len(items))
	for _, item := range items {
		line := domain.Line{Item: item}
		if p, ok := byID[item.ProductID]; ok {
			line.Name = p.Name
			line.Price = p.Price
			line.ImageURL = p.ImageURL
			line.Stock = p.Stock
			line.Available = p.Purchasable() && p.Stock > 0
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *service) FindByIDs(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error) {
	return s.repo.FindByIDs(ctx, uid, ids)
}
