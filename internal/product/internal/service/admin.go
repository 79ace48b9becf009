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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"github.com/ecodeclub/mall/internal/product/internal/repository/cache"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidProduct = errors.New("商品信息非法")

type AdminQuery struct {
	Keyword   string
	Status    domain.Status
	Category  string
	SortField string
	Desc      bool
	Offset    int
	Limit     int
}

//go:generate mockgen -source=./admin.go -package=productmocks -destination=../../mocks/admin.mock.go AdminService
type AdminService interface {
	// 所有操作先校验白名单，未授权的调用不会触达数据
	Create(ctx context.Context, uid int64, p domain.Product) (int64, error)
	Update(ctx context.Context, uid int64, u domain.ProductUpdate) error
	// Delete hard 为 false 时是可逆的软删除：status=隐藏 并下架
	Delete(ctx context.Context, uid int64, id int64, hard bool) error
	List(ctx context.Context, uid int64, q AdminQuery) ([]domain.Product, int64, error)
}

func NewAdminService(repo repository.ProductRepository, c cache.ProductCache, whitelist *authz.Whitelist) AdminService {
	return &adminService{repo: repo, cache: c, whitelist: whitelist, logger: elog.DefaultLogger}
}

type adminService struct {
	repo      repository.ProductRepository
	cache     cache.ProductCache
	whitelist *authz.Whitelist
	logger    *elog.Component
}

func (s *adminService) Create(ctx context.Context, uid int64, p domain.Product) (int64, error) {
	if err := s.whitelist.Authorize(uid); err != nil {
		return 0, err
	}
	if err := validateProduct(p); err != nil {
		return 0, err
	}
	if p.Status == 0 {
		p.Status = domain.StatusActive
	}
	p.IsActive = p.Status != domain.StatusHidden
	p.ImageURL, p.Images = normalizeImages(p.ImageURL, p.Images)
	return s.repo.Create(ctx, p)
}

func (s *adminService) Update(ctx context.Context, uid int64, u domain.ProductUpdate) error {
	if err := s.whitelist.Authorize(uid); err != nil {
		return err
	}
	if u.ID <= 0 {
		return fmt.Errorf("%w: 缺少商品ID", ErrInvalidProduct)
	}
	fields, err := s.updateFields(u)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	if err = s.repo.Update(ctx, u.ID, fields); err != nil {
		return err
	}
	s.evictDetail(ctx, u.ID)
	return nil
}

// evictDetail 改动落库后让详情缓存立即失效，失败时靠短过期时间兜底
func (s *adminService) evictDetail(ctx context.Context, id int64) {
	if err := s.cache.DelDetail(ctx, id); err != nil {
		s.logger.Warn("清除商品详情缓存失败", elog.Int64("pid", id), elog.FieldErr(err))
	}
}

func (s *adminService) updateFields(u domain.ProductUpdate) (map[string]any, error) {
	fields := make(map[string]any)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Price != nil {
		if *u.Price < 0 {
			return nil, fmt.Errorf("%w: 价格不能为负", ErrInvalidProduct)
		}
		fields["price"] = *u.Price
	}
	if u.OriginalPrice != nil {
		if *u.OriginalPrice < 0 {
			return nil, fmt.Errorf("%w: 原价不能为负", ErrInvalidProduct)
		}
		fields["original_price"] = *u.OriginalPrice
	}
	if u.DiscountPercentage != nil {
		if *u.DiscountPercentage < 0 || *u.DiscountPercentage > 100 {
			return nil, fmt.Errorf("%w: 折扣必须在0到100之间", ErrInvalidProduct)
		}
		fields["discount_percentage"] = *u.DiscountPercentage
	}
	if u.Stock != nil {
		if *u.Stock < 0 {
			return nil, fmt.Errorf("%w: 库存不能为负", ErrInvalidProduct)
		}
		fields["stock"] = *u.Stock
	}
	if u.Status != nil {
		// 不依赖数据库触发器，写状态时同步写上架标志
		fields["status"] = u.Status.ToUint8()
		fields["is_active"] = *u.Status != domain.StatusHidden
	}
	if u.Images != nil || u.ImageURL != nil {
		var imageURL string
		if u.ImageURL != nil {
			imageURL = *u.ImageURL
		}
		var images []string
		if u.Images != nil {
			images = u.Images
		}
		imageURL, images = normalizeImages(imageURL, images)
		data, err := json.Marshal(images)
		if err != nil {
			return nil, err
		}
		fields["image_url"] = imageURL
		fields["images"] = string(data)
	}
	if u.Options != nil {
		data, err := json.Marshal(u.Options)
		if err != nil {
			return nil, err
		}
		fields["options"] = string(data)
	}
	if u.IsPromotional != nil {
		fields["is_promotional"] = *u.IsPromotional
	}
	if u.PromotionStart != nil {
		fields["promotion_start"] = *u.PromotionStart
	}
	if u.PromotionEnd != nil {
		fields["promotion_end"] = *u.PromotionEnd
	}
	return fields, nil
}

func (s *adminService) Delete(ctx context.Context, uid int64, id int64, hard bool) error {
	if err := s.whitelist.Authorize(uid); err != nil {
		return err
	}
	if hard {
		err := s.repo.DeleteByID(ctx, id)
		if err != nil {
			return err
		}
		s.evictDetail(ctx, id)
		return nil
	}
	err := s.repo.Update(ctx, id, map[string]any{
		"status":    domain.StatusHidden.ToUint8(),
		"is_active": false,
	})
	if err != nil {
		return err
	}
	s.evictDetail(ctx, id)
	return nil
}

func (s *adminService) List(ctx context.Context, uid int64, q AdminQuery) ([]domain.Product, int64, error) {
	if err := s.whitelist.Authorize(uid); err != nil {
		return nil, 0, err
	}
	f := dao.AdminFilter{
		Keyword:   q.Keyword,
		Status:    q.Status.ToUint8(),
		Category:  q.Category,
		SortField: q.SortField,
		Desc:      q.Desc,
	}
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.AdminList(ctx, f, q.Offset, q.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.AdminCount(ctx, f)
		return err
	})
	return ps, total, eg.Wait()
}

// normalizeImages 归一新旧两个图片字段，图列表为准，旧字段冗余首图
func normalizeImages(imageURL string, images []string) (string, []string) {
	if len(images) == 0 {
		if imageURL == "" {
			return "", []string{}
		}
		return imageURL, []string{imageURL}
	}
	return images[0], images
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: 缺少商品名称", ErrInvalidProduct)
	}
	if p.Price < 0 || p.OriginalPrice < 0 {
		return fmt.Errorf("%w: 价格不能为负", ErrInvalidProduct)
	}
	if p.OriginalPrice > 0 && p.OriginalPrice < p.Price {
		return fmt.Errorf("%w: 原价不能低于现价", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: 库存不能为负", ErrInvalidProduct)
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return fmt.Errorf("%w: 折扣必须在0到100之间", ErrInvalidProduct)
	}
	return nil
}
