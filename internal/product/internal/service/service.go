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
	"sort"

	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"github.com/ecodeclub/mall/internal/product/internal/repository/cache"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("商品不存在")

const (
	// 联名专区：分类命中或名称/描述包含任一关键字
	collaborationCategory = "collaboration"

	recentOrderLineLimit = 1000
)

var collaborationKeywords = []string{"联名", "collab", "限定"}

type ListQuery struct {
	Category   string
	ActiveOnly bool
	SortField  string
	Desc       bool
	Page       int
	PageSize   int
}

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	// 面向店面的读路径。约定：底层出错时记日志并返回空结果，
	// 调用方（页面渲染）不感知失败
	List(ctx context.Context, q ListQuery) ([]domain.Product, int64)
	Categories(ctx context.Context) []domain.CategoryCount
	Popular(ctx context.Context, limit int) []domain.Product
	Promotional(ctx context.Context, limit int) []domain.Product
	Latest(ctx context.Context, limit int) []domain.Product
	Collaboration(ctx context.Context, limit int) []domain.Product

	// Detail 商品详情页使用，顺带累加浏览计数
	Detail(ctx context.Context, id int64) (domain.Product, error)
	// FindByID 供购物车、订单等模块校验商品状态使用，不吞错
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

func NewService(repo repository.ProductRepository, c cache.ProductCache) Service {
	return &service{repo: repo, cache: c, logger: elog.DefaultLogger}
}

type service struct {
	repo   repository.ProductRepository
	cache  cache.ProductCache
	logger *elog.Component
}

func (s *service) List(ctx context.Context, q ListQuery) ([]domain.Product, int64) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 12
	}
	f := dao.ListFilter{
		Category:   q.Category,
		ActiveOnly: q.ActiveOnly,
		SortField:  q.SortField,
		Desc:       q.Desc,
	}
	offset := (q.Page - 1) * q.PageSize

	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, f, offset, q.PageSize)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	if err := eg.Wait(); err != nil {
		s.logger.Error("查询商品列表失败", elog.FieldErr(err))
		return []domain.Product{}, 0
	}
	return ps, total
}

func (s *service) Categories(ctx context.Context) []domain.CategoryCount {
	categories, err := s.repo.ActiveCategories(ctx)
	if err != nil {
		s.logger.Error("查询商品分类失败", elog.FieldErr(err))
		return []domain.CategoryCount{}
	}
	counts := make(map[string]int64, len(categories))
	for _, c := range categories {
		counts[c]++
	}
	res := make([]domain.CategoryCount, 0, len(counts))
	for c, n := range counts {
		res = append(res, domain.CategoryCount{Category: c, Count: n})
	}
	// 计数相同按分类名保证结果稳定
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Category < res[j].Category
	})
	return res
}

// Popular 取最近的订单项在内存里按商品聚合销量，销量排序取前 limit 个。
// 还没有任何订单时返回空，属于正常状态
func (s *service) Popular(ctx context.Context, limit int) []domain.Product {
	lines, err := s.repo.RecentOrderLines(ctx, recentOrderLineLimit)
	if err != nil {
		s.logger.Error("查询热销商品失败", elog.FieldErr(err))
		return []domain.Product{}
	}
	if len(lines) == 0 {
		return []domain.Product{}
	}

	sold := make(map[int64]int64, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := sold[line.ProductID]; !ok {
			ids = append(ids, line.ProductID)
		}
		sold[line.ProductID] += line.Quantity
	}
	// 销量并列时保持首次出现的先后
	sort.SliceStable(ids, func(i, j int) bool {
		return sold[ids[i]] > sold[ids[j]]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}

	ps, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("查询热销商品失败", elog.FieldErr(err))
		return []domain.Product{}
	}
	byID := make(map[int64]domain.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}
	res := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			res = append(res, p)
		}
	}
	return res
}

func (s *service) Promotional(ctx context.Context, limit int) []domain.Product {
	ps, err := s.repo.ListPromotional(ctx, limit)
	if err != nil {
		s.logger.Error("查询促销商品失败", elog.FieldErr(err))
		return []domain.Product{}
	}
	return ps
}

func (s *service) Latest(ctx context.Context, limit int) []domain.Product {
	ps, err := s.repo.ListLatest(ctx, limit)
	if err != nil {
		s.logger.Error("查询最新商品失败", elog.FieldErr(err))
		return []domain.Product{}
	}
	return ps
}

func (s *service) Collaboration(ctx context.Context, limit int) []domain.Product {
	ps, err := s.repo.ListCollaboration(ctx, collaborationCategory, collaborationKeywords, limit)
	if err != nil {
		s.logger.Error("查询联名商品失败", elog.FieldErr(err))
		return []domain.Product{}
	}
	return ps
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.cache.GetDetail(ctx, id)
	if err == nil {
		s.incrViewCnt(ctx, id)
		return p, nil
	}
	p, err = s.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if er := s.cache.SetDetail(ctx, p); er != nil {
		s.logger.Warn("写入商品详情缓存失败", elog.Int64("pid", id), elog.FieldErr(er))
	}
	s.incrViewCnt(ctx, id)
	return p, nil
}

// incrViewCnt 浏览计数失败不影响详情页
func (s *service) incrViewCnt(ctx context.Context, id int64) {
	if er := s.repo.IncrViewCnt(ctx, id); er != nil {
		s.logger.Warn("累加浏览计数失败", elog.Int64("pid", id), elog.FieldErr(er))
	}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.FindByIDs(ctx, ids)
}
