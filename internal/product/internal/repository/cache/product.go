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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
)

var ErrProductNotCached = errors.New("商品详情不在缓存中")

// 详情页允许短暂滞后，后台改动另有主动失效兜底
const expiration = time.Minute

//go:generate mockgen -source=./product.go -package=cachemocks -destination=./mocks/product.mock.go ProductCache
type ProductCache interface {
	SetDetail(ctx context.Context, p domain.Product) error
	GetDetail(ctx context.Context, id int64) (domain.Product, error)
	DelDetail(ctx context.Context, id int64) error
}

type ProductECache struct {
	ec ecache.Cache
}

// NewProductECache 注意缓存前缀
func NewProductECache(ec ecache.Cache) ProductCache {
	return &ProductECache{
		ec: &ecache.NamespaceCache{
			Namespace: "product:",
			C:         ec,
		},
	}
}

func (c *ProductECache) SetDetail(ctx context.Context, p domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("序列化商品失败: %w", err)
	}
	return c.ec.Set(ctx, c.detailKey(p.ID), string(data), expiration)
}

func (c *ProductECache) GetDetail(ctx context.Context, id int64) (domain.Product, error) {
	val := c.ec.Get(ctx, c.detailKey(id))
	if val.KeyNotFound() {
		return domain.Product{}, ErrProductNotCached
	}
	if val.Err != nil {
		return domain.Product{}, fmt.Errorf("查询缓存出错: %w", val.Err)
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(val.Val.(string)), &p); err != nil {
		return domain.Product{}, fmt.Errorf("反序列化商品失败: %w", err)
	}
	return p, nil
}

func (c *ProductECache) DelDetail(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.detailKey(id))
	return err
}

func (c *ProductECache) detailKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
