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

package web

// ListProductsReq 店面分页查询
type ListProductsReq struct {
	Category string `json:"category"`
	Sort     string `json:"sort"` // created_at / price / name
	Desc     bool   `json:"desc"`
	Page     int    `json:"page"` // 从1开始
	PageSize int    `json:"pageSize"`
}

type ListProductsResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Category           string              `json:"category"`
	Price              int64               `json:"price"`
	OriginalPrice      int64               `json:"originalPrice,omitempty"`
	DiscountPercentage int64               `json:"discountPercentage,omitempty"`
	Stock              int64               `json:"stock"`
	Status             uint8               `json:"status"`
	IsActive           bool                `json:"isActive"`
	ImageURL           string              `json:"imageURL"`
	Images             []string            `json:"images"`
	Options            map[string][]string `json:"options,omitempty"`
	ViewCnt            int64               `json:"viewCnt"`
	IsPromotional      bool                `json:"isPromotional"`
	PromotionStart     int64               `json:"promotionStart,omitempty"`
	PromotionEnd       int64               `json:"promotionEnd,omitempty"`
	Ctime              int64               `json:"ctime"`
	Utime              int64               `json:"utime"`
}

type CategoriesResp struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

type ProductListResp struct {
	Products []Product `json:"products"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

// SaveProductReq 管理端创建商品
type SaveProductReq struct {
	Product Product `json:"product"`
}

// UpdateProductReq 管理端部分更新，指针字段为 null 表示不更新
type UpdateProductReq struct {
	ID                 int64               `json:"id"`
	Name               *string             `json:"name"`
	Description        *string             `json:"description"`
	Category           *string             `json:"category"`
	Price              *int64              `json:"price"`
	OriginalPrice      *int64              `json:"originalPrice"`
	DiscountPercentage *int64              `json:"discountPercentage"`
	Stock              *int64              `json:"stock"`
	Status             *uint8              `json:"status"`
	ImageURL           *string             `json:"imageURL"`
	Images             []string            `json:"images"`
	Options            map[string][]string `json:"options"`
	IsPromotional      *bool               `json:"isPromotional"`
	PromotionStart     *int64              `json:"promotionStart"`
	PromotionEnd       *int64              `json:"promotionEnd"`
}

type DeleteProductReq struct {
	ID   int64 `json:"id"`
	Hard bool  `json:"hard"`
}

// AdminListReq 管理端搜索，条件都是可选的
type AdminListReq struct {
	Keyword  string `json:"keyword"`
	Status   uint8  `json:"status"`
	Category string `json:"category"`
	Sort     string `json:"sort"`
	Desc     bool   `json:"desc"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}
