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

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 店面浏览不要求登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/categories", ginx.W(h.Categories))
	g.POST("/popular", ginx.W(h.Popular))
	g.POST("/promotional", ginx.W(h.Promotional))
	g.POST("/latest", ginx.W(h.Latest))
	g.POST("/collaboration", ginx.W(h.Collaboration))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	products, total := h.svc.List(ctx.Request.Context(), service.ListQuery{
		Category:   req.Category,
		ActiveOnly: true,
		SortField:  req.Sort,
		Desc:       req.Desc,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	return ginx.Result{
		Data: ListProductsResp{
			Total:    total,
			Products: toProductVOs(products),
		},
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	categories := h.svc.Categories(ctx.Request.Context())
	return ginx.Result{
		Data: CategoriesResp{
			Categories: slice.Map(categories, func(idx int, src domain.CategoryCount) Category {
				return Category{
					Category: src.Category,
					Label:    src.Category,
					Count:    src.Count,
				}
			}),
		},
	}, nil
}

func (h *Handler) Popular(ctx *ginx.Context) (ginx.Result, error) {
	return h.productListResult(h.svc.Popular(ctx.Request.Context(), 8))
}

func (h *Handler) Promotional(ctx *ginx.Context) (ginx.Result, error) {
	return h.productListResult(h.svc.Promotional(ctx.Request.Context(), 8))
}

func (h *Handler) Latest(ctx *ginx.Context) (ginx.Result, error) {
	return h.productListResult(h.svc.Latest(ctx.Request.Context(), 12))
}

func (h *Handler) Collaboration(ctx *ginx.Context) (ginx.Result, error) {
	return h.productListResult(h.svc.Collaboration(ctx.Request.Context(), 6))
}

func (h *Handler) productListResult(products []domain.Product) (ginx.Result, error) {
	return ginx.Result{
		Data: ProductListResp{Products: toProductVOs(products)},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrProductNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProductVO(p)}, nil
}

func toProductVOs(products []domain.Product) []Product {
	return slice.Map(products, func(idx int, src domain.Product) Product {
		return toProductVO(src)
	})
}

func toProductVO(p domain.Product) Product {
	return Product{
		ID:                 p.ID,
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
		Images:             p.Images,
		Options:            p.Options,
		ViewCnt:            p.ViewCnt,
		IsPromotional:      p.IsPromotional,
		PromotionStart:     p.PromotionStart,
		PromotionEnd:       p.PromotionEnd,
		Ctime:              p.Ctime,
		Utime:              p.Utime,
	}
}
