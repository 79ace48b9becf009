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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/errs"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/create", ginx.BS[SaveProductReq](h.Create))
	g.POST("/update", ginx.BS[UpdateProductReq](h.Update))
	g.POST("/delete", ginx.BS[DeleteProductReq](h.Delete))
	g.POST("/list", ginx.BS[AdminListReq](h.List))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveProductReq, sess session.Session) (ginx.Result, error) {
	p := req.Product
	id, err := h.svc.Create(ctx.Request.Context(), sess.Claims().Uid, domain.Product{
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage,
		Stock:              p.Stock,
		Status:             domain.Status(p.Status),
		ImageURL:           p.ImageURL,
		Images:             p.Images,
		Options:            p.Options,
		IsPromotional:      p.IsPromotional,
		PromotionStart:     p.PromotionStart,
		PromotionEnd:       p.PromotionEnd,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateProductReq, sess session.Session) (ginx.Result, error) {
	var status *domain.Status
	if req.Status != nil {
		s := domain.Status(*req.Status)
		status = &s
	}
	err := h.svc.Update(ctx.Request.Context(), sess.Claims().Uid, domain.ProductUpdate{
		ID:                 req.ID,
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Price:              req.Price,
		OriginalPrice:      req.OriginalPrice,
		DiscountPercentage: req.DiscountPercentage,
		Stock:              req.Stock,
		Status:             status,
		ImageURL:           req.ImageURL,
		Images:             req.Images,
		Options:            req.Options,
		IsPromotional:      req.IsPromotional,
		PromotionStart:     req.PromotionStart,
		PromotionEnd:       req.PromotionEnd,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteProductReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Hard)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	products, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, service.AdminQuery{
		Keyword:   req.Keyword,
		Status:    domain.Status(req.Status),
		Category:  req.Category,
		SortField: req.Sort,
		Desc:      req.Desc,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total:    total,
			Products: toProductVOs(products),
		},
	}, nil
}

func (h *AdminHandler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, authz.ErrUnauthorized):
		return unauthorizedResult, err
	case errors.Is(err, service.ErrInvalidProduct):
		return ginx.Result{Code: errs.InvalidProduct.Code, Msg: err.Error()}, err
	default:
		return systemErrorResult, err
	}
}
