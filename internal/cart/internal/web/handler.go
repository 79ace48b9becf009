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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/errs"
	"github.com/ecodeclub/mall/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 角标计数对未登录用户也可见，固定返回 0
	server.POST("/cart/count", ginx.W(h.Count))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.Add))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveCartItemsReq](h.Remove))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) Add(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.Add(ctx, sess.Claims().Uid, req.ProductID, req.Quantity, req.Options)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toCartItemVO(item)}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.UpdateQuantity(ctx, sess.Claims().Uid, req.ID, req.Quantity)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toCartItemVO(item)}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveCartItemsReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveBatch(ctx, sess.Claims().Uid, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "ok"}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "ok"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	lines, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CartListResp{
		Lines: slice.Map(lines, func(idx int, src domain.Line) CartLine {
			return CartLine{
				CartItem:  toCartItemVO(src.Item),
				Name:      src.Name,
				Price:     src.Price,
				ImageURL:  src.ImageURL,
				Stock:     src.Stock,
				Available: src.Available,
			}
		}),
	}}, nil
}

func (h *Handler) Count(ctx *ginx.Context) (ginx.Result, error) {
	var uid int64
	if sess, err := session.Get(ctx); err == nil {
		uid = sess.Claims().Uid
	}
	return ginx.Result{Data: CountResp{Count: h.svc.Count(ctx, uid)}}, nil
}

func toCartItemVO(item domain.CartItem) CartItem {
	return CartItem{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Options:   item.Options,
	}
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return ginx.Result{Code: errs.ProductNotFound.Code, Msg: errs.ProductNotFound.Msg}
	case errors.Is(err, service.ErrProductUnavailable):
		return ginx.Result{Code: errs.ProductUnavailable.Code, Msg: errs.ProductUnavailable.Msg}
	case errors.Is(err, service.ErrInsufficientStock):
		return ginx.Result{Code: errs.InsufficientStock.Code, Msg: errs.InsufficientStock.Msg}
	case errors.Is(err, service.ErrCartItemNotFound):
		return ginx.Result{Code: errs.CartItemNotFound.Code, Msg: errs.CartItemNotFound.Msg}
	case errors.Is(err, service.ErrInvalidQuantity):
		return ginx.Result{Code: errs.InvalidQuantity.Code, Msg: errs.InvalidQuantity.Msg}
	default:
		return systemErrorResult
	}
}
