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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// 创建订单请求ID的去重窗口
const createOrderRequestIDTimeout = 5 * time.Minute

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
	g.POST("/cancel", ginx.BS[OrderSNReq](h.Cancel))
}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CreateOrder(ctx, sess.Claims().Uid, req.CartItemIDs, domain.ShippingAddress{
		Recipient:    req.Address.Recipient,
		Phone:        req.Address.Phone,
		PostalCode:   req.Address.PostalCode,
		Address1:     req.Address.Address1,
		Address2:     req.Address.Address2,
		DeliveryNote: req.Address.DeliveryNote,
	}, req.OrderNote)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:     order.SN,
			TotalAmount: order.TotalAmount,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, createOrderRequestIDTimeout); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit < 1 {
		req.Limit = 10
	}
	os, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(os, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toOrderVO(o)}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "ok"}, nil
}

func toOrderVO(o domain.Order) Order {
	return Order{
		SN:            o.SN,
		Status:        o.Status.ToUint8(),
		PaymentStatus: o.PaymentStatus.ToUint8(),
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		TotalAmount:   o.TotalAmount,
		Address: ShippingAddress{
			Recipient:    o.Address.Recipient,
			Phone:        o.Address.Phone,
			PostalCode:   o.Address.PostalCode,
			Address1:     o.Address.Address1,
			Address2:     o.Address.Address2,
			DeliveryNote: o.Address.DeliveryNote,
		},
		OrderNote:     o.OrderNote,
		PaymentMethod: o.PaymentMethod,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				Price:     src.Price,
				Quantity:  src.Quantity,
				Options:   src.Options,
			}
		}),
		Ctime: o.Ctime,
	}
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrCartMismatch):
		return ginx.Result{Code: errs.CartMismatch.Code, Msg: errs.CartMismatch.Msg}
	case errors.Is(err, service.ErrProductMissing):
		return ginx.Result{Code: errs.ProductMissing.Code, Msg: errs.ProductMissing.Msg}
	case errors.Is(err, service.ErrProductUnavailable):
		return ginx.Result{Code: errs.ProductUnavailable.Code, Msg: errs.ProductUnavailable.Msg}
	case errors.Is(err, service.ErrInsufficientStock):
		return ginx.Result{Code: errs.InsufficientStock.Code, Msg: errs.InsufficientStock.Msg}
	case errors.Is(err, service.ErrInvalidAmount):
		return ginx.Result{Code: errs.InvalidAmount.Code, Msg: errs.InvalidAmount.Msg}
	case errors.Is(err, service.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}
	case errors.Is(err, service.ErrInvalidStatus):
		return ginx.Result{Code: errs.InvalidStatus.Code, Msg: errs.InvalidStatus.Msg}
	case errors.Is(err, service.ErrAmountMismatch):
		return ginx.Result{Code: errs.AmountMismatch.Code, Msg: errs.AmountMismatch.Msg}
	case errors.Is(err, service.ErrAlreadyPaid):
		return ginx.Result{Code: errs.AlreadyPaid.Code, Msg: errs.AlreadyPaid.Msg}
	default:
		return systemErrorResult
	}
}
