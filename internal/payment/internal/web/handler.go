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
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment/internal/errs"
	"github.com/ecodeclub/mall/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/confirm", ginx.BS[ConfirmPaymentReq](h.Confirm))
	g.POST("/fail", ginx.BS[PaymentFailReq](h.Fail))
}

func (h *Handler) Confirm(ctx *ginx.Context, req ConfirmPaymentReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Confirm(ctx, sess.Claims().Uid, req.PaymentKey, req.OrderSN, req.Amount)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{
		Data: ConfirmPaymentResp{
			OrderSN:       o.SN,
			Status:        o.Status.ToUint8(),
			PaymentStatus: o.PaymentStatus.ToUint8(),
			TotalAmount:   o.TotalAmount,
		},
	}, nil
}

func (h *Handler) Fail(ctx *ginx.Context, req PaymentFailReq, sess session.Session) (ginx.Result, error) {
	h.svc.Fail(ctx, sess.Claims().Uid, req.OrderSN, req.Code, req.Message)
	return ginx.Result{Msg: "ok"}, nil
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrPaymentConfirmFailed):
		return ginx.Result{Code: errs.PaymentConfirmFailed.Code, Msg: errs.PaymentConfirmFailed.Msg}
	case errors.Is(err, order.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}
	case errors.Is(err, order.ErrAmountMismatch):
		return ginx.Result{Code: errs.AmountMismatch.Code, Msg: errs.AmountMismatch.Msg}
	case errors.Is(err, order.ErrAlreadyPaid):
		return ginx.Result{Code: errs.AlreadyPaid.Code, Msg: errs.AlreadyPaid.Msg}
	default:
		return systemErrorResult
	}
}
