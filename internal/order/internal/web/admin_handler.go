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
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/pkg/authz"
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
	g := server.Group("/order")
	g.POST("/list", ginx.BS[AdminListOrdersReq](h.List))
	g.POST("/status", ginx.BS[AdminUpdateStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit < 1 {
		req.Limit = 20
	}
	os, total, err := h.svc.List(ctx, sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return h.errResult(err), err
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

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req AdminUpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, sess.Claims().Uid, req.SN, domain.Status(req.Status))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Msg: "ok"}, nil
}

func (h *AdminHandler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, authz.ErrUnauthorized):
		return unauthorizedResult
	case errors.Is(err, service.ErrInvalidStatus):
		return ginx.Result{Code: errs.InvalidStatus.Code, Msg: errs.InvalidStatus.Msg}
	default:
		return systemErrorResult
	}
}
