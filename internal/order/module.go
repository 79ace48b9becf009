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

package order

import (
	"time"

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/job"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	AdminService = service.AdminService

	Order           = domain.Order
	OrderItem       = domain.OrderItem
	Status          = domain.Status
	PaymentStatus   = domain.PaymentStatus
	ShippingAddress = domain.ShippingAddress
	Settlement      = domain.Settlement

	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusPending   = domain.StatusPending
	StatusConfirmed = domain.StatusConfirmed
	StatusShipped   = domain.StatusShipped
	StatusDelivered = domain.StatusDelivered
	StatusCancelled = domain.StatusCancelled

	PaymentStatusCompleted = domain.PaymentStatusCompleted
)

var (
	ErrOrderNotFound  = service.ErrOrderNotFound
	ErrAmountMismatch = service.ErrAmountMismatch
	ErrAlreadyPaid    = service.ErrAlreadyPaid
)

func NewCloseExpiredOrdersJob(svc Service, minute int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return job.NewCloseExpiredOrdersJob(svc, minute, timeout)
}

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	AdminSvc AdminService
}
