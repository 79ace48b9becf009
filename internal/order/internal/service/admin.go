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
	"fmt"

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/pkg/authz"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// 管理端只负责把订单沿着发货链路往前推
var adminTransitions = map[domain.Status]domain.Status{
	domain.StatusShipped:   domain.StatusConfirmed,
	domain.StatusDelivered: domain.StatusShipped,
}

//go:generate mockgen -source=./admin.go -package=ordermocks -destination=../../mocks/admin.mock.go AdminService
type AdminService interface {
	List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	// UpdateStatus 只允许 已确认→已发货、已发货→已送达 两种推进
	UpdateStatus(ctx context.Context, uid int64, sn string, status domain.Status) error
}

func NewAdminService(repo repository.OrderRepository, whitelist *authz.Whitelist) AdminService {
	return &adminService{repo: repo, whitelist: whitelist}
}

type adminService struct {
	repo      repository.OrderRepository
	whitelist *authz.Whitelist
}

func (s *adminService) List(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	if err := s.whitelist.Authorize(uid); err != nil {
		return nil, 0, err
	}
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.AdminList(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.AdminCount(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *adminService) UpdateStatus(ctx context.Context, uid int64, sn string, status domain.Status) error {
	if err := s.whitelist.Authorize(uid); err != nil {
		return err
	}
	from, ok := adminTransitions[status]
	if !ok {
		return fmt.Errorf("%w: 不支持推进到 %d", ErrInvalidStatus, status)
	}
	err := s.repo.AdminUpdateStatus(ctx, sn, from, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, sn)
	}
	return err
}
