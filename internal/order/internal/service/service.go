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

	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrCartMismatch       = errors.New("购物车条目不匹配")
	ErrProductMissing     = errors.New("商品不存在")
	ErrProductUnavailable = errors.New("商品不可购买")
	ErrInsufficientStock  = errors.New("商品库存不足")
	ErrInvalidAmount      = errors.New("订单金额非法")
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrInvalidStatus      = errors.New("订单状态非法")
	ErrAmountMismatch     = errors.New("结算金额与订单金额不一致")
	ErrAlreadyPaid        = errors.New("订单已支付")
)

// 渠道金额按渠道最小单位换算后可能有一分钱的出入
const settleAmountTolerance = int64(1)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateOrder 校验并消费给定的购物车条目，生成订单。
	// 订单落库与库存扣减原子完成，购物车清理是尽力而为
	CreateOrder(ctx context.Context, uid int64, cartItemIDs []int64, address domain.ShippingAddress, note string) (domain.Order, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	Detail(ctx context.Context, uid int64, sn string) (domain.Order, error)
	Cancel(ctx context.Context, uid int64, sn string) error
	// CompletePayment 把支付结算写回订单，重复结算返回 ErrAlreadyPaid
	CompletePayment(ctx context.Context, uid int64, sn string, settlement domain.Settlement) (domain.Order, error)
	// CloseExpiredOrders 取消 cutoff 之前创建且一直未支付的订单，返回取消数量
	CloseExpiredOrders(ctx context.Context, cutoff int64) (int64, error)
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	productSvc product.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		productSvc:  productSvc,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	productSvc  product.Service
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, uid int64, cartItemIDs []int64, address domain.ShippingAddress, note string) (domain.Order, error) {
	if len(cartItemIDs) == 0 {
		return domain.Order{}, fmt.Errorf("%w: 未选择任何条目", ErrCartMismatch)
	}
	items, err := s.cartSvc.FindByIDs(ctx, uid, cartItemIDs)
	if err != nil {
		return domain.Order{}, err
	}
	// 数量对不上说明有条目不存在或者不属于当前用户，一并拒绝
	if len(items) != len(cartItemIDs) {
		return domain.Order{}, fmt.Errorf("%w: 期望 %d 实际 %d", ErrCartMismatch, len(cartItemIDs), len(items))
	}

	orderItems, subtotal, err := s.buildOrderItems(ctx, items)
	if err != nil {
		return domain.Order{}, err
	}
	shippingFee := domain.CalculateShippingFee(subtotal)
	total := subtotal + shippingFee
	if total <= 0 {
		return domain.Order{}, fmt.Errorf("%w: %d", ErrInvalidAmount, total)
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		SN:            sn,
		BuyerID:       uid,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		Subtotal:      subtotal,
		ShippingFee:   shippingFee,
		TotalAmount:   total,
		Address:       address,
		OrderNote:     note,
		Items:         orderItems,
	}
	id, err := s.repo.CreateOrder(ctx, order)
	if errors.Is(err, dao.ErrStockNotEnough) {
		return domain.Order{}, fmt.Errorf("%w: %w", ErrInsufficientStock, err)
	}
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id

	// 订单已经成立，购物车清理失败只会留下几条陈旧条目，
	// 用户下次下单时会重新校验，不回滚订单
	if er := s.cartSvc.RemoveBatch(ctx, uid, cartItemIDs); er != nil {
		s.logger.Warn("删除已结算的购物车条目失败",
			elog.Int64("uid", uid),
			elog.String("sn", sn),
			elog.FieldErr(er))
	}
	return order, nil
}

func (s *service) buildOrderItems(ctx context.Context, items []cart.CartItem) ([]domain.OrderItem, int64, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	ps, err := s.productSvc.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[int64]product.Product, len(ps))
	for _, p := range ps {
		byID[p.ID] = p
	}

	var subtotal int64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrProductMissing, item.ProductID)
		}
		if !p.Purchasable() {
			return nil, 0, fmt.Errorf("%w: %d", ErrProductUnavailable, p.ID)
		}
		if item.Quantity > p.Stock {
			return nil, 0, fmt.Errorf("%w: 商品 %d 库存 %d 需要 %d", ErrInsufficientStock, p.ID, p.Stock, item.Quantity)
		}
		subtotal += p.Price * item.Quantity
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
			Options:   item.Options,
		})
	}
	return orderItems, subtotal, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyerID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyerID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	o, err := s.findBySN(ctx, uid, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := s.repo.FindItems(ctx, o.ID)
	if err != nil {
		return domain.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (s *service) Cancel(ctx context.Context, uid int64, sn string) error {
	o, err := s.findBySN(ctx, uid, sn)
	if err != nil {
		return err
	}
	if !o.Status.Cancellable() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, o.Status)
	}
	return s.repo.UpdateStatus(ctx, uid, sn,
		[]domain.Status{domain.StatusPending, domain.StatusConfirmed},
		domain.StatusCancelled)
}

func (s *service) CompletePayment(ctx context.Context, uid int64, sn string, settlement domain.Settlement) (domain.Order, error) {
	o, err := s.findBySN(ctx, uid, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if o.PaymentStatus == domain.PaymentStatusCompleted {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrAlreadyPaid, sn)
	}
	if diff := settlement.Amount - o.TotalAmount; diff > settleAmountTolerance || diff < -settleAmountTolerance {
		return domain.Order{}, fmt.Errorf("%w: 订单 %d 结算 %d", ErrAmountMismatch, o.TotalAmount, settlement.Amount)
	}
	err = s.repo.MarkPaid(ctx, uid, sn, settlement)
	if errors.Is(err, dao.ErrAlreadyPaid) {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrAlreadyPaid, sn)
	}
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.StatusConfirmed
	o.PaymentStatus = domain.PaymentStatusCompleted
	o.PaymentID = settlement.PaymentID
	o.PaymentMethod = settlement.Method
	o.PaymentData = settlement.Data
	return o, nil
}

func (s *service) CloseExpiredOrders(ctx context.Context, cutoff int64) (int64, error) {
	return s.repo.CloseExpired(ctx, cutoff)
}

func (s *service) findBySN(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	o, err := s.repo.FindBySN(ctx, uid, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, sn)
	}
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
