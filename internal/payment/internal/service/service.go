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

	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment/internal/service/toss"
	"github.com/gotomicro/ego/core/elog"
)

var ErrPaymentConfirmFailed = errors.New("支付确认失败")

// Gateway 渠道确认接口，方便测试时替换
type Gateway interface {
	Confirm(ctx context.Context, confirm toss.ConfirmRequest) (toss.Settlement, error)
}

var _ Gateway = (*toss.Client)(nil)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// Confirm 拿前端回传的 paymentKey 找渠道换结算结果，
	// 成功后写回订单并把订单推进到已确认
	Confirm(ctx context.Context, uid int64, paymentKey, orderSN string, amount int64) (order.Order, error)
	// Fail 支付挂件跳转失败回调，只记录渠道给的原因
	Fail(ctx context.Context, uid int64, orderSN, code, message string)
}

func NewService(gateway Gateway, orderSvc order.Service) Service {
	return &service{
		gateway:  gateway,
		orderSvc: orderSvc,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	gateway  Gateway
	orderSvc order.Service
	logger   *elog.Component
}

func (s *service) Confirm(ctx context.Context, uid int64, paymentKey, orderSN string, amount int64) (order.Order, error) {
	settlement, err := s.gateway.Confirm(ctx, toss.ConfirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderSN,
		Amount:     amount,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("%w: %w", ErrPaymentConfirmFailed, err)
	}
	return s.orderSvc.CompletePayment(ctx, uid, orderSN, order.Settlement{
		PaymentID: settlement.PaymentKey,
		Method:    settlement.Method,
		Amount:    settlement.TotalAmount,
		Data:      settlement.Raw,
	})
}

func (s *service) Fail(ctx context.Context, uid int64, orderSN, code, message string) {
	s.logger.Warn("支付失败回调",
		elog.Int64("uid", uid),
		elog.String("sn", orderSN),
		elog.String("code", code),
		elog.String("message", message))
}
