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
	"testing"

	"github.com/ecodeclub/mall/internal/order"
	ordermocks "github.com/ecodeclub/mall/internal/order/mocks"
	"github.com/ecodeclub/mall/internal/payment/internal/service/toss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUID = int64(8848)

type fakeGateway struct {
	wantConfirm toss.ConfirmRequest
	settlement  toss.Settlement
	err         error
	t           *testing.T
}

func (f *fakeGateway) Confirm(_ context.Context, confirm toss.ConfirmRequest) (toss.Settlement, error) {
	assert.Equal(f.t, f.wantConfirm, confirm)
	return f.settlement, f.err
}

func TestService_Confirm(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderSvc := ordermocks.NewMockService(ctrl)
	orderSvc.EXPECT().CompletePayment(gomock.Any(), testUID, "OR20260901T0001", order.Settlement{
		PaymentID: "pay_key_001",
		Method:    "CARD",
		Amount:    43000,
		Data:      `{"status":"DONE"}`,
	}).Return(order.Order{
		SN:            "OR20260901T0001",
		Status:        order.StatusConfirmed,
		PaymentStatus: order.PaymentStatusCompleted,
		TotalAmount:   43000,
	}, nil)

	gateway := &fakeGateway{
		t: t,
		wantConfirm: toss.ConfirmRequest{
			PaymentKey: "pay_key_001",
			OrderID:    "OR20260901T0001",
			Amount:     43000,
		},
		settlement: toss.Settlement{
			PaymentKey:  "pay_key_001",
			OrderID:     "OR20260901T0001",
			Status:      "DONE",
			Method:      "CARD",
			TotalAmount: 43000,
			Raw:         `{"status":"DONE"}`,
		},
	}

	svc := NewService(gateway, orderSvc)
	res, err := svc.Confirm(context.Background(), testUID, "pay_key_001", "OR20260901T0001", 43000)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, res.Status)
	assert.Equal(t, order.PaymentStatusCompleted, res.PaymentStatus)
}

func TestService_Confirm_GatewayFailed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 渠道确认失败时不能触碰订单
	orderSvc := ordermocks.NewMockService(ctrl)
	gateway := &fakeGateway{
		t: t,
		wantConfirm: toss.ConfirmRequest{
			PaymentKey: "pay_key_bad",
			OrderID:    "OR20260901T0002",
			Amount:     1000,
		},
		err: &toss.Error{StatusCode: 400, Code: "NOT_FOUND_PAYMENT", Message: "结算单不存在"},
	}

	svc := NewService(gateway, orderSvc)
	_, err := svc.Confirm(context.Background(), testUID, "pay_key_bad", "OR20260901T0002", 1000)
	assert.ErrorIs(t, err, ErrPaymentConfirmFailed)
}

func TestService_Confirm_OrderErrorPassthrough(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "订单不存在",
			err:     order.ErrOrderNotFound,
			wantErr: order.ErrOrderNotFound,
		},
		{
			name:    "金额不一致",
			err:     order.ErrAmountMismatch,
			wantErr: order.ErrAmountMismatch,
		},
		{
			name:    "重复确认",
			err:     order.ErrAlreadyPaid,
			wantErr: order.ErrAlreadyPaid,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderSvc := ordermocks.NewMockService(ctrl)
			orderSvc.EXPECT().CompletePayment(gomock.Any(), testUID, "OR20260901T0003", gomock.Any()).
				Return(order.Order{}, tc.err)
			gateway := &fakeGateway{
				t: t,
				wantConfirm: toss.ConfirmRequest{
					PaymentKey: "pay_key_001",
					OrderID:    "OR20260901T0003",
					Amount:     43000,
				},
				settlement: toss.Settlement{
					PaymentKey:  "pay_key_001",
					TotalAmount: 43000,
				},
			}

			svc := NewService(gateway, orderSvc)
			_, err := svc.Confirm(context.Background(), testUID, "pay_key_001", "OR20260901T0003", 43000)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
