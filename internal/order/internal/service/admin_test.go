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

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	repomocks "github.com/ecodeclub/mall/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testAdminUID = int64(1001)

func TestAdminService_UpdateStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		uid     int64
		status  domain.Status
		mock    func(ctrl *gomock.Controller) *repomocks.MockOrderRepository
		wantErr error
	}{
		{
			name:   "确认后发货",
			uid:    testAdminUID,
			status: domain.StatusShipped,
			mock: func(ctrl *gomock.Controller) *repomocks.MockOrderRepository {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().AdminUpdateStatus(gomock.Any(), "sn-100",
					domain.StatusConfirmed, domain.StatusShipped).Return(nil)
				return repo
			},
		},
		{
			name:   "发货后送达",
			uid:    testAdminUID,
			status: domain.StatusDelivered,
			mock: func(ctrl *gomock.Controller) *repomocks.MockOrderRepository {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().AdminUpdateStatus(gomock.Any(), "sn-100",
					domain.StatusShipped, domain.StatusDelivered).Return(nil)
				return repo
			},
		},
		{
			name:   "不允许直接改成已取消",
			uid:    testAdminUID,
			status: domain.StatusCancelled,
			mock: func(ctrl *gomock.Controller) *repomocks.MockOrderRepository {
				return repomocks.NewMockOrderRepository(ctrl)
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "前置状态不符",
			uid:    testAdminUID,
			status: domain.StatusShipped,
			mock: func(ctrl *gomock.Controller) *repomocks.MockOrderRepository {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().AdminUpdateStatus(gomock.Any(), "sn-100",
					domain.StatusConfirmed, domain.StatusShipped).
					Return(gorm.ErrRecordNotFound)
				return repo
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "非管理员",
			uid:    2002,
			status: domain.StatusShipped,
			mock: func(ctrl *gomock.Controller) *repomocks.MockOrderRepository {
				return repomocks.NewMockOrderRepository(ctrl)
			},
			wantErr: authz.ErrUnauthorized,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAdminService(tc.mock(ctrl), authz.NewWhitelistOf(testAdminUID))
			err := svc.UpdateStatus(context.Background(), tc.uid, "sn-100", tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
