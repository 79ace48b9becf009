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
	"testing"

	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	cachemocks "github.com/ecodeclub/mall/internal/product/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/mall/internal/product/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdminUID = int64(1001)

func TestAdminService_Create(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ProductRepository
		uid     int64
		product domain.Product
		wantID  int64
		wantErr error
	}{
		{
			name: "创建成功并补默认状态",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Product{
					Name:     "夹克",
					Price:    19900,
					Stock:    10,
					Status:   domain.StatusActive,
					IsActive: true,
					ImageURL: "https://cdn.example.com/a.jpg",
					Images:   []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
				}).Return(int64(1), nil)
				return repo
			},
			uid: testAdminUID,
			product: domain.Product{
				Name:   "夹克",
				Price:  19900,
				Stock:  10,
				Images: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			},
			wantID: 1,
		},
		{
			name: "隐藏状态创建即下架",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Product{
					Name:     "夹克",
					Price:    19900,
					Status:   domain.StatusHidden,
					IsActive: false,
					Images:   []string{},
				}).Return(int64(2), nil)
				return repo
			},
			uid: testAdminUID,
			product: domain.Product{
				Name:   "夹克",
				Price:  19900,
				Status: domain.StatusHidden,
			},
			wantID: 2,
		},
		{
			name: "非管理员",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     2002,
			product: domain.Product{Name: "夹克", Price: 19900},
			wantErr: authz.ErrUnauthorized,
		},
		{
			name: "缺少名称",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     testAdminUID,
			product: domain.Product{Price: 19900},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "原价低于现价",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     testAdminUID,
			product: domain.Product{Name: "夹克", Price: 19900, OriginalPrice: 9900},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "折扣超过100",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     testAdminUID,
			product: domain.Product{Name: "夹克", Price: 19900, DiscountPercentage: 120},
			wantErr: ErrInvalidProduct,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAdminService(tc.mock(ctrl), nopCache(ctrl), authz.NewWhitelistOf(testAdminUID))
			id, err := svc.Create(context.Background(), tc.uid, tc.product)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestAdminService_Update(t *testing.T) {
	t.Parallel()
	name := "新名字"
	price := int64(29900)
	negative := int64(-1)
	hidden := domain.StatusHidden

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ProductRepository
		uid     int64
		update  domain.ProductUpdate
		wantErr error
	}{
		{
			name: "部分更新",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(1), map[string]any{
					"name":  "新名字",
					"price": int64(29900),
				}).Return(nil)
				return repo
			},
			uid:    testAdminUID,
			update: domain.ProductUpdate{ID: 1, Name: &name, Price: &price},
		},
		{
			name: "更新状态联动上架标志",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(1), map[string]any{
					"status":    uint8(3),
					"is_active": false,
				}).Return(nil)
				return repo
			},
			uid:    testAdminUID,
			update: domain.ProductUpdate{ID: 1, Status: &hidden},
		},
		{
			name: "没有任何字段直接返回",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:    testAdminUID,
			update: domain.ProductUpdate{ID: 1},
		},
		{
			name: "缺少商品ID",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     testAdminUID,
			update:  domain.ProductUpdate{Name: &name},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "价格为负",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     testAdminUID,
			update:  domain.ProductUpdate{ID: 1, Price: &negative},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "非管理员",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     2002,
			update:  domain.ProductUpdate{ID: 1, Name: &name},
			wantErr: authz.ErrUnauthorized,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAdminService(tc.mock(ctrl), nopCache(ctrl), authz.NewWhitelistOf(testAdminUID))
			err := svc.Update(context.Background(), tc.uid, tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdminService_Delete(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ProductRepository
		uid     int64
		hard    bool
		wantErr error
	}{
		{
			name: "硬删除",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)
				return repo
			},
			uid:  testAdminUID,
			hard: true,
		},
		{
			name: "软删除改为隐藏",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), int64(1), map[string]any{
					"status":    uint8(3),
					"is_active": false,
				}).Return(nil)
				return repo
			},
			uid: testAdminUID,
		},
		{
			name: "非管理员",
			mock: func(ctrl *gomock.Controller) repository.ProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			uid:     2002,
			wantErr: authz.ErrUnauthorized,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAdminService(tc.mock(ctrl), nopCache(ctrl), authz.NewWhitelistOf(testAdminUID))
			err := svc.Delete(context.Background(), tc.uid, 1, tc.hard)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdminService_EvictDetailCache(t *testing.T) {
	t.Parallel()
	name := "新名字"
	testCases := []struct {
		name string
		op   func(t *testing.T, svc AdminService)
	}{
		{
			name: "更新后失效详情缓存",
			op: func(t *testing.T, svc AdminService) {
				err := svc.Update(context.Background(), testAdminUID,
					domain.ProductUpdate{ID: 7, Name: &name})
				require.NoError(t, err)
			},
		},
		{
			name: "软删除后失效详情缓存",
			op: func(t *testing.T, svc AdminService) {
				err := svc.Delete(context.Background(), testAdminUID, 7, false)
				require.NoError(t, err)
			},
		},
		{
			name: "硬删除后失效详情缓存",
			op: func(t *testing.T, svc AdminService) {
				err := svc.Delete(context.Background(), testAdminUID, 7, true)
				require.NoError(t, err)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockProductRepository(ctrl)
			repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
				Return(nil).AnyTimes()
			repo.EXPECT().DeleteByID(gomock.Any(), int64(7)).
				Return(nil).AnyTimes()
			c := cachemocks.NewMockProductCache(ctrl)
			// 清除失败只记日志，不向上返回
			c.EXPECT().DelDetail(gomock.Any(), int64(7)).
				Return(errors.New("mock redis error"))
			svc := NewAdminService(repo, c, authz.NewWhitelistOf(testAdminUID))
			tc.op(t, svc)
		})
	}
}
