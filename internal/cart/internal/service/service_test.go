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

	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository"
	repomocks "github.com/ecodeclub/mall/internal/cart/internal/repository/mocks"
	"github.com/ecodeclub/mall/internal/product"
	productmocks "github.com/ecodeclub/mall/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testUID = int64(1234)

func activeProduct(id, stock int64) product.Product {
	return product.Product{
		ID:       id,
		Name:     "测试商品",
		Price:    19900,
		Stock:    stock,
		Status:   product.StatusActive,
		IsActive: true,
	}
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service)
		quantity int64
		options  map[string]string
		wantQty  int64
		wantErr  error
	}{
		{
			name: "新条目",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByKey(gomock.Any(), testUID, int64(1), "size:L").
					Return(domain.CartItem{}, gorm.ErrRecordNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.CartItem{
					Uid:       testUID,
					ProductID: 1,
					Quantity:  2,
					Options:   map[string]string{"size": "L"},
				}).Return(int64(10), nil)
				return repo, productSvc
			},
			quantity: 2,
			options:  map[string]string{"size": "L"},
			wantQty:  2,
		},
		{
			name: "同键合并数量",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByKey(gomock.Any(), testUID, int64(1), "-").
					Return(domain.CartItem{ID: 7, Uid: testUID, ProductID: 1, Quantity: 2}, nil)
				repo.EXPECT().UpdateQuantity(gomock.Any(), testUID, int64(7), int64(5)).Return(nil)
				return repo, productSvc
			},
			quantity: 3,
			wantQty:  5,
		},
		{
			name: "合并后超出库存",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByKey(gomock.Any(), testUID, int64(1), "-").
					Return(domain.CartItem{ID: 7, Uid: testUID, ProductID: 1, Quantity: 3}, nil)
				return repo, productSvc
			},
			quantity: 3,
			wantErr:  ErrInsufficientStock,
		},
		{
			name: "首次加入即超出库存",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByKey(gomock.Any(), testUID, int64(1), "-").
					Return(domain.CartItem{}, gorm.ErrRecordNotFound)
				return repo, productSvc
			},
			quantity: 6,
			wantErr:  ErrInsufficientStock,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{}, product.ErrProductNotFound)
				return repomocks.NewMockCartItemRepository(ctrl), productSvc
			},
			quantity: 1,
			wantErr:  ErrProductNotFound,
		},
		{
			name: "商品已隐藏",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				p := activeProduct(1, 5)
				p.Status = product.StatusHidden
				p.IsActive = false
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return repomocks.NewMockCartItemRepository(ctrl), productSvc
			},
			quantity: 1,
			wantErr:  ErrProductUnavailable,
		},
		{
			name: "商品无库存",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 0), nil)
				return repomocks.NewMockCartItemRepository(ctrl), productSvc
			},
			quantity: 1,
			wantErr:  ErrProductUnavailable,
		},
		{
			name: "数量非法",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				return repomocks.NewMockCartItemRepository(ctrl), productmocks.NewMockService(ctrl)
			},
			quantity: 0,
			wantErr:  ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, productSvc := tc.mock(ctrl)
			svc := NewService(repo, productSvc)
			item, err := svc.Add(context.Background(), testUID, 1, tc.quantity, tc.options)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantQty, item.Quantity)
		})
	}
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service)
		quantity int64
		wantErr  error
	}{
		{
			name: "按新数量整体校验",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), testUID, int64(7)).
					Return(domain.CartItem{ID: 7, Uid: testUID, ProductID: 1, Quantity: 2}, nil)
				repo.EXPECT().UpdateQuantity(gomock.Any(), testUID, int64(7), int64(4)).Return(nil)
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				return repo, productSvc
			},
			quantity: 4,
		},
		{
			name: "新数量超出库存",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), testUID, int64(7)).
					Return(domain.CartItem{ID: 7, Uid: testUID, ProductID: 1, Quantity: 2}, nil)
				productSvc := productmocks.NewMockService(ctrl)
				productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(activeProduct(1, 5), nil)
				return repo, productSvc
			},
			quantity: 6,
			wantErr:  ErrInsufficientStock,
		},
		{
			name: "条目不存在",
			mock: func(ctrl *gomock.Controller) (repository.CartItemRepository, product.Service) {
				repo := repomocks.NewMockCartItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), testUID, int64(7)).
					Return(domain.CartItem{}, gorm.ErrRecordNotFound)
				return repo, productmocks.NewMockService(ctrl)
			},
			quantity: 1,
			wantErr:  ErrCartItemNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, productSvc := tc.mock(ctrl)
			svc := NewService(repo, productSvc)
			item, err := svc.UpdateQuantity(context.Background(), testUID, 7, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.quantity, item.Quantity)
		})
	}
}

func TestService_Count(t *testing.T) {
	t.Parallel()
	t.Run("未登录返回0", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewService(repomocks.NewMockCartItemRepository(ctrl), productmocks.NewMockService(ctrl))
		assert.Equal(t, int64(0), svc.Count(context.Background(), 0))
	})
	t.Run("查询失败返回0", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockCartItemRepository(ctrl)
		repo.EXPECT().TotalQuantity(gomock.Any(), testUID).Return(int64(0), errors.New("mock db error"))
		svc := NewService(repo, productmocks.NewMockService(ctrl))
		assert.Equal(t, int64(0), svc.Count(context.Background(), testUID))
	})
	t.Run("正常计数", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockCartItemRepository(ctrl)
		repo.EXPECT().TotalQuantity(gomock.Any(), testUID).Return(int64(3), nil)
		svc := NewService(repo, productmocks.NewMockService(ctrl))
		assert.Equal(t, int64(3), svc.Count(context.Background(), testUID))
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockCartItemRepository(ctrl)
	repo.EXPECT().FindByUid(gomock.Any(), testUID).Return([]domain.CartItem{
		{ID: 1, Uid: testUID, ProductID: 11, Quantity: 2},
		{ID: 2, Uid: testUID, ProductID: 12, Quantity: 1},
	}, nil)
	productSvc := productmocks.NewMockService(ctrl)
	// 商品 12 已被删除，只返回 11
	productSvc.EXPECT().FindByIDs(gomock.Any(), []int64{11, 12}).
		Return([]product.Product{activeProduct(11, 5)}, nil)

	svc := NewService(repo, productSvc)
	lines, err := svc.List(context.Background(), testUID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Available)
	assert.Equal(t, "测试商品", lines[0].Name)
	assert.False(t, lines[1].Available)
}
