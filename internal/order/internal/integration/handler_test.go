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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/cart"
	cartmocks "github.com/ecodeclub/mall/internal/cart/mocks"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/errs"
	"github.com/ecodeclub/mall/internal/order/internal/integration/startup"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/order/internal/web"
	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/ecodeclub/mall/internal/product"
	productmocks "github.com/ecodeclub/mall/internal/product/mocks"
	"github.com/ecodeclub/mall/internal/test"
	testioc "github.com/ecodeclub/mall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = 234

// 库存扣减直接命中 products 表，这里建一张最小结构的表来验证
type testProduct struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Name  string
	Price int64
	Stock int64
	Ctime int64
	Utime int64
}

func (testProduct) TableName() string {
	return "products"
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.OrderDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())

	cartSvc := cartmocks.NewMockService(ctrl)
	cartSvc.EXPECT().FindByIDs(gomock.Any(), int64(testUID), gomock.Any()).
		DoAndReturn(func(_ context.Context, uid int64, ids []int64) ([]cart.CartItem, error) {
			items := map[int64]cart.CartItem{
				1: {ID: 1, Uid: testUID, ProductID: 100, Quantity: 2, Options: map[string]string{"size": "L"}},
				2: {ID: 2, Uid: testUID, ProductID: 101, Quantity: 1},
				3: {ID: 3, Uid: testUID, ProductID: 102, Quantity: 2},
			}
			res := make([]cart.CartItem, 0, len(ids))
			for _, id := range ids {
				if it, ok := items[id]; ok {
					res = append(res, it)
				}
			}
			return res, nil
		}).AnyTimes()
	cartSvc.EXPECT().RemoveBatch(gomock.Any(), int64(testUID), gomock.Any()).
		Return(nil).AnyTimes()

	productSvc := productmocks.NewMockService(ctrl)
	productSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []int64) ([]product.Product, error) {
			products := map[int64]product.Product{
				100: {ID: 100, Name: "商品100", Price: 20000, Stock: 10, Status: product.StatusActive, IsActive: true},
				101: {ID: 101, Name: "商品101", Price: 5000, Stock: 10, Status: product.StatusActive, IsActive: true},
				102: {ID: 102, Name: "商品102", Price: 8000, Stock: 10, Status: product.StatusActive, IsActive: true},
			}
			res := make([]product.Product, 0, len(ids))
			for _, id := range ids {
				if p, ok := products[id]; ok {
					res = append(res, p)
				}
			}
			return res, nil
		}).AnyTimes()

	module, err := startup.InitModule(cartSvc, productSvc, authz.NewWhitelist(""))
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = testioc.InitDB()
	err = dao.InitTables(s.db)
	require.NoError(s.T(), err)
	err = s.db.AutoMigrate(&testProduct{})
	require.NoError(s.T(), err)
	s.dao = dao.NewOrderGORMDAO(s.db)
}

func (s *HandlerTestSuite) SetupTest() {
	now := time.Now().UnixMilli()
	err := s.db.Create([]testProduct{
		{Id: 100, Name: "商品100", Price: 20000, Stock: 10, Ctime: now, Utime: now},
		{Id: 101, Name: "商品101", Price: 5000, Stock: 10, Ctime: now, Utime: now},
		{Id: 102, Name: "商品102", Price: 8000, Stock: 1, Ctime: now, Utime: now},
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestCreateOrder() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:   fmt.Sprintf("create-ok-%d", time.Now().UnixNano()),
			CartItemIDs: []int64{1, 2},
			Address: web.ShippingAddress{
				Recipient:  "张三",
				Phone:      "13800000000",
				PostalCode: "100000",
				Address1:   "某某街道1号",
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	// 2*20000 + 1*5000 = 45000，不满免邮门槛，运费 3000
	assert.Equal(t, int64(48000), resp.Data.TotalAmount)
	require.NotEmpty(t, resp.Data.OrderSN)

	o, err := s.dao.FindBySN(context.Background(), testUID, resp.Data.OrderSN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending.ToUint8(), o.Status)
	assert.Equal(t, int64(45000), o.Subtotal)
	assert.Equal(t, int64(3000), o.ShippingFee)
	items, err := s.dao.FindItemsByOrderID(context.Background(), o.Id)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// 库存在同一个事务里扣掉
	var p testProduct
	require.NoError(t, s.db.Where("id = ?", 100).First(&p).Error)
	assert.Equal(t, int64(8), p.Stock)
	require.NoError(t, s.db.Where("id = ?", 101).First(&p).Error)
	assert.Equal(t, int64(9), p.Stock)
}

func (s *HandlerTestSuite) TestCreateOrderInsufficientStock() {
	t := s.T()
	// 商品102 快照库存充足但数据库只剩 1 件，条件扣减兜底
	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:   fmt.Sprintf("create-stock-%d", time.Now().UnixNano()),
			CartItemIDs: []int64{3},
			Address:     web.ShippingAddress{Recipient: "张三", Phone: "13800000000", Address1: "某某街道1号"},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.InsufficientStock.Code,
		Msg:  errs.InsufficientStock.Msg,
	}, recorder.MustScan())

	// 整个事务回滚，没有残留的订单
	var count int64
	require.NoError(t, s.db.Table("orders").Count(&count).Error)
	assert.Equal(t, int64(0), count)
	var p testProduct
	require.NoError(t, s.db.Where("id = ?", 102).First(&p).Error)
	assert.Equal(t, int64(1), p.Stock)
}

func (s *HandlerTestSuite) TestCreateOrderDuplicateRequest() {
	t := s.T()
	requestID := fmt.Sprintf("create-dup-%d", time.Now().UnixNano())
	body := web.CreateOrderReq{
		RequestID:   requestID,
		CartItemIDs: []int64{2},
		Address:     web.ShippingAddress{Recipient: "张三", Phone: "13800000000", Address1: "某某街道1号"},
	}
	req, err := http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/order/create", iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 500, recorder2.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}, recorder2.MustScan())
}

func (s *HandlerTestSuite) TestCancelOrder() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:   fmt.Sprintf("create-cancel-%d", time.Now().UnixNano()),
			CartItemIDs: []int64{2},
			Address:     web.ShippingAddress{Recipient: "张三", Phone: "13800000000", Address1: "某某街道1号"},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	sn := recorder.MustScan().Data.OrderSN

	req, err = http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.OrderSNReq{SN: sn}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)

	o, err := s.dao.FindBySN(context.Background(), testUID, sn)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled.ToUint8(), o.Status)
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:   fmt.Sprintf("create-detail-%d", time.Now().UnixNano()),
			CartItemIDs: []int64{1},
			Address:     web.ShippingAddress{Recipient: "张三", Phone: "13800000000", Address1: "某某街道1号"},
			OrderNote:   "放门口",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	sn := recorder.MustScan().Data.OrderSN

	req, err = http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.OrderSNReq{SN: sn}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)
	detail := recorder2.MustScan().Data
	assert.Equal(t, sn, detail.SN)
	assert.Equal(t, int64(43000), detail.TotalAmount)
	assert.Equal(t, "放门口", detail.OrderNote)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, web.OrderItem{
		ProductID: 100,
		Name:      "商品100",
		Price:     20000,
		Quantity:  2,
		Options:   map[string]string{"size": "L"},
	}, detail.Items[0])
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
