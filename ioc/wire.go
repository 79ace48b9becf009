//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/cos"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitWhitelist,
		InitGatewayConfig,
		InitCosConfig,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl", "Svc"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl", "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "Svc"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		cos.InitHandler,
		initCloseExpiredOrdersJob,
		initCronJobs,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
