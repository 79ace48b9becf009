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

package ioc

import (
	"github.com/ecodeclub/mall/internal/cos"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/pkg/authz"
	"github.com/gotomicro/ego/core/econf"
)

// InitWhitelist 管理员白名单，逗号分隔的 uid 列表
func InitWhitelist() *authz.Whitelist {
	return authz.NewWhitelist(econf.GetString("admin.whitelist"))
}

func InitGatewayConfig() payment.GatewayConfig {
	var cfg payment.GatewayConfig
	err := econf.UnmarshalKey("toss", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitCosConfig() cos.Config {
	var cfg cos.Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
