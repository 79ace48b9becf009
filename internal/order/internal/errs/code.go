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

package errs

var (
	SystemError        = ErrorCode{Code: 504001, Msg: "系统错误"}
	CartMismatch       = ErrorCode{Code: 504002, Msg: "购物车条目不匹配"}
	ProductMissing     = ErrorCode{Code: 504003, Msg: "商品不存在"}
	ProductUnavailable = ErrorCode{Code: 504004, Msg: "商品已下架"}
	InsufficientStock  = ErrorCode{Code: 504005, Msg: "商品库存不足"}
	InvalidAmount      = ErrorCode{Code: 504006, Msg: "订单金额非法"}
	OrderNotFound      = ErrorCode{Code: 504007, Msg: "订单不存在"}
	InvalidStatus      = ErrorCode{Code: 504008, Msg: "订单状态非法"}
	AmountMismatch     = ErrorCode{Code: 504009, Msg: "结算金额不一致"}
	AlreadyPaid        = ErrorCode{Code: 504010, Msg: "订单已支付"}
	DuplicateRequest   = ErrorCode{Code: 504011, Msg: "重复请求"}
	Unauthorized       = ErrorCode{Code: 504012, Msg: "没有管理员权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
