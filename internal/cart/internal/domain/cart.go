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

package domain

import (
	"sort"
	"strings"
)

// EmptyOptionsKey 无选项条目的哨兵值，保证同一商品的"无选项"条目
// 在唯一索引下最多存在一条
const EmptyOptionsKey = "-"

type CartItem struct {
	ID        int64
	Uid       int64
	ProductID int64
	Quantity  int64
	// Options 购买选项，如颜色、尺码。nil 和空 map 等价
	Options map[string]string
	Ctime   int64
	Utime   int64
}

// OptionsKey 选项的规范化形式：按键排序的 k:v 以分号拼接。
// 同一组选项不论传入顺序如何都会得到同一个键
func (c CartItem) OptionsKey() string {
	if len(c.Options) == 0 {
		return EmptyOptionsKey
	}
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+c.Options[k])
	}
	return strings.Join(pairs, ";")
}

// Line 购物车页的一行：条目叠加实时商品信息。
// 商品被删除或下架时 Available 为 false，前端据此置灰
type Line struct {
	Item      CartItem
	Name      string
	Price     int64
	ImageURL  string
	Stock     int64
	Available bool
}
