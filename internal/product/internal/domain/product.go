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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusActive     Status = 1 // 在售
	StatusOutOfStock Status = 2 // 缺货
	StatusHidden     Status = 3 // 隐藏
)

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string

	// 价格一律使用货币最小单位
	Price              int64
	OriginalPrice      int64
	DiscountPercentage int64

	Stock    int64
	Status   Status
	IsActive bool

	// ImageURL 是旧版单图字段，以 Images 为准，二者由管理端写入时归一
	ImageURL string
	Images   []string

	// Options 商品可选规格，如 颜色 => [黑, 白]
	Options map[string][]string

	ViewCnt int64

	IsPromotional  bool
	PromotionStart int64
	PromotionEnd   int64

	Ctime int64
	Utime int64
}

// Purchasable 商品当前是否可购买。隐藏状态必然不可购买
func (p Product) Purchasable() bool {
	return p.IsActive && p.Status != StatusHidden
}

type CategoryCount struct {
	Category string
	Count    int64
}
