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

// ProductUpdate 管理端的部分更新。nil 表示该字段不更新
type ProductUpdate struct {
	ID                 int64
	Name               *string
	Description        *string
	Category           *string
	Price              *int64
	OriginalPrice      *int64
	DiscountPercentage *int64
	Stock              *int64
	Status             *Status
	ImageURL           *string
	Images             []string
	Options            map[string][]string
	IsPromotional      *bool
	PromotionStart     *int64
	PromotionEnd       *int64
}
