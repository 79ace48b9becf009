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

package web

type AddCartItemReq struct {
	ProductID int64             `json:"productId"`
	Quantity  int64             `json:"quantity"`
	Options   map[string]string `json:"options"`
}

type UpdateQuantityReq struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type RemoveCartItemsReq struct {
	IDs []int64 `json:"ids"`
}

type CartItem struct {
	ID        int64             `json:"id"`
	ProductID int64             `json:"productId"`
	Quantity  int64             `json:"quantity"`
	Options   map[string]string `json:"options,omitempty"`
}

type CartLine struct {
	CartItem
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Stock     int64  `json:"stock"`
	Available bool   `json:"available"`
}

type CartListResp struct {
	Lines []CartLine `json:"lines"`
}

type CountResp struct {
	Count int64 `json:"count"`
}
