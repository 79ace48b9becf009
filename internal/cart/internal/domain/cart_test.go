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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItem_OptionsKey(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		options map[string]string
		want    string
	}{
		{
			name: "无选项用哨兵",
			want: "-",
		},
		{
			name:    "空 map 与 nil 等价",
			options: map[string]string{},
			want:    "-",
		},
		{
			name:    "单个选项",
			options: map[string]string{"size": "L"},
			want:    "size:L",
		},
		{
			name:    "多个选项按键排序",
			options: map[string]string{"size": "L", "color": "black"},
			want:    "color:black;size:L",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			item := CartItem{Options: tc.options}
			assert.Equal(t, tc.want, item.OptionsKey())
		})
	}
}

func TestCartItem_OptionsKey_OrderIndependent(t *testing.T) {
	t.Parallel()
	a := CartItem{Options: map[string]string{"color": "navy", "size": "M", "fit": "slim"}}
	b := CartItem{Options: map[string]string{"size": "M", "fit": "slim", "color": "navy"}}
	assert.Equal(t, a.OptionsKey(), b.OptionsKey())
}
