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

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitelist_Authorize(t *testing.T) {
	testCases := []struct {
		name    string
		uidList string
		uid     int64
		wantErr error
	}{
		{
			name:    "在白名单内",
			uidList: "123,456",
			uid:     456,
			wantErr: nil,
		},
		{
			name:    "不在白名单内",
			uidList: "123,456",
			uid:     789,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "空白名单",
			uidList: "",
			uid:     123,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "忽略非法条目和空白",
			uidList: " 123 , abc, ,456",
			uid:     123,
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWhitelist(tc.uidList)
			assert.ErrorIs(t, w.Authorize(tc.uid), tc.wantErr)
		})
	}
}
