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

func TestCalculateShippingFee(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{name: "零元", subtotal: 0, want: 3000},
		{name: "未到门槛", subtotal: 20000, want: 3000},
		{name: "门槛下界", subtotal: 49999, want: 3000},
		{name: "恰好门槛", subtotal: 50000, want: 0},
		{name: "超过门槛", subtotal: 100000, want: 0},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CalculateShippingFee(tc.subtotal))
		})
	}
}

func TestStatus_Cancellable(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusConfirmed.Cancellable())
	assert.False(t, StatusShipped.Cancellable())
	assert.False(t, StatusDelivered.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
}
