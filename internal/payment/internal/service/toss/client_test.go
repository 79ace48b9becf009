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

package toss

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Confirm(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments/confirm", r.URL.Path)
		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test_sk_mall:"))
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))

		var req ConfirmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ConfirmRequest{
			PaymentKey: "pay_key_001",
			OrderID:    "OR20260901T0001",
			Amount:     43000,
		}, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"paymentKey":"pay_key_001","orderId":"OR20260901T0001","status":"DONE","method":"CARD","totalAmount":43000}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, SecretKey: "test_sk_mall"})
	settlement, err := client.Confirm(context.Background(), ConfirmRequest{
		PaymentKey: "pay_key_001",
		OrderID:    "OR20260901T0001",
		Amount:     43000,
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_key_001", settlement.PaymentKey)
	assert.Equal(t, "OR20260901T0001", settlement.OrderID)
	assert.Equal(t, "DONE", settlement.Status)
	assert.Equal(t, "CARD", settlement.Method)
	assert.Equal(t, int64(43000), settlement.TotalAmount)
	assert.JSONEq(t, `{"paymentKey":"pay_key_001","orderId":"OR20260901T0001","status":"DONE","method":"CARD","totalAmount":43000}`, settlement.Raw)
}

func TestClient_Confirm_ChannelError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND_PAYMENT","message":"존재하지 않는 결제 입니다."}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, SecretKey: "test_sk_mall"})
	_, err := client.Confirm(context.Background(), ConfirmRequest{
		PaymentKey: "pay_key_missing",
		OrderID:    "OR20260901T0002",
		Amount:     1000,
	})
	require.Error(t, err)
	var channelErr *Error
	require.True(t, errors.As(err, &channelErr))
	assert.Equal(t, http.StatusBadRequest, channelErr.StatusCode)
	assert.Equal(t, "NOT_FOUND_PAYMENT", channelErr.Code)
	assert.Equal(t, "존재하지 않는 결제 입니다.", channelErr.Message)
}

func TestClient_Confirm_ErrorBodyNotJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, SecretKey: "test_sk_mall"})
	_, err := client.Confirm(context.Background(), ConfirmRequest{
		PaymentKey: "pay_key_001",
		OrderID:    "OR20260901T0003",
		Amount:     1000,
	})
	require.Error(t, err)
	var channelErr *Error
	require.True(t, errors.As(err, &channelErr))
	assert.Equal(t, http.StatusBadGateway, channelErr.StatusCode)
}
