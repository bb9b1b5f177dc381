package paystack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/internal/gateway/paystack"
	"github.com/bizflow/settlement/pkg/config"
)

func TestClient_Initialize(t *testing.T) {
	t.Parallel()

	orderID := uuid.Must(uuid.NewV4())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req map[string]any

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.EqualValues(t, 3320, req["amount"])
		require.Equal(t, "KES", req["currency"])
		require.Equal(t, orderID.String(), req["reference"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"reference":         orderID.String(),
			},
		})
	}))
	t.Cleanup(server.Close)

	c := paystack.NewClient(config.Paystack{BaseURL: server.URL, SecretKey: "sk_test"})

	result, err := c.Initialize(context.Background(), gateway.InitializeRequest{
		OrderID:       orderID,
		Amount:        decimal.RequireFromString("33.20"),
		Currency:      "KES",
		CustomerEmail: "guest@example.com",
		CallbackURL:   "https://shop.example.com/api/shop/callback",
	})
	require.NoError(t, err)
	require.Equal(t, "https://checkout.paystack.com/abc123", result.RedirectURL)
	require.Equal(t, orderID.String(), result.Reference)
}

func TestClient_Initialize_Declined(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid key",
		})
	}))
	t.Cleanup(server.Close)

	c := paystack.NewClient(config.Paystack{BaseURL: server.URL, SecretKey: "bad"})

	_, err := c.Initialize(context.Background(), gateway.InitializeRequest{
		OrderID: uuid.Must(uuid.NewV4()),
		Amount:  decimal.New(10, 0),
	})
	require.ErrorIs(t, err, entity.ErrGateway)
	require.Contains(t, err.Error(), "Invalid key")
}

func TestClient_Verify(t *testing.T) {
	t.Parallel()

	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		require.Equal(t, "/transaction/verify/ref-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"status": "success"},
		})
	}))
	t.Cleanup(server.Close)

	c := paystack.NewClient(config.Paystack{BaseURL: server.URL, SecretKey: "sk_test"})

	require.NoError(t, c.Verify(context.Background(), "ref-1"))
	require.Equal(t, 1, calls)
}

func TestClient_Verify_NotSettled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"status": "abandoned"},
		})
	}))
	t.Cleanup(server.Close)

	c := paystack.NewClient(config.Paystack{BaseURL: server.URL, SecretKey: "sk_test"})

	err := c.Verify(context.Background(), "ref-2")
	require.ErrorIs(t, err, entity.ErrGateway)
}
