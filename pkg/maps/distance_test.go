package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"truck-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(utils.MapsConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestClient_Estimate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/distancematrix/json", r.URL.Path)
		assert.Equal(t, "Chicago", r.URL.Query().Get("origins"))
		assert.Equal(t, "Denver", r.URL.Query().Get("destinations"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{"status": "OK", "distance": {"value": 12345}}]}]
		}`))
	})

	km, err := client.Estimate(context.Background(), "Chicago", "Denver")
	require.NoError(t, err)
	// 12345 m -> 12.35 km, half-up
	assert.True(t, km.Equal(decimal.RequireFromString("12.35")), "km = %s", km)
}

func TestClient_Estimate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": `))
			},
		},
		{
			name: "response status not OK",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "REQUEST_DENIED", "rows": []}`))
			},
		},
		{
			name: "no elements",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OK", "rows": []}`))
			},
		},
		{
			name: "element not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{
					"status": "OK",
					"rows": [{"elements": [{"status": "NOT_FOUND"}]}]
				}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.Estimate(context.Background(), "Chicago", "Denver")
			assert.Error(t, err)
		})
	}
}

func TestClient_Estimate_ServerUnreachable(t *testing.T) {
	client := NewClient(utils.MapsConfig{
		APIKey:         "test-key",
		BaseURL:        "http://127.0.0.1:1",
		TimeoutSeconds: 1,
	}, zap.NewNop())

	_, err := client.Estimate(context.Background(), "Chicago", "Denver")
	assert.Error(t, err)
}
