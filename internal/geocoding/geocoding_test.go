package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/falaoperador/admin-api/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.GeocodingConfig{
		APIKey:  "chave-de-teste",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestClient_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "chave-de-teste", r.URL.Query().Get("key"))
		require.Contains(t, r.URL.Query().Get("address"), "Avenida Paulista")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": -23.5614, "lng": -46.6559}}}]
		}`))
	}))
	defer srv.Close()

	coords, err := newTestClient(srv.URL).Resolve(context.Background(), "Avenida Paulista", "1000", "01310-100")
	require.NoError(t, err)
	require.InDelta(t, -23.5614, coords.Latitude, 0.0001)
	require.InDelta(t, -46.6559, coords.Longitude, 0.0001)
}

func TestClient_ResolveSemResultados(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Resolve(context.Background(), "Rua Inexistente", "0", "00000-000")
	require.Error(t, err)
}

func TestClient_ResolveErroHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Resolve(context.Background(), "Avenida Paulista", "1000", "01310-100")
	require.Error(t, err)
}
