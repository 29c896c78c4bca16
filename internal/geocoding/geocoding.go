package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/falaoperador/admin-api/internal/config"
)

// Coordenadas é o par latitude/longitude resolvido de um endereço.
type Coordenadas struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolve um endereço postal em coordenadas. Implementações
// fazem uma única tentativa; qualquer falha degrada para "sem
// coordenadas" no chamador.
type Geocoder interface {
	Resolve(ctx context.Context, rua, numero, cep string) (*Coordenadas, error)
}

// Client consulta a API HTTP de geocodificação configurada.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client.
func NewClient(cfg config.GeocodingConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve consulta o serviço externo uma única vez.
func (c *Client) Resolve(ctx context.Context, rua, numero, cep string) (*Coordenadas, error) {
	endereco := fmt.Sprintf("%s, %s, %s, Brasil", rua, numero, cep)

	q := url.Values{}
	q.Set("address", endereco)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocoding: failed to parse response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, fmt.Errorf("geocoding: no results (status %s)", body.Status)
	}

	loc := body.Results[0].Geometry.Location
	return &Coordenadas{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
