package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"truck-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var oneThousand = decimal.NewFromInt(1000)

// Client queries a Distance Matrix style API for road distance between two
// locations. Any transport, parse, or non-OK status failure is returned as
// an error; the fallback policy belongs to the caller.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.MapsConfig, log *zap.Logger) *Client {
	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("client", "maps")),
	}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate returns the distance in kilometers, rounded half-up to 2 decimals.
func (c *Client) Estimate(ctx context.Context, origin, destination string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/distancematrix/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build distance request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("distance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("distance request: unexpected status %d", resp.StatusCode)
	}

	var matrix matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return decimal.Zero, fmt.Errorf("decode distance response: %w", err)
	}

	if matrix.Status != "OK" {
		return decimal.Zero, fmt.Errorf("distance response status %q", matrix.Status)
	}

	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return decimal.Zero, fmt.Errorf("distance response has no elements")
	}

	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return decimal.Zero, fmt.Errorf("distance element status %q", element.Status)
	}

	// Convert meters to kilometers, half-up to 2 decimals
	km := decimal.NewFromInt(element.Distance.Value).DivRound(oneThousand, 2)

	c.log.Debug("Distance resolved",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("distance_km", km.String()),
	)

	return km, nil
}
