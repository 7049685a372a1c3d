package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
)

const userAgent = "gw-diet-tracker/1.0 (+https://github.com/sbilibin2017/gw-diet-tracker)"

// FoodLookupHTTPFacade fetches per-barcode nutrition payloads from an
// Open Food Facts compatible REST API.
type FoodLookupHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewFoodLookupHTTPFacade creates a facade for the API rooted at baseURL.
// A zero timeout leaves the client without a deadline.
func NewFoodLookupHTTPFacade(baseURL string, timeout time.Duration) *FoodLookupHTTPFacade {
	return &FoodLookupHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// LookupBarcode returns the raw payload for barcode. A payload with
// status 0 is a valid answer meaning the product is unknown upstream.
func (f *FoodLookupHTTPFacade) LookupBarcode(ctx context.Context, barcode int64) (*models.LookupPayload, error) {
	url := fmt.Sprintf("%s/api/v0/product/%d.json", f.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch product via HTTP", "barcode", barcode, "error", err)
		return nil, fmt.Errorf("failed to call food API: %w", err)
	}
	defer resp.Body.Close()

	// The API answers 404 with a regular status-0 body for unknown products.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Errorw("food API returned unexpected status",
			"barcode", barcode, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("food API error %d", resp.StatusCode)
	}

	var payload models.LookupPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode food API response", "barcode", barcode, "error", err)
		return nil, fmt.Errorf("failed to parse food API JSON: %w", err)
	}

	logger.Log.Infow("food API lookup",
		"barcode", barcode,
		"status", payload.Status,
		"duration", time.Since(start),
	)

	return &payload, nil
}
