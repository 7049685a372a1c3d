package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LookupFound is the payload status of a product known upstream.
const LookupFound = 1

// LookupPayload is the raw per-barcode answer of the open food database.
type LookupPayload struct {
	Code          string         `json:"code"`
	Status        int            `json:"status"`
	StatusVerbose string         `json:"status_verbose,omitempty"`
	Product       *LookupProduct `json:"product,omitempty"`
}

// LookupProduct is the subset of the upstream product object we read.
type LookupProduct struct {
	ProductName         string     `json:"product_name"`
	Quantity            string     `json:"quantity"`
	Nutriments          Nutriments `json:"nutriments"`
	NutrimentsEstimated Nutriments `json:"nutriments_estimated"`
}

// Nutriments maps upstream nutrient keys (e.g. "fat_100g") to values.
// Upstream sends numbers, numeric strings or garbage.
type Nutriments map[string]any

// Value returns the numeric value stored under key.
// The second result is false when the key is absent or not numeric.
func (n Nutriments) Value(key string) (float64, bool) {
	raw, ok := n[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// ScanStatus tells how a scan was resolved.
type ScanStatus string

const (
	ScanStatusCached   ScanStatus = "cached"    // Served from the product store
	ScanStatusComplete ScanStatus = "complete"  // Fetched upstream, every nutrient present
	ScanStatusPartial  ScanStatus = "partial"   // Fetched upstream, some nutrients missing
	ScanStatusNotFound ScanStatus = "not_found" // Unknown upstream
)

// ScanResult is the outcome of a barcode scan.
// swagger:model ScanResult
type ScanResult struct {
	Status  ScanStatus `json:"status"`
	Product *Product   `json:"product,omitempty"`
	Missing []string   `json:"missing"` // Names of nutrients without data
}
