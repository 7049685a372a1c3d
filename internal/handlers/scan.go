package handlers

//go:generate mockgen -source=scan.go -destination=scan_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/sbilibin2017/gw-diet-tracker/internal/views"
)

// Scanner resolves a barcode into a product.
type Scanner interface {
	ScanBarcode(ctx context.Context, barcode int64) (*models.ScanResult, error)
}

// ScanBarcodeRequest represents the body of a scan
// swagger:model ScanBarcodeRequest
type ScanBarcodeRequest struct {
	// Barcode digits, as a number or a string
	// required: true
	// default: 3017620422003
	Barcode json.Number `json:"barcode" swaggertype:"string"`
}

func (req *ScanBarcodeRequest) decodeForm(form url.Values) error {
	req.Barcode = json.Number(strings.TrimSpace(form.Get("barcode")))
	return nil
}

// NewScanBarcodeHandler returns an HTTP handler that looks up a barcode.
// @Summary Scan a barcode
// @Description Returns the product for a barcode. Unknown barcodes are fetched from the nutrition database, normalized and stored. Status is one of cached, complete, partial, not_found; missing lists nutrients without data.
// @Tags products
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body handlers.ScanBarcodeRequest true "Scan request"
// @Success 200 {object} models.ScanResult "Scan result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid barcode"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Product lookup failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /scan-barcode [post]
// @Security SessionCookie
func NewScanBarcodeHandler(svc Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanBarcodeRequest
		if err := decodeRequest(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		barcode, err := parseBarcode(req.Barcode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid barcode"})
			return
		}

		res, err := svc.ScanBarcode(r.Context(), barcode)
		if err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to scan barcode", "barcode", barcode, "error", err)
			}
			writeJSON(w, status, ErrorResponse{Error: msg})
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// NewScanPageHandler renders the scan form.
func NewScanPageHandler(tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}
		renderPage(w, r, http.StatusOK, views.PageScan, map[string]any{
			"Username": claims.Username,
			"Barcode":  "",
		})
	}
}

// NewScanSubmitHandler handles the scan form and renders the result.
func NewScanSubmitHandler(svc Scanner, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		data := map[string]any{"Username": claims.Username, "Barcode": ""}

		var req ScanBarcodeRequest
		if err := decodeRequest(r, &req); err != nil {
			data["Error"] = "Invalid request body"
			renderPage(w, r, http.StatusBadRequest, views.PageScan, data)
			return
		}
		data["Barcode"] = string(req.Barcode)

		barcode, err := parseBarcode(req.Barcode)
		if err != nil {
			data["Error"] = "Invalid barcode"
			renderPage(w, r, http.StatusBadRequest, views.PageScan, data)
			return
		}

		res, err := svc.ScanBarcode(r.Context(), barcode)
		if err != nil {
			status, msg := serviceError(err)
			if status == http.StatusInternalServerError {
				logger.FromContext(r.Context()).Errorw("failed to scan barcode", "barcode", barcode, "error", err)
			}
			data["Error"] = msg
			renderPage(w, r, status, views.PageScan, data)
			return
		}

		data["Result"] = res
		if res.Status == models.ScanStatusNotFound {
			data["Message"] = "Product not found"
		}
		renderPage(w, r, http.StatusOK, views.PageScan, data)
	}
}
