package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-diet-tracker/internal/services"
)

var errInvalidBarcode = errors.New("barcode must be a positive integer")

// ErrorResponse is the body of every failed API call
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the body of API calls that only acknowledge a change
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// formDecoder is implemented by request bodies that can also be posted by
// an HTML form.
type formDecoder interface {
	decodeForm(form url.Values) error
}

// isForm reports whether the request body is form encoded.
func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// decodeRequest fills dst from a JSON or form encoded body.
func decodeRequest(r *http.Request, dst formDecoder) error {
	if isForm(r) {
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return err
		}
		return dst.decodeForm(r.PostForm)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers API clients with a JSON error. Form posts are sent back
// to the page they came from with the message in the query string.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, back string) {
	if isForm(r) && back != "" {
		http.Redirect(w, r, back+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// serviceError maps service errors to a status code and a client-safe message.
func serviceError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, services.ErrItemNotInFridge):
		return http.StatusNotFound, "Product is not in the fridge"
	case errors.Is(err, services.ErrFridgeNotFound):
		return http.StatusNotFound, "Fridge not found"
	case errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest, "Quantity must be positive"
	case errors.Is(err, services.ErrInvalidPlanCount):
		return http.StatusBadRequest, "Count must not be negative"
	case errors.Is(err, services.ErrInvalidBarcode):
		return http.StatusBadRequest, "Invalid barcode"
	case errors.Is(err, services.ErrLookupFailed):
		return http.StatusBadGateway, "Product lookup failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// parseBarcode accepts a JSON number or a numeric string.
func parseBarcode(n json.Number) (int64, error) {
	barcode, err := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
	if err != nil || barcode <= 0 {
		return 0, errInvalidBarcode
	}
	return barcode, nil
}

// parseOptionalFloat returns nil for an empty form value.
func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
