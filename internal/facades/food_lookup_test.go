package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodAPI(t *testing.T, handler http.HandlerFunc) *FoodLookupHTTPFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFoodLookupHTTPFacade(srv.URL+"/", time.Second)
}

func TestLookupBarcode_Found(t *testing.T) {
	facade := newFoodAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/3017620422003.json", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"3017620422003","status":1,"product":{"product_name":"Nutella","quantity":"400 g","nutriments":{"fat_100g":30.9},"nutriments_estimated":{"fiber_100g":"3.4"}}}`))
	})

	payload, err := facade.LookupBarcode(context.Background(), 3017620422003)
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Status)
	require.NotNil(t, payload.Product)
	assert.Equal(t, "Nutella", payload.Product.ProductName)
	assert.Equal(t, "400 g", payload.Product.Quantity)

	fat, ok := payload.Product.Nutriments.Value("fat_100g")
	assert.True(t, ok)
	assert.Equal(t, 30.9, fat)

	fiber, ok := payload.Product.NutrimentsEstimated.Value("fiber_100g")
	assert.True(t, ok)
	assert.Equal(t, 3.4, fiber)
}

func TestLookupBarcode_NotFound(t *testing.T) {
	facade := newFoodAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"1","status":0,"status_verbose":"product not found"}`))
	})

	payload, err := facade.LookupBarcode(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, payload.Status)
	assert.Nil(t, payload.Product)
}

func TestLookupBarcode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(1500 * time.Millisecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := newFoodAPI(t, tt.handler)
			payload, err := facade.LookupBarcode(context.Background(), 42)
			assert.Error(t, err)
			assert.Nil(t, payload)
		})
	}
}

func TestLookupBarcode_ContextCanceled(t *testing.T) {
	facade := newFoodAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := facade.LookupBarcode(ctx, 42)
	assert.ErrorIs(t, err, context.Canceled)
}
