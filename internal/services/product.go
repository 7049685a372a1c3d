package services

//go:generate mockgen -source=product.go -destination=product_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/sbilibin2017/gw-diet-tracker/internal/normalizer"
)

var (
	// ErrLookupFailed is returned when the nutrition database cannot be
	// reached or answers with an unusable payload.
	ErrLookupFailed = errors.New("product lookup failed")
	// ErrInvalidBarcode is returned for non-positive barcodes.
	ErrInvalidBarcode = errors.New("invalid barcode")
)

// ProductReader reads products from the local store.
type ProductReader interface {
	GetByBarcode(ctx context.Context, barcode int64) (*models.Product, error)
}

// ProductWriter persists normalized products.
type ProductWriter interface {
	Save(ctx context.Context, p *models.Product) error
}

// LookupCache caches raw lookup payloads.
type LookupCache interface {
	GetLookup(ctx context.Context, barcode int64) (*models.LookupPayload, error)
	SetLookup(ctx context.Context, barcode int64, payload *models.LookupPayload) error
}

// FoodLookup fetches a raw payload from the nutrition database.
type FoodLookup interface {
	LookupBarcode(ctx context.Context, barcode int64) (*models.LookupPayload, error)
}

// ProductService resolves scanned barcodes into products.
type ProductService struct {
	reader ProductReader
	writer ProductWriter
	cache  LookupCache // optional
	lookup FoodLookup
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(reader ProductReader, writer ProductWriter, cache LookupCache, lookup FoodLookup) *ProductService {
	return &ProductService{
		reader: reader,
		writer: writer,
		cache:  cache,
		lookup: lookup,
	}
}

// ScanBarcode returns the stored product for barcode, fetching, normalizing
// and storing it on first sight.
func (s *ProductService) ScanBarcode(ctx context.Context, barcode int64) (*models.ScanResult, error) {
	log := logger.FromContext(ctx)

	if barcode <= 0 {
		return nil, ErrInvalidBarcode
	}

	product, err := s.reader.GetByBarcode(ctx, barcode)
	if err != nil {
		log.Errorw("failed to read product", "barcode", barcode, "error", err)
		return nil, err
	}
	if product != nil {
		return &models.ScanResult{
			Status:  models.ScanStatusCached,
			Product: product,
			Missing: normalizer.MissingNutrients(product),
		}, nil
	}

	payload, err := s.fetch(ctx, barcode)
	if err != nil {
		log.Errorw("failed to look up product", "barcode", barcode, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	product, err = normalizer.Normalize(barcode, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if product == nil {
		log.Infow("product not found upstream", "barcode", barcode)
		return &models.ScanResult{Status: models.ScanStatusNotFound, Missing: []string{}}, nil
	}

	if err := s.writer.Save(ctx, product); err != nil {
		log.Errorw("failed to save product", "barcode", barcode, "error", err)
		return nil, err
	}

	missing := normalizer.MissingNutrients(product)
	status := models.ScanStatusComplete
	if len(missing) > 0 {
		status = models.ScanStatusPartial
	}

	log.Infow("product stored", "barcode", barcode, "status", status, "missing", missing)

	return &models.ScanResult{Status: status, Product: product, Missing: missing}, nil
}

// fetch reads the payload from the cache, falling back to the nutrition
// database and caching its answer.
func (s *ProductService) fetch(ctx context.Context, barcode int64) (*models.LookupPayload, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		payload, err := s.cache.GetLookup(ctx, barcode)
		if err == nil {
			return payload, nil
		}
		log.Debugw("lookup cache miss", "barcode", barcode, "error", err)
	}

	payload, err := s.lookup.LookupBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetLookup(ctx, barcode, payload); err != nil {
			log.Warnw("failed to cache lookup payload", "barcode", barcode, "error", err)
		}
	}

	return payload, nil
}
