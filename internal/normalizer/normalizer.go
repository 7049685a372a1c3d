// Package normalizer turns open food database payloads into product rows.
package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/sbilibin2017/gw-diet-tracker/internal/quantity"
)

// ErrNormalizationFailed is returned when a found payload cannot be turned
// into a product. Nothing derived from such a payload may be stored.
var ErrNormalizationFailed = errors.New("product normalization failed")

// Upstream per-100g keys for each product nutrient.
var nutrientKeys = []struct {
	field string
	key   string
}{
	{models.NutrientCalories, "energy-kcal_100g"},
	{models.NutrientFats, "fat_100g"},
	{models.NutrientSaturatedFats, "saturated-fat_100g"},
	{models.NutrientCarbohydrates, "carbohydrates_100g"},
	{models.NutrientSugars, "sugars_100g"},
	{models.NutrientProteins, "proteins_100g"},
	{models.NutrientSalt, "salt_100g"},
	{models.NutrientFiber, "fiber_100g"},
}

// Normalize builds the product row for barcode from payload.
// It returns nil, nil when the payload says the product is unknown.
func Normalize(barcode int64, payload *models.LookupPayload) (*models.Product, error) {
	if payload == nil {
		return nil, fail(barcode, "payload", errors.New("empty payload"))
	}
	if payload.Status != models.LookupFound {
		return nil, nil
	}

	src := payload.Product
	if src == nil {
		return nil, fail(barcode, "product", errors.New("missing product object"))
	}

	// Upstream often sends real products without a name.
	name := strings.TrimSpace(src.ProductName)

	if strings.TrimSpace(src.Quantity) == "" {
		return nil, fail(barcode, "quantity", errors.New("missing quantity"))
	}
	amount, unit, err := quantity.Parse(src.Quantity)
	if err != nil {
		return nil, fail(barcode, "quantity", err)
	}

	p := &models.Product{
		Barcode:       barcode,
		Name:          name,
		PortionAmount: amount,
		PortionUnit:   unit,
	}
	for _, nk := range nutrientKeys {
		p.SetNutrient(nk.field, nutrient(src, nk.key))
	}
	return p, nil
}

// nutrient reads key from the measured nutriments, falling back to the
// estimated ones when the measured object lacks it.
func nutrient(src *models.LookupProduct, key string) *float64 {
	if v, ok := src.Nutriments.Value(key); ok {
		return &v
	}
	if v, ok := src.NutrimentsEstimated.Value(key); ok {
		return &v
	}
	return nil
}

func fail(barcode int64, field string, cause error) error {
	logger.Log.Errorw("failed to normalize product",
		"barcode", barcode,
		"field", field,
		"error", cause,
	)
	return fmt.Errorf("%w: %s: %v", ErrNormalizationFailed, field, cause)
}

// MissingNutrients returns the names of the nutrients p has no data for,
// in the order of models.NutrientNames.
func MissingNutrients(p *models.Product) []string {
	missing := []string{}
	if p == nil {
		return missing
	}
	values := p.Nutrients()
	for _, name := range models.NutrientNames {
		if values[name] == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
