package models

// Product is a normalized product row. Nutrient values are per 100g and
// nil when the upstream source has no data for them.
// swagger:model Product
type Product struct {
	Barcode       int64    `json:"barcode" db:"barcode"`
	Name          string   `json:"name" db:"name"`
	PortionAmount float64  `json:"portion_amount" db:"portion_amount"`
	PortionUnit   string   `json:"portion_unit" db:"portion_unit"`
	Calories      *float64 `json:"calories" db:"calories"`
	Fats          *float64 `json:"fats" db:"fats"`
	SaturatedFats *float64 `json:"saturated_fats" db:"saturated_fats"`
	Carbohydrates *float64 `json:"carbohydrates" db:"carbohydrates"`
	Sugars        *float64 `json:"sugars" db:"sugars"`
	Proteins      *float64 `json:"proteins" db:"proteins"`
	Salt          *float64 `json:"salt" db:"salt"`
	Fiber         *float64 `json:"fiber" db:"fiber"`
}

// Nutrient field names, in the order they are reported.
const (
	NutrientCalories      = "calories"
	NutrientFats          = "fats"
	NutrientSaturatedFats = "saturated_fats"
	NutrientCarbohydrates = "carbohydrates"
	NutrientSugars        = "sugars"
	NutrientProteins      = "proteins"
	NutrientSalt          = "salt"
	NutrientFiber         = "fiber"
)

// NutrientNames lists every nutrient field of Product.
var NutrientNames = []string{
	NutrientCalories,
	NutrientFats,
	NutrientSaturatedFats,
	NutrientCarbohydrates,
	NutrientSugars,
	NutrientProteins,
	NutrientSalt,
	NutrientFiber,
}

// Nutrients returns the product nutrients keyed by field name.
func (p *Product) Nutrients() map[string]*float64 {
	return map[string]*float64{
		NutrientCalories:      p.Calories,
		NutrientFats:          p.Fats,
		NutrientSaturatedFats: p.SaturatedFats,
		NutrientCarbohydrates: p.Carbohydrates,
		NutrientSugars:        p.Sugars,
		NutrientProteins:      p.Proteins,
		NutrientSalt:          p.Salt,
		NutrientFiber:         p.Fiber,
	}
}

// SetNutrient assigns a nutrient by field name. Unknown names are ignored.
func (p *Product) SetNutrient(name string, value *float64) {
	switch name {
	case NutrientCalories:
		p.Calories = value
	case NutrientFats:
		p.Fats = value
	case NutrientSaturatedFats:
		p.SaturatedFats = value
	case NutrientCarbohydrates:
		p.Carbohydrates = value
	case NutrientSugars:
		p.Sugars = value
	case NutrientProteins:
		p.Proteins = value
	case NutrientSalt:
		p.Salt = value
	case NutrientFiber:
		p.Fiber = value
	}
}
