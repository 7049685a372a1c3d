package models

// VirtualFridgeDB represents a virtual_fridge row. Each user owns exactly one.
type VirtualFridgeDB struct {
	FridgeID int64 `json:"fridge_id" db:"fridge_id"`
	UserID   int64 `json:"user_id" db:"user_id"`
}

// FridgeItemDB represents a fridge row: the quantity of one product in one fridge.
type FridgeItemDB struct {
	ContentID int64   `json:"content_id" db:"content_id"`
	FridgeID  int64   `json:"fridge_id" db:"fridge_id"`
	FoodID    int64   `json:"food_id" db:"food_id"` // References products.barcode
	Quantity  float64 `json:"quantity" db:"quantity"`
}

// FridgeProduct is a product joined with its quantity in a fridge.
// swagger:model FridgeProduct
type FridgeProduct struct {
	Product
	Quantity float64 `json:"quantity" db:"quantity"`
}

// NutrientTotals holds summed per-100g nutrient values.
// swagger:model NutrientTotals
type NutrientTotals struct {
	Calories      float64 `json:"calories"`
	Fats          float64 `json:"fats"`
	SaturatedFats float64 `json:"saturated_fats"`
	Carbohydrates float64 `json:"carbohydrates"`
	Sugars        float64 `json:"sugars"`
	Proteins      float64 `json:"proteins"`
	Salt          float64 `json:"salt"`
	Fiber         float64 `json:"fiber"`
}

// Add accumulates the non-nil nutrients of p.
func (t *NutrientTotals) Add(p *Product) {
	add := func(dst *float64, v *float64) {
		if v != nil {
			*dst += *v
		}
	}
	add(&t.Calories, p.Calories)
	add(&t.Fats, p.Fats)
	add(&t.SaturatedFats, p.SaturatedFats)
	add(&t.Carbohydrates, p.Carbohydrates)
	add(&t.Sugars, p.Sugars)
	add(&t.Proteins, p.Proteins)
	add(&t.Salt, p.Salt)
	add(&t.Fiber, p.Fiber)
}

// MealPlan is a selection of fridge products with their combined nutrients.
// swagger:model MealPlan
type MealPlan struct {
	Items  []FridgeProduct `json:"items"`
	Totals NutrientTotals  `json:"totals"`
}

// Fridge event operations.
const (
	FridgeOperationAdd    = "add"
	FridgeOperationUpdate = "update"
	FridgeOperationDelete = "delete"
)

// FridgeEvent is published whenever a fridge changes.
type FridgeEvent struct {
	EventID   string  `json:"event_id"`  // Unique event identifier
	Timestamp int64   `json:"timestamp"` // Unix seconds
	UserID    int64   `json:"user_id"`
	Barcode   int64   `json:"barcode"`
	Quantity  float64 `json:"quantity"`  // Quantity after the change, 0 for deletes
	Operation string  `json:"operation"` // add, update or delete
}
