package nutrition

import (
	"math"
)

// Ingredient is one weighted recipe ingredient with its per-100g nutrient
// values. Nil values mean the nutrient is unknown for that food.
type Ingredient struct {
	Protein       *float64
	Fat           *float64
	Carbohydrates *float64
	Energy        *float64
	Fiber         *float64
	Weight        float64 // grams
}

type Totals struct {
	Protein       float64
	Fat           float64
	Carbohydrates float64
	Energy        float64
	Fiber         float64
}

// Aggregate sums value * weight/100 per nutrient across the ingredient list.
// Unknown nutrient values and malformed weights count as zero here; the
// import pipeline keeps unknowns NULL instead (see pkg/importer parseDecimal).
func Aggregate(ingredients []Ingredient) Totals {
	var totals Totals
	for _, ing := range ingredients {
		ratio := SafeWeight(ing.Weight) / 100
		totals.Protein += orZero(ing.Protein) * ratio
		totals.Fat += orZero(ing.Fat) * ratio
		totals.Carbohydrates += orZero(ing.Carbohydrates) * ratio
		totals.Energy += orZero(ing.Energy) * ratio
		totals.Fiber += orZero(ing.Fiber) * ratio
	}
	return totals
}

// TotalWeight sums the coerced ingredient weights in grams.
func TotalWeight(ingredients []Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		total += SafeWeight(ing.Weight)
	}
	return total
}

// SafeWeight coerces a weight to a usable non-negative number.
func SafeWeight(weight float64) float64 {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return 0
	}
	return weight
}

func orZero(value *float64) float64 {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return 0
	}
	return *value
}
