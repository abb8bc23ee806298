package entities

import (
	"github.com/google/uuid"
)

// NutrientValues holds the per-100g nutrient columns of a food. Values are
// pointers so an unknown nutrient stays NULL instead of reading as zero.
type NutrientValues struct {
	Energy             *float64 `gorm:"type:numeric" json:"energy"`
	EnergyWithoutFiber *float64 `gorm:"type:numeric" json:"energy_without_fiber"`
	Water              *float64 `gorm:"type:numeric" json:"water"`
	Protein            *float64 `gorm:"type:numeric" json:"protein"`
	Fat                *float64 `gorm:"type:numeric" json:"fat"`
	Carbohydrates      *float64 `gorm:"type:numeric" json:"carbohydrates"`
	Fiber              *float64 `gorm:"type:numeric" json:"fiber"`

	Sugars             *float64 `gorm:"type:numeric" json:"sugars"`
	AddedSugars        *float64 `gorm:"type:numeric" json:"added_sugars"`
	SaturatedFat       *float64 `gorm:"type:numeric" json:"saturated_fat"`
	MonounsaturatedFat *float64 `gorm:"type:numeric" json:"monounsaturated_fat"`
	PolyunsaturatedFat *float64 `gorm:"type:numeric" json:"polyunsaturated_fat"`
	TransFat           *float64 `gorm:"type:numeric" json:"trans_fat"`
	Cholesterol        *float64 `gorm:"type:numeric" json:"cholesterol"`

	Sodium     *float64 `gorm:"type:numeric" json:"sodium"`
	Potassium  *float64 `gorm:"type:numeric" json:"potassium"`
	Calcium    *float64 `gorm:"type:numeric" json:"calcium"`
	Iron       *float64 `gorm:"type:numeric" json:"iron"`
	Magnesium  *float64 `gorm:"type:numeric" json:"magnesium"`
	Zinc       *float64 `gorm:"type:numeric" json:"zinc"`
	Phosphorus *float64 `gorm:"type:numeric" json:"phosphorus"`

	VitaminA   *float64 `gorm:"type:numeric" json:"vitamin_a"`
	VitaminC   *float64 `gorm:"type:numeric" json:"vitamin_c"`
	VitaminD   *float64 `gorm:"type:numeric" json:"vitamin_d"`
	VitaminE   *float64 `gorm:"type:numeric" json:"vitamin_e"`
	VitaminB12 *float64 `gorm:"type:numeric;column:vitamin_b12" json:"vitamin_b12"`
	Folate     *float64 `gorm:"type:numeric" json:"folate"`

	Caffeine *float64 `gorm:"type:numeric" json:"caffeine"`
	Alcohol  *float64 `gorm:"type:numeric" json:"alcohol"`
}

type Food struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PublicFoodKey    string     `gorm:"uniqueIndex" json:"public_food_key"`
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	Derivation       *string    `json:"derivation,omitempty"` // "Recipe Derived" for foods materialized from a recipe
	SamplingDetails  *string    `json:"sampling_details,omitempty"`
	ClassificationID *uuid.UUID `json:"classification_id,omitempty"`

	NutrientValues

	IsVegan      *bool `json:"is_vegan,omitempty"`
	IsVegetarian *bool `json:"is_vegetarian,omitempty"`

	Classification *Classification `gorm:"foreignKey:ClassificationID"`
	Timestamp
}
