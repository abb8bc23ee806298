package entities

import (
	"github.com/google/uuid"
)

// RetentionFactor models nutrient retention after cooking. It is referenced
// by RecipeFood rows but not applied by any aggregation path.
type RetentionFactor struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Description string    `json:"description"`

	VitaminA   *float64 `gorm:"type:numeric" json:"vitamin_a"`
	VitaminC   *float64 `gorm:"type:numeric" json:"vitamin_c"`
	VitaminD   *float64 `gorm:"type:numeric" json:"vitamin_d"`
	VitaminE   *float64 `gorm:"type:numeric" json:"vitamin_e"`
	VitaminB12 *float64 `gorm:"type:numeric;column:vitamin_b12" json:"vitamin_b12"`
	Calcium    *float64 `gorm:"type:numeric" json:"calcium"`
	Iron       *float64 `gorm:"type:numeric" json:"iron"`
}
