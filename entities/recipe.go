package entities

import (
	"github.com/google/uuid"
)

// Recipe shares its PublicFoodKey with exactly one Food row, the food the
// recipe produces once prepared.
type Recipe struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PublicFoodKey     string    `gorm:"uniqueIndex" json:"public_food_key"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Method            *string   `gorm:"type:text" json:"method"`
	CookingTime       *int      `json:"cooking_time"`
	Servings          *int      `json:"servings"`
	TotalWeightChange *float64  `gorm:"type:numeric" json:"total_weight_change"`

	Timestamp
}

type RecipeFood struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID          uuid.UUID  `json:"recipe_id"`
	FoodID            uuid.UUID  `json:"food_id"`
	FoodWeight        float64    `gorm:"type:numeric" json:"food_weight"` // grams
	Notes             string     `json:"notes,omitempty"`
	RetentionFactorID *uuid.UUID `json:"retention_factor_id,omitempty"`

	Recipe          *Recipe          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Food            *Food            `gorm:"foreignKey:FoodID"`
	RetentionFactor *RetentionFactor `gorm:"foreignKey:RetentionFactorID"`
}
