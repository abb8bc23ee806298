package domain

import (
	"errors"

	"Nutrition-Catalog/entities"
)

var (
	MessageSuccessGetFoods      = "foods retrieved successfully"
	MessageSuccessGetFoodDetail = "food detail retrieved successfully"
	MessageSuccessCreateFood    = "food created successfully"

	MessageFailedGetFoods      = "failed to retrieve foods"
	MessageFailedGetFoodDetail = "failed to retrieve food detail"
	MessageFailedCreateFood    = "failed to create food"

	ErrFoodNotFound = errors.New("food not found")
	ErrNoFoods      = errors.New("no foods found")
)

type (
	// CreateFoodRequest holds the manual creation form. Nutrient fields left
	// out default to zero on the stored row.
	CreateFoodRequest struct {
		Name          string  `json:"name" validate:"required"`
		Description   string  `json:"description" validate:"omitempty"`
		Protein       float64 `json:"protein" validate:"omitempty,min=0"`
		Fat           float64 `json:"fat" validate:"omitempty,min=0"`
		Carbohydrates float64 `json:"carbohydrates" validate:"omitempty,min=0"`
		Energy        float64 `json:"energy" validate:"omitempty,min=0"`
		Fiber         float64 `json:"fiber" validate:"omitempty,min=0"`
	}

	FoodSummary struct {
		ID            string   `json:"id"`
		PublicFoodKey string   `json:"public_food_key"`
		Name          string   `json:"name"`
		Description   *string  `json:"description"`
		Protein       *float64 `json:"protein"`
		Fat           *float64 `json:"fat"`
		Carbohydrates *float64 `json:"carbohydrates"`
		Energy        *float64 `json:"energy"`
		Fiber         *float64 `json:"fiber"`
	}

	// FoodDetailResponse combines a food with its derived recipe (same public
	// food key, absent for directly created foods) and the recipes that use
	// it as an ingredient.
	FoodDetailResponse struct {
		entities.Food
		CorrespondingRecipe *entities.Recipe  `json:"corresponding_recipe"`
		UsedInRecipes       []entities.Recipe `json:"used_in_recipes"`
	}
)
