package domain

import (
	"errors"

	"Nutrition-Catalog/entities"
)

var (
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe    = "recipe created successfully"

	MessageFailedGetRecipeDetail = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient food not found")
)

type (
	RecipeIngredientRequest struct {
		ID     string  `json:"id" validate:"required,uuid"`
		Weight float64 `json:"weight" validate:"min=0"`
		Notes  string  `json:"notes" validate:"omitempty"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Description string                    `json:"description" validate:"omitempty"`
		Method      []string                  `json:"method" validate:"omitempty,dive,required"`
		CookingTime int                       `json:"cooking_time" validate:"omitempty,min=0"`
		Servings    int                       `json:"servings" validate:"omitempty,min=1"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	CreateRecipeResponse struct {
		Recipe entities.Recipe `json:"recipe"`
		Food   entities.Food   `json:"food"`
	}

	RecipeIngredient struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Description   *string  `json:"description"`
		Weight        float64  `json:"weight"`
		Notes         string   `json:"notes,omitempty"`
		Protein       *float64 `json:"protein"`
		Fat           *float64 `json:"fat"`
		Carbohydrates *float64 `json:"carbohydrates"`
		Energy        *float64 `json:"energy"`
		Fiber         *float64 `json:"fiber"`
	}

	RecipeDetailResponse struct {
		entities.Recipe
		CorrespondingFood *entities.Food     `json:"corresponding_food"`
		Ingredients       []RecipeIngredient `json:"ingredients"`
	}
)
