package recipe

import (
	"context"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeByPublicKey(ctx context.Context, key string) (*entities.Recipe, error)
		PublicKeyExists(ctx context.Context, key string) (bool, error)
		GetRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error)
		CreateRecipeWithFood(ctx context.Context, food *entities.Food, recipe *entities.Recipe, items []entities.RecipeFood) error
	}

	recipeRepository struct {
		db *gorm.DB
	}

	ingredientRow struct {
		ID            uuid.UUID
		Name          string
		Description   *string
		Weight        float64
		Notes         string
		Protein       *float64
		Fat           *float64
		Carbohydrates *float64
		Energy        *float64
		Fiber         *float64
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByPublicKey(ctx context.Context, key string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("public_food_key = ?", key).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) PublicKeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("public_food_key = ?", key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error) {
	var rows []ingredientRow
	if err := r.db.WithContext(ctx).
		Table("recipe_foods").
		Select("foods.id, foods.name, foods.description, recipe_foods.food_weight AS weight, recipe_foods.notes, foods.protein, foods.fat, foods.carbohydrates, foods.energy, foods.fiber").
		Joins("JOIN foods ON foods.id = recipe_foods.food_id").
		Where("recipe_foods.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	ingredients := make([]domain.RecipeIngredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, domain.RecipeIngredient{
			ID:            row.ID.String(),
			Name:          row.Name,
			Description:   row.Description,
			Weight:        row.Weight,
			Notes:         row.Notes,
			Protein:       row.Protein,
			Fat:           row.Fat,
			Carbohydrates: row.Carbohydrates,
			Energy:        row.Energy,
			Fiber:         row.Fiber,
		})
	}
	return ingredients, nil
}

// CreateRecipeWithFood materializes the derived food, the recipe, and the
// ingredient associations as one atomic write. Any failure rolls the whole
// operation back so no orphaned food row survives a partial create.
func (r *recipeRepository) CreateRecipeWithFood(ctx context.Context, food *entities.Food, recipe *entities.Recipe, items []entities.RecipeFood) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
		}
		return tx.Create(&items).Error
	})
}
