package importer

import (
	"context"

	"Nutrition-Catalog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ImporterRepository interface {
		PreloadFoodKeys(ctx context.Context) (map[string]uuid.UUID, error)
		PreloadRecipeKeys(ctx context.Context) (map[string]uuid.UUID, error)
		PreloadClassificationCodes(ctx context.Context) (map[string]uuid.UUID, error)
		CreateClassification(ctx context.Context, classification *entities.Classification) error
		CreateFood(ctx context.Context, food *entities.Food) error
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		RecipeFoodExists(ctx context.Context, recipeID, foodID uuid.UUID) (bool, error)
		CreateRecipeFood(ctx context.Context, item *entities.RecipeFood) error
		UpdateFoodNutrients(ctx context.Context, foodID uuid.UUID, values entities.NutrientValues) error
	}

	importerRepository struct {
		db *gorm.DB
	}

	keyRow struct {
		ID            uuid.UUID
		PublicFoodKey string
	}

	codeRow struct {
		ID   uuid.UUID
		Code string
	}
)

func NewImporterRepository(db *gorm.DB) ImporterRepository {
	return &importerRepository{db: db}
}

func (r *importerRepository) PreloadFoodKeys(ctx context.Context) (map[string]uuid.UUID, error) {
	var rows []keyRow
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Select("id", "public_food_key").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	keys := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		keys[row.PublicFoodKey] = row.ID
	}
	return keys, nil
}

func (r *importerRepository) PreloadRecipeKeys(ctx context.Context) (map[string]uuid.UUID, error) {
	var rows []keyRow
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select("id", "public_food_key").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	keys := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		keys[row.PublicFoodKey] = row.ID
	}
	return keys, nil
}

func (r *importerRepository) PreloadClassificationCodes(ctx context.Context) (map[string]uuid.UUID, error) {
	var rows []codeRow
	if err := r.db.WithContext(ctx).Model(&entities.Classification{}).
		Select("id", "code").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	codes := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		codes[row.Code] = row.ID
	}
	return codes, nil
}

func (r *importerRepository) CreateClassification(ctx context.Context, classification *entities.Classification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(classification).Error
}

func (r *importerRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(food).Error
}

func (r *importerRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(recipe).Error
}

func (r *importerRepository) RecipeFoodExists(ctx context.Context, recipeID, foodID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeFood{}).
		Where("recipe_id = ? AND food_id = ?", recipeID, foodID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *importerRepository) CreateRecipeFood(ctx context.Context, item *entities.RecipeFood) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
}

// UpdateFoodNutrients writes every nutrient column, NULLs included, so a
// re-import replaces stale values instead of merging around them.
func (r *importerRepository) UpdateFoodNutrients(ctx context.Context, foodID uuid.UUID, values entities.NutrientValues) error {
	return r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", foodID).
		Select(nutrientColumnNames).
		Updates(entities.Food{NutrientValues: values}).Error
}
