package search

import (
	"context"

	"Nutrition-Catalog/entities"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		SearchRecipes(ctx context.Context, query string, threshold float64) ([]entities.Recipe, error)
		SearchFoods(ctx context.Context, query string, threshold float64) ([]entities.Food, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// Trigram matching needs the pg_trgm extension, created in
// cmd/database/migrate alongside uuid-ossp.
func (r *searchRepository) SearchRecipes(ctx context.Context, query string, threshold float64) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	sql := `
		SELECT recipes.*, similarity(lower(name), lower(?)) AS sim
		FROM recipes
		WHERE similarity(lower(name), lower(?)) > ?
		ORDER BY sim DESC
	`
	if err := r.db.WithContext(ctx).Raw(sql, query, query, threshold).Scan(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *searchRepository) SearchFoods(ctx context.Context, query string, threshold float64) ([]entities.Food, error) {
	var foods []entities.Food
	sql := `
		SELECT foods.*, similarity(lower(name), lower(?)) AS sim
		FROM foods
		WHERE similarity(lower(name), lower(?)) > ?
		ORDER BY sim DESC
	`
	if err := r.db.WithContext(ctx).Raw(sql, query, query, threshold).Scan(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
