package food

import (
	"context"

	"Nutrition-Catalog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoods(ctx context.Context) ([]entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Food, error)
		GetFoodByPublicKey(ctx context.Context, key string) (*entities.Food, error)
		PublicKeyExists(ctx context.Context, key string) (bool, error)
		GetRecipesUsingFood(ctx context.Context, foodID string) ([]entities.Recipe, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoods(ctx context.Context) ([]entities.Food, error) {
	var foods []entities.Food
	if err := r.db.WithContext(ctx).Order("name asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Food, error) {
	var foods []entities.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodByPublicKey(ctx context.Context, key string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("public_food_key = ?", key).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) PublicKeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("public_food_key = ?", key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *foodRepository) GetRecipesUsingFood(ctx context.Context, foodID string) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_foods ON recipes.id = recipe_foods.recipe_id").
		Where("recipe_foods.food_id = ?", foodID).
		Order("recipes.name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
