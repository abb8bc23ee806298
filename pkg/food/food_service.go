package food

import (
	"context"
	"errors"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/entities"
	"Nutrition-Catalog/pkg/foodkey"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RecipeFinder resolves the recipe sharing a food's public key. Declared
	// here so pkg/food does not depend on pkg/recipe.
	RecipeFinder interface {
		GetRecipeByPublicKey(ctx context.Context, key string) (*entities.Recipe, error)
	}

	FoodService interface {
		GetFoods(ctx context.Context) ([]domain.FoodSummary, error)
		GetFoodDetail(ctx context.Context, id string) (domain.FoodDetailResponse, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest) (entities.Food, error)
	}

	foodService struct {
		foodRepository FoodRepository
		recipes        RecipeFinder
		keyGenerator   foodkey.Generator
	}
)

func NewFoodService(foodRepository FoodRepository, recipes RecipeFinder, keyGenerator foodkey.Generator) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		recipes:        recipes,
		keyGenerator:   keyGenerator,
	}
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodSummary, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, domain.ErrNoFoods
	}

	summaries := make([]domain.FoodSummary, 0, len(foods))
	for _, f := range foods {
		summaries = append(summaries, domain.FoodSummary{
			ID:            f.ID.String(),
			PublicFoodKey: f.PublicFoodKey,
			Name:          f.Name,
			Description:   f.Description,
			Protein:       f.Protein,
			Fat:           f.Fat,
			Carbohydrates: f.Carbohydrates,
			Energy:        f.Energy,
			Fiber:         f.Fiber,
		})
	}
	return summaries, nil
}

func (s *foodService) GetFoodDetail(ctx context.Context, id string) (domain.FoodDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodDetailResponse{}, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodDetailResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodDetailResponse{}, err
	}

	// A missing counterpart recipe is the normal case for directly created
	// foods, not an error.
	correspondingRecipe, err := s.recipes.GetRecipeByPublicKey(ctx, food.PublicFoodKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodDetailResponse{}, err
		}
		correspondingRecipe = nil
	}

	usedIn, err := s.foodRepository.GetRecipesUsingFood(ctx, id)
	if err != nil {
		return domain.FoodDetailResponse{}, err
	}
	if usedIn == nil {
		usedIn = []entities.Recipe{}
	}

	return domain.FoodDetailResponse{
		Food:                *food,
		CorrespondingRecipe: correspondingRecipe,
		UsedInRecipes:       usedIn,
	}, nil
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest) (entities.Food, error) {
	key, err := s.keyGenerator.Generate(ctx)
	if err != nil {
		return entities.Food{}, err
	}

	protein := req.Protein
	fat := req.Fat
	carbohydrates := req.Carbohydrates
	energy := req.Energy
	fiber := req.Fiber

	food := &entities.Food{
		ID:            uuid.New(),
		PublicFoodKey: key,
		Name:          req.Name,
		Description:   optionalString(req.Description),
		NutrientValues: entities.NutrientValues{
			Protein:       &protein,
			Fat:           &fat,
			Carbohydrates: &carbohydrates,
			Energy:        &energy,
			Fiber:         &fiber,
		},
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return entities.Food{}, err
	}
	return *food, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
