package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/entities"
	"Nutrition-Catalog/pkg/food"
	"Nutrition-Catalog/pkg/foodkey"
	"Nutrition-Catalog/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recipeDerivation = "Recipe Derived"

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.CreateRecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
		keyGenerator     foodkey.Generator
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository, keyGenerator foodkey.Generator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		keyGenerator:     keyGenerator,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.CreateRecipeResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		id, err := uuid.Parse(ing.ID)
		if err != nil {
			return domain.CreateRecipeResponse{}, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}

	// Resolve every ingredient before any write so a bad id fails the whole
	// request up front instead of tripping a foreign key mid-transaction.
	foods, err := s.foodRepository.GetFoodsByIDs(ctx, ids)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	foodsByID := make(map[uuid.UUID]entities.Food, len(foods))
	for _, f := range foods {
		foodsByID[f.ID] = f
	}

	ingredients := make([]nutrition.Ingredient, 0, len(req.Ingredients))
	items := make([]entities.RecipeFood, 0, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		f, ok := foodsByID[ids[i]]
		if !ok {
			return domain.CreateRecipeResponse{}, domain.ErrIngredientNotFound
		}
		ingredients = append(ingredients, nutrition.Ingredient{
			Protein:       f.Protein,
			Fat:           f.Fat,
			Carbohydrates: f.Carbohydrates,
			Energy:        f.Energy,
			Fiber:         f.Fiber,
			Weight:        ing.Weight,
		})
		items = append(items, entities.RecipeFood{
			ID:         uuid.New(),
			FoodID:     f.ID,
			FoodWeight: nutrition.SafeWeight(ing.Weight),
			Notes:      ing.Notes,
		})
	}

	key, err := s.keyGenerator.Generate(ctx)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	totals := nutrition.Aggregate(ingredients)
	totalWeight := nutrition.TotalWeight(ingredients)
	method := FormatMethod(req.Method)
	derivation := recipeDerivation

	newFood := &entities.Food{
		ID:            uuid.New(),
		PublicFoodKey: key,
		Name:          req.Name,
		Description:   optionalString(req.Description),
		Derivation:    &derivation,
		NutrientValues: entities.NutrientValues{
			Protein:       &totals.Protein,
			Fat:           &totals.Fat,
			Carbohydrates: &totals.Carbohydrates,
			Energy:        &totals.Energy,
			// Fiber-free energy cannot be derived from ingredient totals, so
			// it mirrors the aggregate energy value.
			EnergyWithoutFiber: &totals.Energy,
			Fiber:              &totals.Fiber,
		},
	}

	newRecipe := &entities.Recipe{
		ID:                uuid.New(),
		PublicFoodKey:     key,
		Name:              req.Name,
		Description:       optionalString(req.Description),
		Method:            &method,
		CookingTime:       optionalInt(req.CookingTime),
		Servings:          optionalInt(req.Servings),
		TotalWeightChange: &totalWeight,
	}

	if err := s.recipeRepository.CreateRecipeWithFood(ctx, newFood, newRecipe, items); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	return domain.CreateRecipeResponse{
		Recipe: *newRecipe,
		Food:   *newFood,
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	correspondingFood, err := s.foodRepository.GetFoodByPublicKey(ctx, recipe.PublicFoodKey)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, err
		}
		correspondingFood = nil
	}

	ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if ingredients == nil {
		ingredients = []domain.RecipeIngredient{}
	}

	return domain.RecipeDetailResponse{
		Recipe:            *recipe,
		CorrespondingFood: correspondingFood,
		Ingredients:       ingredients,
	}, nil
}

// FormatMethod turns the ordered step list into the stored representation:
// each step 1-indexed and newline joined, "1. Boil rice\n2. Serve".
func FormatMethod(steps []string) string {
	parts := make([]string, 0, len(steps))
	for i, step := range steps {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, step))
	}
	return strings.Join(parts, "\n")
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalInt(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}
