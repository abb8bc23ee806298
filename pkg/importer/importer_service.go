package importer

import (
	"context"
	"strconv"

	"Nutrition-Catalog/entities"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	// Sources names the three workbook paths the pipeline ingests.
	Sources struct {
		FoodDetails string
		Recipes     string
		Nutrients   string
	}

	Stats struct {
		Classifications int
		Foods           int
		Recipes         int
		RecipeFoods     int
		NutrientUpdates int
		SkippedRows     int
	}

	// ImportState holds the natural-key caches built once at pipeline start
	// and passed through every stage.
	ImportState struct {
		Foods           map[string]uuid.UUID
		Recipes         map[string]uuid.UUID
		Classifications map[string]uuid.UUID
	}

	ImporterService interface {
		Run(ctx context.Context, src Sources) (Stats, error)
	}

	importerService struct {
		repo ImporterRepository
		log  *logrus.Logger
	}
)

func NewImporterService(repo ImporterRepository, log *logrus.Logger) ImporterService {
	return &importerService{repo: repo, log: log}
}

// Run executes the one-shot import. Row-level problems are logged and
// skipped; a load or storage failure aborts the run.
func (s *importerService) Run(ctx context.Context, src Sources) (Stats, error) {
	var stats Stats

	foodRows, err := LoadFoodDetails(src.FoodDetails)
	if err != nil {
		return stats, err
	}
	recipeRows, err := LoadRecipeRows(src.Recipes)
	if err != nil {
		return stats, err
	}
	nutrientRows, err := LoadNutrientRows(src.Nutrients)
	if err != nil {
		return stats, err
	}

	state, err := s.preloadState(ctx)
	if err != nil {
		return stats, err
	}
	s.log.WithFields(logrus.Fields{
		"known_foods":   len(state.Foods),
		"known_recipes": len(state.Recipes),
	}).Info("import state preloaded")

	if err := s.importClassifications(ctx, foodRows, state, &stats); err != nil {
		return stats, err
	}
	if err := s.importFoods(ctx, foodRows, state, &stats); err != nil {
		return stats, err
	}
	if err := s.importRecipes(ctx, recipeRows, state, &stats); err != nil {
		return stats, err
	}
	if err := s.importRecipeFoods(ctx, recipeRows, state, &stats); err != nil {
		return stats, err
	}
	if err := s.importNutrients(ctx, nutrientRows, state, &stats); err != nil {
		return stats, err
	}

	return stats, nil
}

func (s *importerService) preloadState(ctx context.Context) (*ImportState, error) {
	foods, err := s.repo.PreloadFoodKeys(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.repo.PreloadRecipeKeys(ctx)
	if err != nil {
		return nil, err
	}
	classifications, err := s.repo.PreloadClassificationCodes(ctx)
	if err != nil {
		return nil, err
	}
	return &ImportState{
		Foods:           foods,
		Recipes:         recipes,
		Classifications: classifications,
	}, nil
}

func (s *importerService) importClassifications(ctx context.Context, rows []FoodDetailRow, state *ImportState, stats *Stats) error {
	for _, row := range rows {
		if row.Classification == "" {
			continue
		}
		if _, ok := state.Classifications[row.Classification]; ok {
			continue
		}

		classification := &entities.Classification{
			ID:   uuid.New(),
			Code: row.Classification,
			Name: row.ClassificationName,
		}
		if err := s.repo.CreateClassification(ctx, classification); err != nil {
			return err
		}
		state.Classifications[row.Classification] = classification.ID
		stats.Classifications++
	}
	s.log.WithField("created", stats.Classifications).Info("classifications imported")
	return nil
}

func (s *importerService) importFoods(ctx context.Context, rows []FoodDetailRow, state *ImportState, stats *Stats) error {
	for _, row := range rows {
		if row.PublicFoodKey == "" {
			s.log.WithField("name", row.Name).Warn("skipping food row without public food key")
			stats.SkippedRows++
			continue
		}
		if _, ok := state.Foods[row.PublicFoodKey]; ok {
			continue
		}

		food := &entities.Food{
			ID:              uuid.New(),
			PublicFoodKey:   row.PublicFoodKey,
			Name:            row.Name,
			Description:     optional(row.Description),
			Derivation:      optional(row.Derivation),
			SamplingDetails: optional(row.SamplingDetails),
		}
		if id, ok := state.Classifications[row.Classification]; ok {
			classificationID := id
			food.ClassificationID = &classificationID
		}

		if err := s.repo.CreateFood(ctx, food); err != nil {
			return err
		}
		state.Foods[row.PublicFoodKey] = food.ID
		stats.Foods++
	}
	s.log.WithField("created", stats.Foods).Info("foods imported")
	return nil
}

func (s *importerService) importRecipes(ctx context.Context, rows []RecipeRow, state *ImportState, stats *Stats) error {
	for _, row := range rows {
		if row.PublicFoodKey == "" {
			stats.SkippedRows++
			continue
		}
		if _, ok := state.Recipes[row.PublicFoodKey]; ok {
			continue
		}

		// Bare row: method, timings and weights are populated elsewhere.
		recipe := &entities.Recipe{
			ID:            uuid.New(),
			PublicFoodKey: row.PublicFoodKey,
			Name:          row.Name,
		}
		if err := s.repo.CreateRecipe(ctx, recipe); err != nil {
			return err
		}
		state.Recipes[row.PublicFoodKey] = recipe.ID
		stats.Recipes++
	}
	s.log.WithField("created", stats.Recipes).Info("recipes imported")
	return nil
}

func (s *importerService) importRecipeFoods(ctx context.Context, rows []RecipeRow, state *ImportState, stats *Stats) error {
	for _, row := range rows {
		// rows without a recipe key were already counted by the recipe stage
		if row.PublicFoodKey == "" {
			continue
		}

		recipeID, recipeOK := state.Recipes[row.PublicFoodKey]
		foodID, foodOK := state.Foods[row.IngredientPublicFoodKey]
		weight, weightErr := strconv.ParseFloat(row.IngredientWeight, 64)

		if !recipeOK || !foodOK || row.IngredientWeight == "" || weightErr != nil {
			s.log.WithFields(logrus.Fields{
				"recipe_key":     row.PublicFoodKey,
				"ingredient_key": row.IngredientPublicFoodKey,
				"weight":         row.IngredientWeight,
			}).Warn("skipping recipe ingredient row with missing or invalid data")
			stats.SkippedRows++
			continue
		}

		exists, err := s.repo.RecipeFoodExists(ctx, recipeID, foodID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		item := &entities.RecipeFood{
			ID:         uuid.New(),
			RecipeID:   recipeID,
			FoodID:     foodID,
			FoodWeight: weight,
		}
		if err := s.repo.CreateRecipeFood(ctx, item); err != nil {
			return err
		}
		stats.RecipeFoods++
	}
	s.log.WithField("created", stats.RecipeFoods).Info("recipe ingredients imported")
	return nil
}

func (s *importerService) importNutrients(ctx context.Context, rows []NutrientRow, state *ImportState, stats *Stats) error {
	for _, row := range rows {
		foodID, ok := state.Foods[row.PublicFoodKey]
		if !ok {
			s.log.WithField("key", row.PublicFoodKey).Warn("skipping nutrient row for unknown food")
			stats.SkippedRows++
			continue
		}

		var values entities.NutrientValues
		for column, assign := range nutrientColumns {
			assign(&values, parseDecimal(row.Values[column]))
		}

		if err := s.repo.UpdateFoodNutrients(ctx, foodID, values); err != nil {
			return err
		}
		stats.NutrientUpdates++
	}
	s.log.WithField("updated", stats.NutrientUpdates).Info("nutrient values imported")
	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
