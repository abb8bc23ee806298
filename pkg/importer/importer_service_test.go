package importer

import (
	"context"
	"io"
	"testing"

	"Nutrition-Catalog/entities"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeFoodKey struct {
	RecipeID uuid.UUID
	FoodID   uuid.UUID
}

// mockImporterRepository is an in-memory stand-in keyed the same way the
// real tables are.
type mockImporterRepository struct {
	foods           map[string]uuid.UUID
	recipes         map[string]uuid.UUID
	classifications map[string]uuid.UUID
	recipeFoods     map[recipeFoodKey]*entities.RecipeFood
	nutrients       map[uuid.UUID]entities.NutrientValues

	createdFoods   []*entities.Food
	createdRecipes []*entities.Recipe
}

func newMockImporterRepository() *mockImporterRepository {
	return &mockImporterRepository{
		foods:           make(map[string]uuid.UUID),
		recipes:         make(map[string]uuid.UUID),
		classifications: make(map[string]uuid.UUID),
		recipeFoods:     make(map[recipeFoodKey]*entities.RecipeFood),
		nutrients:       make(map[uuid.UUID]entities.NutrientValues),
	}
}

func copyKeys(src map[string]uuid.UUID) map[string]uuid.UUID {
	out := make(map[string]uuid.UUID, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (m *mockImporterRepository) PreloadFoodKeys(ctx context.Context) (map[string]uuid.UUID, error) {
	return copyKeys(m.foods), nil
}

func (m *mockImporterRepository) PreloadRecipeKeys(ctx context.Context) (map[string]uuid.UUID, error) {
	return copyKeys(m.recipes), nil
}

func (m *mockImporterRepository) PreloadClassificationCodes(ctx context.Context) (map[string]uuid.UUID, error) {
	return copyKeys(m.classifications), nil
}

func (m *mockImporterRepository) CreateClassification(ctx context.Context, classification *entities.Classification) error {
	if _, ok := m.classifications[classification.Code]; ok {
		return nil
	}
	m.classifications[classification.Code] = classification.ID
	return nil
}

func (m *mockImporterRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	if _, ok := m.foods[food.PublicFoodKey]; ok {
		return nil
	}
	m.foods[food.PublicFoodKey] = food.ID
	m.createdFoods = append(m.createdFoods, food)
	return nil
}

func (m *mockImporterRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if _, ok := m.recipes[recipe.PublicFoodKey]; ok {
		return nil
	}
	m.recipes[recipe.PublicFoodKey] = recipe.ID
	m.createdRecipes = append(m.createdRecipes, recipe)
	return nil
}

func (m *mockImporterRepository) RecipeFoodExists(ctx context.Context, recipeID, foodID uuid.UUID) (bool, error) {
	_, ok := m.recipeFoods[recipeFoodKey{RecipeID: recipeID, FoodID: foodID}]
	return ok, nil
}

func (m *mockImporterRepository) CreateRecipeFood(ctx context.Context, item *entities.RecipeFood) error {
	m.recipeFoods[recipeFoodKey{RecipeID: item.RecipeID, FoodID: item.FoodID}] = item
	return nil
}

func (m *mockImporterRepository) UpdateFoodNutrients(ctx context.Context, foodID uuid.UUID, values entities.NutrientValues) error {
	m.nutrients[foodID] = values
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testSources(t *testing.T) Sources {
	t.Helper()

	foods := writeWorkbook(t, sheet{name: "Foods", rows: [][]string{
		{"Public Food Key", "Classification", "Classification Name", "Food Name", "Food Description", "Derivation", "Sampling Details"},
		{"F002258", "13101", "Rice and rice dishes", "Rice, white, boiled", "Boiled white rice", "Analysed", ""},
		{"F000099", "13101", "Rice and rice dishes", "Rice, brown, boiled", "", "", ""},
		{"R100001", "", "", "Plain rice bowl", "", "Recipe Derived", ""},
		{"", "", "", "Row without a key", "", "", ""},
	}})

	recipes := writeWorkbook(t, sheet{name: "Recipes", rows: [][]string{
		{"Public Food Key", "Food Name", "Ingredient Public Food Key", "Ingredient Name", "Ingredient Weight (g)"},
		{"R100001", "Plain rice bowl", "F002258", "Rice, white, boiled", "200"},
		{"R100001", "Plain rice bowl", "F000099", "Rice, brown, boiled", "50"},
		{"R100001", "Plain rice bowl", "F999999", "Unknown ingredient", "10"},
		{"R100001", "Plain rice bowl", "F002258", "Rice, white, boiled", "not a number"},
	}})

	nutrients := nutrientWorkbook(t,
		[]string{"Public Food Key", "Protein \n(g)", "Energy with dietary fibre, equated \n(kJ)"},
		[]string{"F002258", "2.7", "540"},
		[]string{"F000099", "", "520"},
		[]string{"F999999", "1.0", "1.0"},
	)

	return Sources{FoodDetails: foods, Recipes: recipes, Nutrients: nutrients}
}

func TestRunImportsAllStages(t *testing.T) {
	repo := newMockImporterRepository()
	service := NewImporterService(repo, quietLogger())

	stats, err := service.Run(context.Background(), testSources(t))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Classifications)
	assert.Equal(t, 3, stats.Foods)
	assert.Equal(t, 1, stats.Recipes)
	assert.Equal(t, 2, stats.RecipeFoods)
	assert.Equal(t, 2, stats.NutrientUpdates)
	// one food row without a key, one unknown ingredient, one bad weight,
	// one nutrient row for an unknown food
	assert.Equal(t, 4, stats.SkippedRows)

	// foods link to their classification
	var rice *entities.Food
	for _, f := range repo.createdFoods {
		if f.PublicFoodKey == "F002258" {
			rice = f
		}
	}
	require.NotNil(t, rice)
	require.NotNil(t, rice.ClassificationID)
	assert.Equal(t, repo.classifications["13101"], *rice.ClassificationID)

	// nutrient values land on the right food, unknowns stay NULL
	values, ok := repo.nutrients[repo.foods["F000099"]]
	require.True(t, ok)
	assert.Nil(t, values.Protein)
	require.NotNil(t, values.Energy)
	assert.InDelta(t, 520.0, *values.Energy, 1e-9)
}

func TestRunIsIdempotent(t *testing.T) {
	repo := newMockImporterRepository()
	service := NewImporterService(repo, quietLogger())
	src := testSources(t)

	_, err := service.Run(context.Background(), src)
	require.NoError(t, err)

	stats, err := service.Run(context.Background(), src)
	require.NoError(t, err)

	// second run finds everything preloaded and creates nothing new
	assert.Zero(t, stats.Classifications)
	assert.Zero(t, stats.Foods)
	assert.Zero(t, stats.Recipes)
	assert.Zero(t, stats.RecipeFoods)
	// nutrient updates are overwrites, they run every time
	assert.Equal(t, 2, stats.NutrientUpdates)

	assert.Len(t, repo.createdFoods, 3)
	assert.Len(t, repo.createdRecipes, 1)
	assert.Len(t, repo.recipeFoods, 2)
}

func TestRunCountsKeylessRecipeRowOnce(t *testing.T) {
	src := testSources(t)
	src.FoodDetails = writeWorkbook(t, sheet{name: "Foods", rows: [][]string{
		{"Public Food Key", "Classification", "Classification Name", "Food Name", "Food Description", "Derivation", "Sampling Details"},
		{"F002258", "13101", "Rice and rice dishes", "Rice, white, boiled", "", "", ""},
	}})
	src.Recipes = writeWorkbook(t, sheet{name: "Recipes", rows: [][]string{
		{"Public Food Key", "Food Name", "Ingredient Public Food Key", "Ingredient Name", "Ingredient Weight (g)"},
		{"", "Row without a recipe key", "F002258", "Rice, white, boiled", "200"},
	}})
	src.Nutrients = nutrientWorkbook(t,
		[]string{"Public Food Key", "Protein \n(g)"},
		[]string{"F002258", "2.7"},
	)

	repo := newMockImporterRepository()
	service := NewImporterService(repo, quietLogger())

	stats, err := service.Run(context.Background(), src)
	require.NoError(t, err)

	// the keyless row is skipped by the recipe stage only, not re-counted
	// by the ingredient stage
	assert.Equal(t, 1, stats.SkippedRows)
	assert.Zero(t, stats.Recipes)
	assert.Zero(t, stats.RecipeFoods)
}

func TestRunAbortsOnUnknownNutrientColumn(t *testing.T) {
	src := testSources(t)
	src.Nutrients = nutrientWorkbook(t,
		[]string{"Public Food Key", "Mystery Nutrient (g)"},
		[]string{"F002258", "1.0"},
	)

	repo := newMockImporterRepository()
	service := NewImporterService(repo, quietLogger())

	_, err := service.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized nutrient column")
	assert.Empty(t, repo.createdFoods)
}
