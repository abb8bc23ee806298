package food

import (
	"context"
	"errors"
	"testing"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/entities"
	"Nutrition-Catalog/pkg/foodkey"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockFoodRepository struct {
	foods       map[uuid.UUID]entities.Food
	usedIn      []entities.Recipe
	listErr     error
	createErr   error
	createdFood *entities.Food
}

func newMockFoodRepository(foods ...entities.Food) *mockFoodRepository {
	m := &mockFoodRepository{foods: make(map[uuid.UUID]entities.Food)}
	for _, f := range foods {
		m.foods[f.ID] = f
	}
	return m
}

func (m *mockFoodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdFood = food
	m.foods[food.ID] = *food
	return nil
}

func (m *mockFoodRepository) GetFoods(ctx context.Context) ([]entities.Food, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]entities.Food, 0, len(m.foods))
	for _, f := range m.foods {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockFoodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	if f, ok := m.foods[parsed]; ok {
		return &f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFoodRepository) GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Food, error) {
	var out []entities.Food
	for _, id := range ids {
		if f, ok := m.foods[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFoodRepository) GetFoodByPublicKey(ctx context.Context, key string) (*entities.Food, error) {
	for _, f := range m.foods {
		if f.PublicFoodKey == key {
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFoodRepository) PublicKeyExists(ctx context.Context, key string) (bool, error) {
	_, err := m.GetFoodByPublicKey(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockFoodRepository) GetRecipesUsingFood(ctx context.Context, foodID string) ([]entities.Recipe, error) {
	return m.usedIn, nil
}

type mockRecipeFinder struct {
	recipes map[string]*entities.Recipe
}

func newMockRecipeFinder() *mockRecipeFinder {
	return &mockRecipeFinder{recipes: make(map[string]*entities.Recipe)}
}

func (m *mockRecipeFinder) GetRecipeByPublicKey(ctx context.Context, key string) (*entities.Recipe, error) {
	if r, ok := m.recipes[key]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func ptr(v float64) *float64 { return &v }

func newService(repo *mockFoodRepository, recipes *mockRecipeFinder) FoodService {
	return NewFoodService(repo, recipes, foodkey.NewGenerator(repo))
}

func TestGetFoods(t *testing.T) {
	repo := newMockFoodRepository(entities.Food{
		ID:            uuid.New(),
		PublicFoodKey: uuid.NewString(),
		Name:          "Rice, white, boiled",
		NutrientValues: entities.NutrientValues{
			Protein: ptr(2.7),
		},
	})
	service := newService(repo, newMockRecipeFinder())

	foods, err := service.GetFoods(context.Background())
	require.NoError(t, err)

	require.Len(t, foods, 1)
	assert.Equal(t, "Rice, white, boiled", foods[0].Name)
	require.NotNil(t, foods[0].Protein)
	assert.InDelta(t, 2.7, *foods[0].Protein, 1e-9)
}

func TestGetFoodsEmpty(t *testing.T) {
	service := newService(newMockFoodRepository(), newMockRecipeFinder())

	_, err := service.GetFoods(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoFoods)
}

func TestGetFoodDetail(t *testing.T) {
	key := uuid.NewString()
	food := entities.Food{
		ID:            uuid.New(),
		PublicFoodKey: key,
		Name:          "Plain rice bowl",
	}
	repo := newMockFoodRepository(food)
	repo.usedIn = []entities.Recipe{{ID: uuid.New(), Name: "Fried rice"}}
	recipes := newMockRecipeFinder()
	recipes.recipes[key] = &entities.Recipe{ID: uuid.New(), PublicFoodKey: key, Name: "Plain rice bowl"}
	service := newService(repo, recipes)

	res, err := service.GetFoodDetail(context.Background(), food.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Plain rice bowl", res.Name)
	require.NotNil(t, res.CorrespondingRecipe)
	assert.Equal(t, key, res.CorrespondingRecipe.PublicFoodKey)
	require.Len(t, res.UsedInRecipes, 1)
	assert.Equal(t, "Fried rice", res.UsedInRecipes[0].Name)
}

func TestGetFoodDetailNoCounterpartRecipe(t *testing.T) {
	food := entities.Food{
		ID:            uuid.New(),
		PublicFoodKey: uuid.NewString(),
		Name:          "Rice, white, boiled",
	}
	repo := newMockFoodRepository(food)
	service := newService(repo, newMockRecipeFinder())

	res, err := service.GetFoodDetail(context.Background(), food.ID.String())
	require.NoError(t, err)

	assert.Nil(t, res.CorrespondingRecipe)
	assert.NotNil(t, res.UsedInRecipes)
	assert.Empty(t, res.UsedInRecipes)
}

func TestGetFoodDetailNotFound(t *testing.T) {
	service := newService(newMockFoodRepository(), newMockRecipeFinder())

	_, err := service.GetFoodDetail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	_, err = service.GetFoodDetail(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestCreateFood(t *testing.T) {
	repo := newMockFoodRepository()
	service := newService(repo, newMockRecipeFinder())

	created, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{
		Name:    "Homemade broth",
		Protein: 1.2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Homemade broth", created.Name)
	assert.NotEmpty(t, created.PublicFoodKey)
	_, parseErr := uuid.Parse(created.PublicFoodKey)
	assert.NoError(t, parseErr)

	require.NotNil(t, created.Protein)
	assert.InDelta(t, 1.2, *created.Protein, 1e-9)

	// omitted nutrients are stored as zero, not NULL
	require.NotNil(t, created.Fat)
	assert.Zero(t, *created.Fat)
	require.NotNil(t, created.Energy)
	assert.Zero(t, *created.Energy)

	require.NotNil(t, repo.createdFood)
	assert.Equal(t, created.ID, repo.createdFood.ID)
}

func TestCreateFoodPropagatesStorageError(t *testing.T) {
	repo := newMockFoodRepository()
	repo.createErr = errors.New("unique violation")
	service := newService(repo, newMockRecipeFinder())

	_, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{Name: "Broth"})
	assert.EqualError(t, err, "unique violation")
}
