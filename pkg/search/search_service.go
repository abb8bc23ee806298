package search

import (
	"context"
	"strings"
	"sync"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/entities"
)

// similarityThreshold filters out barely related trigram matches.
const similarityThreshold = 0.1

type (
	SearchService interface {
		Search(ctx context.Context, query string) (domain.SearchResponse, error)
	}

	searchService struct {
		searchRepository SearchRepository
	}
)

func NewSearchService(searchRepository SearchRepository) SearchService {
	return &searchService{searchRepository: searchRepository}
}

// Search runs the recipe and food lookups concurrently and joins both result
// sets. An empty or whitespace query short-circuits to empty results.
func (s *searchService) Search(ctx context.Context, query string) (domain.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResponse{
			Recipes: []entities.Recipe{},
			Foods:   []entities.Food{},
		}, nil
	}

	var (
		wg        sync.WaitGroup
		recipes   []entities.Recipe
		foods     []entities.Food
		recipeErr error
		foodErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recipes, recipeErr = s.searchRepository.SearchRecipes(ctx, query, similarityThreshold)
	}()
	go func() {
		defer wg.Done()
		foods, foodErr = s.searchRepository.SearchFoods(ctx, query, similarityThreshold)
	}()
	wg.Wait()

	if recipeErr != nil {
		return domain.SearchResponse{}, recipeErr
	}
	if foodErr != nil {
		return domain.SearchResponse{}, foodErr
	}

	if recipes == nil {
		recipes = []entities.Recipe{}
	}
	if foods == nil {
		foods = []entities.Food{}
	}
	return domain.SearchResponse{Recipes: recipes, Foods: foods}, nil
}
