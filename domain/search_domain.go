package domain

import (
	"Nutrition-Catalog/entities"
)

var (
	MessageSuccessSearch = "search results retrieved successfully"
	MessageFailedSearch  = "failed to search catalog"
)

type SearchResponse struct {
	Recipes []entities.Recipe `json:"recipes"`
	Foods   []entities.Food   `json:"foods"`
}
