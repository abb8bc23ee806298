package handlers

import (
	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/internal/api/presenters"
	"Nutrition-Catalog/pkg/search"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		Search(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")

	results, err := h.searchService.Search(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearch, nil)
	}

	return c.JSON(results)
}
