package handlers

import (
	"errors"

	"Nutrition-Catalog/domain"
	"Nutrition-Catalog/internal/api/presenters"
	"Nutrition-Catalog/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodDetail(c *fiber.Ctx) error
		CreateFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoFoods) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoods, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, nil)
	}

	return c.JSON(foods)
}

func (h *foodHandler) GetFoodDetail(c *fiber.Ctx) error {
	foodID := c.Params("id")

	detail, err := h.foodService.GetFoodDetail(c.Context(), foodID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodDetail, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodDetail, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodDetail, nil)
		}
	}

	return c.JSON(detail)
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	created, err := h.foodService.CreateFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateFood, nil)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
