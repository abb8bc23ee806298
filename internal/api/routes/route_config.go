package routes

import (
	"Nutrition-Catalog/internal/api/handlers"
	"Nutrition-Catalog/internal/middleware"
	"Nutrition-Catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FoodHandler   handlers.FoodHandler
	RecipeHandler handlers.RecipeHandler
	SearchHandler handlers.SearchHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Catalog() {
	api := c.App.Group("/api")
	// catalog routes
	{
		api.Get("/food", c.FoodHandler.GetFoods)
		api.Post("/food", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.CreateFood)
		api.Get("/food/:id", c.FoodHandler.GetFoodDetail)
		api.Post("/recipe", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		api.Get("/recipe/:id", c.RecipeHandler.GetRecipeDetail)
		api.Get("/search", c.SearchHandler.Search)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
