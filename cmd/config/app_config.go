package config

import (
	"Nutrition-Catalog/internal/api/handlers"
	"Nutrition-Catalog/internal/api/routes"
	"Nutrition-Catalog/internal/middleware"
	"Nutrition-Catalog/internal/utils"
	"Nutrition-Catalog/pkg/food"
	"Nutrition-Catalog/pkg/foodkey"
	"Nutrition-Catalog/pkg/jwt"
	"Nutrition-Catalog/pkg/recipe"
	"Nutrition-Catalog/pkg/search"
	"Nutrition-Catalog/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Australia/Sydney",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	searchRepository := search.NewSearchRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	keyGenerator := foodkey.NewGenerator(foodRepository, recipeRepository)
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, recipeRepository, keyGenerator)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, keyGenerator)
	searchService := search.NewSearchService(searchRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		FoodHandler:   foodHandler,
		RecipeHandler: recipeHandler,
		SearchHandler: searchHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
