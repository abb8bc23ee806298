package main

import (
	"context"
	"flag"
	"path/filepath"

	"Nutrition-Catalog/cmd/config"
	migration "Nutrition-Catalog/cmd/database/migrate"
	"Nutrition-Catalog/internal/utils"
	"Nutrition-Catalog/internal/utils/storage"
	"Nutrition-Catalog/pkg/importer"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		foodsPath     = flag.String("foods", "dataset/food-details.xlsx", "path to the food details workbook")
		recipesPath   = flag.String("recipes", "dataset/recipes.xlsx", "path to the recipes workbook")
		nutrientsPath = flag.String("nutrients", "dataset/nutrients.xlsx", "path to the nutrient file workbook")
		bucket        = flag.String("bucket", "", "S3 bucket to download the workbooks from before importing")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	utils.LoadConfig()

	if *bucket != "" {
		s3 := storage.NewAwsS3()
		ctx := context.Background()
		for _, path := range []string{*foodsPath, *recipesPath, *nutrientsPath} {
			key := filepath.Base(path)
			log.WithFields(logrus.Fields{"bucket": *bucket, "key": key}).Info("downloading workbook")
			if err := s3.DownloadFile(ctx, *bucket, key, path); err != nil {
				log.Fatalf("error downloading %s: %v", key, err)
			}
		}
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	repo := importer.NewImporterRepository(db)
	service := importer.NewImporterService(repo, log)

	stats, err := service.Run(context.Background(), importer.Sources{
		FoodDetails: *foodsPath,
		Recipes:     *recipesPath,
		Nutrients:   *nutrientsPath,
	})
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.WithFields(logrus.Fields{
		"classifications":  stats.Classifications,
		"foods":            stats.Foods,
		"recipes":          stats.Recipes,
		"recipe_foods":     stats.RecipeFoods,
		"nutrient_updates": stats.NutrientUpdates,
		"skipped_rows":     stats.SkippedRows,
	}).Info("import complete")
}
