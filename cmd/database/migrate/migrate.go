package migration

import (
	entities2 "Nutrition-Catalog/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for uuid generation and fuzzy name search
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"pg_trgm\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Classification{}); err != nil {
		log.Fatalf("Error migrating classification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RetentionFactor{}); err != nil {
		log.Fatalf("Error migrating retention factor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecipeFood{}); err != nil {
		log.Fatalf("Error migrating recipe food database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
