package migration

import (
	"Cocktail-Catalog/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Drink{}); err != nil {
		log.Fatalf("Error migrating drink database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DrinkIngredient{}); err != nil {
		log.Fatalf("Error migrating drink ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
