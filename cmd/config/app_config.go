package config

import (
	"Cocktail-Catalog/internal/api/handlers"
	"Cocktail-Catalog/internal/api/routes"
	"Cocktail-Catalog/internal/utils"
	"Cocktail-Catalog/internal/utils/storage"
	"Cocktail-Catalog/pkg/drink"
	"Cocktail-Catalog/pkg/ingredient"
	"Cocktail-Catalog/pkg/user"
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	drinkRepository := drink.NewDrinkRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	drinkService := drink.NewDrinkService(drinkRepository, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	drinkHandler := handlers.NewDrinkHandler(drinkService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		DrinkHandler:      drinkHandler,
		IngredientHandler: ingredientHandler,
		UserHandler:       userHandler,
	}
	routesConfig.Setup()
	return app, nil
}
