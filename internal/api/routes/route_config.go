package routes

import (
	"Cocktail-Catalog/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	DrinkHandler      handlers.DrinkHandler
	IngredientHandler handlers.IngredientHandler
	UserHandler       handlers.UserHandler
}

func (c *Config) Setup() {
	c.Drinks()
	c.Ingredients()
	c.Users()
	c.GuestRoute()
}

func (c *Config) Drinks() {
	drinks := c.App.Group("/api/v1")
	// drink catalog routes
	{
		drinks.Get("/drinks", c.DrinkHandler.GetDrinks)
		drinks.Post("/drink", c.DrinkHandler.CreateDrink)
		drinks.Get("/drink/:id", c.DrinkHandler.GetDrinkByID)
		drinks.Put("/drink/:id", c.DrinkHandler.UpdateDrink)
		drinks.Delete("/drink/:id", c.DrinkHandler.DeleteDrink)
		drinks.Post("/drink/:id/image", c.DrinkHandler.UploadDrinkImage)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1")
	{
		ingredients.Get("/ingredients", c.IngredientHandler.GetIngredients)
		ingredients.Get("/ingredient/:id", c.IngredientHandler.GetIngredientByID)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1")
	{
		users.Get("/users", c.UserHandler.GetUsers)
		users.Post("/user/signup", c.UserHandler.RegisterUser)
		users.Get("/user/:id", c.UserHandler.GetUserByID)
		users.Put("/user/:id", c.UserHandler.UpdateUser)
		users.Delete("/user/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
