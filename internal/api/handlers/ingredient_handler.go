package handlers

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/pkg/ingredient"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredientByID(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	take, _ := strconv.Atoi(c.Query("take", "0"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))

	ingredients, err := h.ingredientService.GetIngredients(c.Context(), domain.IngredientQuery{
		Take: take,
		Skip: skip,
	})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, ingredients, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredientByID(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.ingredientService.GetIngredientByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetIngredientDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredientDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredientDetail)
}
