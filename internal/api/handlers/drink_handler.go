package handlers

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/api/presenters"
	"Cocktail-Catalog/pkg/drink"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DrinkHandler interface {
		GetDrinks(c *fiber.Ctx) error
		GetDrinkByID(c *fiber.Ctx) error
		CreateDrink(c *fiber.Ctx) error
		UpdateDrink(c *fiber.Ctx) error
		DeleteDrink(c *fiber.Ctx) error
		UploadDrinkImage(c *fiber.Ctx) error
	}

	drinkHandler struct {
		drinkService drink.DrinkService
		validator    *validator.Validate
	}
)

func NewDrinkHandler(drinkService drink.DrinkService, validator *validator.Validate) DrinkHandler {
	return &drinkHandler{
		drinkService: drinkService,
		validator:    validator,
	}
}

func (h *drinkHandler) GetDrinks(c *fiber.Ctx) error {
	take, _ := strconv.Atoi(c.Query("take", "0"))
	skip, _ := strconv.Atoi(c.Query("skip", "0"))

	query := domain.DrinkQuery{
		Take:    take,
		Skip:    skip,
		Search:  c.Query("search"),
		OrderBy: c.Query("orderBy"),
	}

	drinks, err := h.drinkService.GetDrinks(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDrinks, err)
	}

	return presenters.SuccessResponse(c, drinks, fiber.StatusOK, domain.MessageSuccessGetDrinks)
}

func (h *drinkHandler) GetDrinkByID(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.drinkService.GetDrinkByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDrinkNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDrinkDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDrinkDetail, err)
	}

	// Deleted drinks answer with their tombstone message, not their fields.
	if res.Deleted {
		return presenters.SuccessResponse(c, fiber.Map{"message": res.Message}, fiber.StatusOK, domain.MessageSuccessGetDrinkDetail)
	}

	return presenters.SuccessResponse(c, res.Drink, fiber.StatusOK, domain.MessageSuccessGetDrinkDetail)
}

func (h *drinkHandler) CreateDrink(c *fiber.Ctx) error {
	req := new(domain.CreateDrinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDrink, err)
	}

	res, err := h.drinkService.CreateDrink(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDrinkUserReference) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateDrink, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDrink, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateDrink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDrink)
}

func (h *drinkHandler) UpdateDrink(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateDrinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDrink, err)
	}

	res, err := h.drinkService.UpdateDrink(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrDrinkNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDrink, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateDrink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDrink)
}

func (h *drinkHandler) DeleteDrink(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.drinkService.DeleteDrink(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDrinkNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteDrink, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteDrink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteDrink)
}

func (h *drinkHandler) UploadDrinkImage(c *fiber.Ctx) error {
	req := new(domain.UploadDrinkImageRequest)
	req.DrinkID = c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDrinkImage, err)
	}

	res, err := h.drinkService.UploadDrinkImage(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDrinkNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadDrinkImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadDrinkImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadDrinkImage)
}
