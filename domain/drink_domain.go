package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetDrinks        = "drinks retrieved successfully"
	MessageSuccessGetDrinkDetail   = "drink retrieved successfully"
	MessageSuccessCreateDrink      = "drink created successfully"
	MessageSuccessUpdateDrink      = "drink updated successfully"
	MessageSuccessDeleteDrink      = "drink deleted successfully"
	MessageSuccessUploadDrinkImage = "drink image uploaded successfully"

	MessageFailedGetDrinks        = "failed to get drinks"
	MessageFailedGetDrinkDetail   = "failed to get drink detail"
	MessageFailedCreateDrink      = "failed to create drink"
	MessageFailedUpdateDrink      = "failed to update drink"
	MessageFailedDeleteDrink      = "failed to delete drink"
	MessageFailedUploadDrinkImage = "failed to upload drink image"

	ErrDrinkNotFound      = errors.New("drink not found")
	ErrDrinkUserReference = errors.New("user for drink does not exist")
)

type (
	DrinkQuery struct {
		Take    int
		Skip    int
		Search  string
		OrderBy string
	}

	CreateDrinkIngredientRequest struct {
		Name       string  `json:"name" validate:"required"`
		Amount     string  `json:"amount" validate:"required"`
		AmountUnit *string `json:"amount_unit" validate:"omitempty"`
		Brand      *string `json:"brand" validate:"omitempty"`
		Garnish    *bool   `json:"garnish" validate:"omitempty"`
	}

	CreateDrinkRequest struct {
		Name        string                         `json:"name" validate:"required"`
		Description string                         `json:"description"`
		Notes       string                         `json:"notes"`
		Directions  string                         `json:"directions"`
		Serves      *int                           `json:"serves" validate:"omitempty,min=1"`
		UserID      string                         `json:"user_id" validate:"required,uuid"`
		Ingredients []CreateDrinkIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	UpdateDrinkRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=1"`
		Description *string `json:"description"`
		Notes       *string `json:"notes"`
		Directions  *string `json:"directions"`
		Published   *bool   `json:"published"`
		Serves      *int    `json:"serves" validate:"omitempty,min=1"`
		SaveCount   *int    `json:"save_count" validate:"omitempty,min=0"`
	}

	// DrinkIngredientResponse is one flattened recipe line: the ingredient
	// name plus amount and unit joined into a single display string ("2 oz").
	DrinkIngredientResponse struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	DrinkResponse struct {
		ID          string                    `json:"id"`
		Name        string                    `json:"name"`
		Description string                    `json:"description,omitempty"`
		Notes       string                    `json:"notes,omitempty"`
		Directions  string                    `json:"directions,omitempty"`
		Published   bool                      `json:"published"`
		Serves      int                       `json:"serves"`
		SaveCount   int                       `json:"save_count"`
		ImageURL    string                    `json:"image_url,omitempty"`
		UserID      string                    `json:"user_id"`
		CreatedAt   time.Time                 `json:"created_at"`
		UpdatedAt   time.Time                 `json:"updated_at"`
		Ingredients []DrinkIngredientResponse `json:"ingredients"`
	}

	// DrinkShowResult is the tagged outcome of a lookup. A tombstoned drink
	// answers with Deleted=true and a message only; its fields stay hidden.
	DrinkShowResult struct {
		Deleted bool           `json:"deleted"`
		Message string         `json:"message,omitempty"`
		Drink   *DrinkResponse `json:"drink,omitempty"`
	}

	DrinkDeleteResult struct {
		AlreadyDeleted bool   `json:"already_deleted"`
		Message        string `json:"message"`
	}

	UploadDrinkImageRequest struct {
		DrinkID string                `json:"drink_id" form:"drink_id" validate:"required,uuid"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
