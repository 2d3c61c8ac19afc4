package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients      = "ingredients retrieved successfully"
	MessageSuccessGetIngredientDetail = "ingredient retrieved successfully"

	MessageFailedGetIngredients      = "failed to get ingredients"
	MessageFailedGetIngredientDetail = "failed to get ingredient detail"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	IngredientQuery struct {
		Take int
		Skip int
	}

	IngredientDrinkResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	IngredientResponse struct {
		ID     string                    `json:"id"`
		Name   string                    `json:"name"`
		Drinks []IngredientDrinkResponse `json:"drinks"`
	}
)
