package ingredient

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, query domain.IngredientQuery) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, query domain.IngredientQuery) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, shapeIngredient(ing))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	// A malformed id can never match a uuid column; treat it as not found
	// instead of letting the dialect reject it.
	if _, err := uuid.Parse(id); err != nil {
		return domain.IngredientResponse{}, fmt.Errorf("ingredient with id %s: %w", id, domain.ErrIngredientNotFound)
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, fmt.Errorf("ingredient with id %s: %w", id, domain.ErrIngredientNotFound)
		}
		return domain.IngredientResponse{}, err
	}
	return shapeIngredient(ing), nil
}

// shapeIngredient flattens the reverse association into {id, name} pairs for
// every drink referencing the ingredient.
func shapeIngredient(ing *entities.Ingredient) domain.IngredientResponse {
	drinks := make([]domain.IngredientDrinkResponse, 0, len(ing.Drinks))
	for _, line := range ing.Drinks {
		if line.Drink == nil {
			continue
		}
		drinks = append(drinks, domain.IngredientDrinkResponse{
			ID:   line.Drink.ID.String(),
			Name: line.Drink.Name,
		})
	}

	return domain.IngredientResponse{
		ID:     ing.ID.String(),
		Name:   ing.Name,
		Drinks: drinks,
	}
}
