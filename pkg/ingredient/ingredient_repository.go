package ingredient

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context, query domain.IngredientQuery) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, query domain.IngredientQuery) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient

	tx := r.db.WithContext(ctx).Preload("Drinks.Drink")
	if query.Skip > 0 {
		tx = tx.Offset(query.Skip)
	}
	if query.Take > 0 {
		tx = tx.Limit(query.Take)
	}

	if err := tx.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Drinks.Drink").
		Where("id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
