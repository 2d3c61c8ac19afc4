package ingredient

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Drink{},
		&entities.Ingredient{},
		&entities.DrinkIngredient{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (*entities.Ingredient, []*entities.Drink) {
	t.Helper()

	user := &entities.User{ID: uuid.New(), Name: "Owner", Email: "owner@example.com", Role: "user"}
	require.NoError(t, db.Create(user).Error)

	gin := &entities.Ingredient{ID: uuid.New(), Name: "Gin"}
	require.NoError(t, db.Create(gin).Error)

	var drinks []*entities.Drink
	for _, name := range []string{"Martini", "Negroni"} {
		drink := &entities.Drink{ID: uuid.New(), UserID: user.ID, Name: name, Serves: 1}
		require.NoError(t, db.Create(drink).Error)
		require.NoError(t, db.Create(&entities.DrinkIngredient{
			ID:           uuid.New(),
			DrinkID:      drink.ID,
			IngredientID: gin.ID,
			Amount:       "2",
		}).Error)
		drinks = append(drinks, drink)
	}
	return gin, drinks
}

func TestGetIngredientByIDShapesDrinks(t *testing.T) {
	db := newTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))
	gin, drinks := seedCatalog(t, db)

	res, err := service.GetIngredientByID(context.Background(), gin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Gin", res.Name)
	require.Len(t, res.Drinks, 2)
	for _, drink := range drinks {
		assert.Contains(t, res.Drinks, domain.IngredientDrinkResponse{
			ID:   drink.ID.String(),
			Name: drink.Name,
		})
	}
}

func TestGetIngredientByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))

	for _, id := range []string{uuid.NewString(), "nonexistent-id"} {
		_, err := service.GetIngredientByID(context.Background(), id)
		require.ErrorIs(t, err, domain.ErrIngredientNotFound)
		assert.Contains(t, err.Error(), id)
	}
}

func TestGetIngredientsPagination(t *testing.T) {
	db := newTestDB(t)
	service := NewIngredientService(NewIngredientRepository(db))

	for _, name := range []string{"Gin", "Lime", "Sugar"} {
		require.NoError(t, db.Create(&entities.Ingredient{ID: uuid.New(), Name: name}).Error)
	}

	page, err := service.GetIngredients(context.Background(), domain.IngredientQuery{Skip: 1, Take: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	all, err := service.GetIngredients(context.Background(), domain.IngredientQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, ing := range all {
		assert.Empty(t, ing.Drinks)
	}
}
