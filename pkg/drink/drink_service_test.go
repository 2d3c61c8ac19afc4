package drink

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

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

func newTestService(t *testing.T) (DrinkService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewDrinkService(NewDrinkRepository(db), nil), db
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	user := &entities.User{
		ID:    uuid.New(),
		Name:  "Tom Bauman",
		Email: fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Role:  "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func TestCreateDrinkShapesIngredients(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name:   "Martini",
		UserID: user.ID.String(),
		Ingredients: []domain.CreateDrinkIngredientRequest{
			{Name: "Gin", Amount: "2", AmountUnit: strPtr("oz")},
			{Name: "Dry Vermouth", Amount: "1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Martini", created.Name)
	assert.Equal(t, 1, created.Serves)
	assert.False(t, created.Published)

	res, err := service.GetDrinkByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Drink)
	require.Len(t, res.Drink.Ingredients, 2)
	assert.Contains(t, res.Drink.Ingredients, domain.DrinkIngredientResponse{Name: "Gin", Amount: "2 oz"})
	assert.Contains(t, res.Drink.Ingredients, domain.DrinkIngredientResponse{Name: "Dry Vermouth", Amount: "1"})
}

func TestCreateDrinkReusesExistingIngredient(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	mint := []domain.CreateDrinkIngredientRequest{{Name: "Mint", Amount: "6", AmountUnit: strPtr("leaves")}}

	first, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name: "Mojito", UserID: user.ID.String(), Ingredients: mint,
	})
	require.NoError(t, err)

	second, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name: "Julep", UserID: user.ID.String(), Ingredients: mint,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("name = ?", "Mint").Count(&count).Error)
	assert.EqualValues(t, 1, count, "both drinks must converge on a single Mint row")

	var ingredient entities.Ingredient
	require.NoError(t, db.Where("name = ?", "Mint").First(&ingredient).Error)

	var links int64
	require.NoError(t, db.Model(&entities.DrinkIngredient{}).
		Where("ingredient_id = ? AND drink_id IN ?", ingredient.ID, []string{first.ID, second.ID}).
		Count(&links).Error)
	assert.EqualValues(t, 2, links)
}

func TestCreateDrinkUnknownUserRollsBack(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name:   "Orphan",
		UserID: uuid.NewString(),
		Ingredients: []domain.CreateDrinkIngredientRequest{
			{Name: "Rum", Amount: "2", AmountUnit: strPtr("oz")},
		},
	})
	require.ErrorIs(t, err, domain.ErrDrinkUserReference)

	var drinks, lines int64
	require.NoError(t, db.Model(&entities.Drink{}).Count(&drinks).Error)
	require.NoError(t, db.Model(&entities.DrinkIngredient{}).Count(&lines).Error)
	assert.Zero(t, drinks)
	assert.Zero(t, lines)
}

func TestDeleteDrinkIsIdempotent(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name: "Negroni", UserID: user.ID.String(),
	})
	require.NoError(t, err)

	first, err := service.DeleteDrink(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyDeleted)
	assert.Equal(t, "Negroni deleted successfully.", first.Message)

	var afterFirst entities.Drink
	require.NoError(t, db.Where("id = ?", created.ID).First(&afterFirst).Error)
	require.NotNil(t, afterFirst.DeletedAt)

	second, err := service.DeleteDrink(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyDeleted)
	assert.Equal(t, "Negroni already deleted.", second.Message)

	var afterSecond entities.Drink
	require.NoError(t, db.Where("id = ?", created.ID).First(&afterSecond).Error)
	require.NotNil(t, afterSecond.DeletedAt)
	assert.Equal(t, afterFirst.DeletedAt.Unix(), afterSecond.DeletedAt.Unix())

	// tombstoned drinks drop out of the index
	drinks, err := service.GetDrinks(ctx, domain.DrinkQuery{})
	require.NoError(t, err)
	assert.Empty(t, drinks)
}

func TestShowDeletedDrinkHidesFields(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name:   "Sazerac",
		Notes:  "rinse the glass with absinthe",
		UserID: user.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.DeleteDrink(ctx, created.ID)
	require.NoError(t, err)

	res, err := service.GetDrinkByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Equal(t, "Sazerac has been deleted.", res.Message)
	assert.Nil(t, res.Drink, "a tombstoned drink must not expose its fields")
}

func TestUnknownDrinkID(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	// A well-formed uuid that matches nothing and a malformed id must both
	// come back as not found with the id in the message.
	for _, id := range []string{uuid.NewString(), "nonexistent-id"} {
		_, err := service.GetDrinkByID(ctx, id)
		require.ErrorIs(t, err, domain.ErrDrinkNotFound)
		assert.Contains(t, err.Error(), id)

		_, err = service.DeleteDrink(ctx, id)
		require.ErrorIs(t, err, domain.ErrDrinkNotFound)
		assert.Contains(t, err.Error(), id)

		name := "Renamed"
		_, err = service.UpdateDrink(ctx, id, domain.UpdateDrinkRequest{Name: &name})
		require.ErrorIs(t, err, domain.ErrDrinkNotFound)
		assert.Contains(t, err.Error(), id)
	}
}

func TestSetDrinkDeletedClaimsTombstoneOnce(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name: "Vesper", UserID: user.ID.String(),
	})
	require.NoError(t, err)

	repository := NewDrinkRepository(db)

	first := time.Now()
	claimed, err := repository.SetDrinkDeleted(ctx, created.ID, first)
	require.NoError(t, err)
	assert.True(t, claimed)

	// A second writer racing past the tombstone read must lose here.
	claimed, err = repository.SetDrinkDeleted(ctx, created.ID, first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, claimed)

	var stored entities.Drink
	require.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	require.NotNil(t, stored.DeletedAt)
	assert.Equal(t, first.Unix(), stored.DeletedAt.Unix(), "the losing write must not move the tombstone")
}

func TestGetDrinksPagination(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	for _, name := range []string{"Americano", "Boulevardier", "Cosmopolitan"} {
		_, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{Name: name, UserID: user.ID.String()})
		require.NoError(t, err)
	}

	drinks, err := service.GetDrinks(ctx, domain.DrinkQuery{Skip: 1, Take: 1, OrderBy: "asc"})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Boulevardier", drinks[0].Name)

	reversed, err := service.GetDrinks(ctx, domain.DrinkQuery{OrderBy: "desc"})
	require.NoError(t, err)
	require.Len(t, reversed, 3)
	assert.Equal(t, "Cosmopolitan", reversed[0].Name)
}

func TestGetDrinksSearch(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	for _, name := range []string{"Manhattan", "Margarita", "Negroni"} {
		_, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{Name: name, UserID: user.ID.String()})
		require.NoError(t, err)
	}

	drinks, err := service.GetDrinks(ctx, domain.DrinkQuery{Search: "man"})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Manhattan", drinks[0].Name)
}

func TestUpdateDrinkPartialMerge(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{
		Name:        "Daiquiri",
		Description: "rum sour",
		UserID:      user.ID.String(),
		Ingredients: []domain.CreateDrinkIngredientRequest{
			{Name: "White Rum", Amount: "2", AmountUnit: strPtr("oz")},
		},
	})
	require.NoError(t, err)

	published := true
	updated, err := service.UpdateDrink(ctx, created.ID, domain.UpdateDrinkRequest{Published: &published})
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.Equal(t, "Daiquiri", updated.Name)
	assert.Equal(t, "rum sour", updated.Description)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "2 oz", updated.Ingredients[0].Amount)

	_, err = service.UpdateDrink(ctx, uuid.NewString(), domain.UpdateDrinkRequest{Published: &published})
	require.ErrorIs(t, err, domain.ErrDrinkNotFound)
}

func TestUpdateDrinkKeepsTombstone(t *testing.T) {
	service, db := newTestService(t)
	user := seedUser(t, db)
	ctx := context.Background()

	created, err := service.CreateDrink(ctx, domain.CreateDrinkRequest{Name: "Paloma", UserID: user.ID.String()})
	require.NoError(t, err)

	_, err = service.DeleteDrink(ctx, created.ID)
	require.NoError(t, err)

	notes := "grapefruit soda, not juice"
	_, err = service.UpdateDrink(ctx, created.ID, domain.UpdateDrinkRequest{Notes: &notes})
	require.NoError(t, err)

	var stored entities.Drink
	require.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	assert.NotNil(t, stored.DeletedAt, "an update must never clear the tombstone")
	assert.Equal(t, notes, stored.Notes)
}

func TestFormatAmount(t *testing.T) {
	oz := "oz"
	empty := ""
	assert.Equal(t, "2 oz", formatAmount("2", &oz))
	assert.Equal(t, "2", formatAmount("2", nil))
	assert.Equal(t, "2", formatAmount("2", &empty))
}
