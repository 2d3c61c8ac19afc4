package user

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

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(NewUserRepository(db)), db
}

func TestRegisterUserDefaultsRole(t *testing.T) {
	service, _ := newTestService(t)

	res, err := service.RegisterUser(context.Background(), domain.RegisterUserRequest{
		Name:  "Rye Fan",
		Email: "rye@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.Role)
	assert.Equal(t, "rye@example.com", res.Email)
	assert.Empty(t, res.Drinks)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.RegisterUser(ctx, domain.RegisterUserRequest{Name: "First", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = service.RegisterUser(ctx, domain.RegisterUserRequest{Name: "Second", Email: "dup@example.com"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestGetUsersOrderedByName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Bonnie", "Alice", "Clyde"} {
		_, err := service.RegisterUser(ctx, domain.RegisterUserRequest{
			Name:  name,
			Email: strings.ToLower(name) + "@example.com",
		})
		require.NoError(t, err)
	}

	users, err := service.GetUsers(ctx, "desc")
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Clyde", users[0].Name)
	assert.Equal(t, "Alice", users[2].Name)
}

func TestGetUserByIDIncludesOnlyActiveDrinks(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	created, err := service.RegisterUser(ctx, domain.RegisterUserRequest{Name: "Mixer", Email: "mixer@example.com"})
	require.NoError(t, err)
	userID := uuid.MustParse(created.ID)

	require.NoError(t, db.Create(&entities.Drink{ID: uuid.New(), UserID: userID, Name: "Spritz", Serves: 1}).Error)

	deletedAt := time.Now()
	require.NoError(t, db.Create(&entities.Drink{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Retired",
		Serves:    1,
		DeletedAt: &deletedAt,
	}).Error)

	res, err := service.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, res.Drinks, 1)
	assert.Equal(t, "Spritz", res.Drinks[0].Name)
}

func TestGetUserByIDNotFound(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{uuid.NewString(), "nonexistent-id"} {
		_, err := service.GetUserByID(ctx, id)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Contains(t, err.Error(), id)

		name := "Renamed"
		_, err = service.UpdateUser(ctx, id, domain.UpdateUserRequest{Name: &name})
		require.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = service.DeleteUser(ctx, id)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	}
}

func TestUpdateUserPartialMerge(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.RegisterUser(ctx, domain.RegisterUserRequest{Name: "Old Name", Email: "keep@example.com"})
	require.NoError(t, err)

	name := "New Name"
	updated, err := service.UpdateUser(ctx, created.ID, domain.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "keep@example.com", updated.Email)

	_, err = service.UpdateUser(ctx, uuid.NewString(), domain.UpdateUserRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	created, err := service.RegisterUser(ctx, domain.RegisterUserRequest{Name: "Gone Soon", Email: "gone@example.com"})
	require.NoError(t, err)

	message, err := service.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("User: %s was deleted successfully", created.ID), message)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = service.DeleteUser(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
