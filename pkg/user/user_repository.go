package user

import (
	"Cocktail-Catalog/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetUsers(ctx context.Context, orderBy string) ([]*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// activeDrinks limits the preload to drinks that have not been tombstoned.
func activeDrinks(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

func (r *userRepository) GetUsers(ctx context.Context, orderBy string) ([]*entities.User, error) {
	var users []*entities.User

	tx := r.db.WithContext(ctx).Preload("Drinks", activeDrinks)
	if orderBy == "asc" || orderBy == "desc" {
		tx = tx.Order("name " + orderBy)
	}

	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Drinks", activeDrinks).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
