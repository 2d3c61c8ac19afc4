package drink

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DrinkRepository interface {
		GetDrinks(ctx context.Context, query domain.DrinkQuery) ([]*entities.Drink, error)
		GetDrinkByID(ctx context.Context, id string) (*entities.Drink, error)
		CreateDrink(ctx context.Context, drink *entities.Drink, lines []domain.CreateDrinkIngredientRequest) error
		UpdateDrink(ctx context.Context, drink *entities.Drink) error
		SetDrinkDeleted(ctx context.Context, id string, deletedAt time.Time) (bool, error)
	}

	drinkRepository struct {
		db *gorm.DB
	}
)

func NewDrinkRepository(db *gorm.DB) DrinkRepository {
	return &drinkRepository{db: db}
}

func (r *drinkRepository) GetDrinks(ctx context.Context, query domain.DrinkQuery) ([]*entities.Drink, error) {
	var drinks []*entities.Drink

	tx := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("deleted_at IS NULL")

	if query.Search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Search)+"%")
	}
	if query.OrderBy == "asc" || query.OrderBy == "desc" {
		tx = tx.Order("name " + query.OrderBy)
	}
	if query.Skip > 0 {
		tx = tx.Offset(query.Skip)
	}
	if query.Take > 0 {
		tx = tx.Limit(query.Take)
	}

	if err := tx.Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *drinkRepository) GetDrinkByID(ctx context.Context, id string) (*entities.Drink, error) {
	var drink entities.Drink
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&drink).Error; err != nil {
		return nil, err
	}
	return &drink, nil
}

// CreateDrink inserts the drink and its recipe lines in one transaction.
// Ingredient rows are resolved by name through an upsert against the unique
// index, so concurrent creates referencing the same new name converge on a
// single row instead of racing a read against a write.
func (r *drinkRepository) CreateDrink(ctx context.Context, drink *entities.Drink, lines []domain.CreateDrinkIngredientRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("id = ?", drink.UserID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDrinkUserReference
			}
			return err
		}

		if err := tx.Create(drink).Error; err != nil {
			return err
		}

		for _, line := range lines {
			ingredient := entities.Ingredient{ID: uuid.New(), Name: line.Name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&ingredient).Error; err != nil {
				return err
			}
			// The insert is skipped when the name already exists, so read the
			// surviving row back to get its id.
			if err := tx.Where("name = ?", line.Name).First(&ingredient).Error; err != nil {
				return err
			}

			garnish := line.Garnish != nil && *line.Garnish
			if err := tx.Create(&entities.DrinkIngredient{
				ID:           uuid.New(),
				DrinkID:      drink.ID,
				IngredientID: ingredient.ID,
				Amount:       line.Amount,
				AmountUnit:   line.AmountUnit,
				Brand:        line.Brand,
				Garnish:      garnish,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *drinkRepository) UpdateDrink(ctx context.Context, drink *entities.Drink) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(drink).Error
}

// SetDrinkDeleted tombstones the drink only if it is still active, so the
// first delete wins under concurrent callers. Returns whether this call set
// the tombstone.
func (r *drinkRepository) SetDrinkDeleted(ctx context.Context, id string, deletedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.Drink{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", deletedAt)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
