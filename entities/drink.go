package entities

import (
	"time"

	"github.com/google/uuid"
)

type Drink struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Notes       string     `gorm:"type:text" json:"notes"`
	Directions  string     `gorm:"type:text" json:"directions"`
	Published   bool       `gorm:"default:false" json:"published"`
	Serves      int        `gorm:"default:1" json:"serves"`
	SaveCount   int        `gorm:"default:0" json:"save_count"`
	ImageURL    string     `json:"image_url,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	User        *User              `gorm:"foreignKey:UserID"`
	Ingredients []*DrinkIngredient `gorm:"foreignKey:DrinkID"`
	Timestamp
}

// DrinkIngredient is one line item of a drink's recipe. A drink links to an
// ingredient through this table; amount/unit/brand/garnish belong to the link,
// not to the ingredient itself.
type DrinkIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DrinkID      uuid.UUID `json:"drink_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Amount       string    `json:"amount"`
	AmountUnit   *string   `json:"amount_unit,omitempty"`
	Brand        *string   `json:"brand,omitempty"`
	Garnish      bool      `gorm:"default:false" json:"garnish"`

	Drink      *Drink      `gorm:"foreignKey:DrinkID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
