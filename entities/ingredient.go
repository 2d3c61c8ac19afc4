package entities

import (
	"github.com/google/uuid"
)

// Ingredient rows are created lazily the first time a drink references the
// name and are shared between drinks. The unique index on name is what keeps
// concurrent creates from minting duplicates.
type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Drinks []*DrinkIngredient `gorm:"foreignKey:IngredientID"`
}
