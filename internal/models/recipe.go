package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Ingredient is one line of a recipe's ingredient list. Source is the store
// the price was quoted from and is the grouping dimension for shopping lists.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
}

// JSONBIngredients stores an ingredient list in a JSONB column.
type JSONBIngredients []Ingredient

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBIngredients{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Recipe is a catalog entry. The catalog is read-only from the meal-plan
// engine's perspective; ids are opaque strings assigned at seed time.
type Recipe struct {
	ID                string           `gorm:"size:64;primarykey" json:"recipeId"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Description       string           `gorm:"type:text" json:"description"`
	Ingredients       JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	TotalCost         float64          `json:"totalCost"`
	EstimatedCalories int              `json:"estimatedCalories"`
	Servings          int              `gorm:"default:1" json:"servings"`
	DietaryTags       JSONBStrings     `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryTags"`
}
