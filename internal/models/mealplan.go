package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Weekdays lists the canonical day names a plan must cover, in plan order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealTypes lists the canonical slot types within a day.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// IsWeekday reports whether name is one of the seven canonical day names.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// IsMealType reports whether name is one of the four canonical meal types.
func IsMealType(name string) bool {
	for _, m := range MealTypes {
		if m == name {
			return true
		}
	}
	return false
}

// Meal occupies a single (day, mealType) slot. A nil RecipeID marks a custom
// meal that contributes only its flat EstimatedCost to the shopping list.
type Meal struct {
	MealType          string  `json:"mealType"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	RecipeID          *string `json:"recipeId"`
	EstimatedCalories int     `json:"estimatedCalories"`
	EstimatedCost     float64 `json:"estimatedCost"`
}

// Day holds the ordered meals for one weekday. At most one meal per mealType.
type Day struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// ShoppingItem is one aggregated ingredient line within a store group.
type ShoppingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// StoreGroup collects the items sourced from a single store.
type StoreGroup struct {
	StoreName string         `json:"storeName"`
	Items     []ShoppingItem `json:"items"`
	Subtotal  float64        `json:"subtotal"`
}

// ShoppingList is wholly derived from (days, resolved recipes) and is never
// edited directly by a client.
type ShoppingList struct {
	Stores    []StoreGroup `json:"stores"`
	TotalCost float64      `json:"totalCost"`
}

// NutritionSummary is the provider-reported weekly nutrition estimate.
type NutritionSummary struct {
	AverageDailyCalories int     `json:"averageDailyCalories"`
	ProteinGrams         float64 `json:"proteinGrams"`
	CarbsGrams           float64 `json:"carbsGrams"`
	FatGrams             float64 `json:"fatGrams"`
}

// MealPlanPreferences is the immutable input to generation.
type MealPlanPreferences struct {
	Allergies          []string `json:"allergies"`
	CalorieGoal        int      `json:"calorieGoal"`
	CulturalPreference string   `json:"culturalPreference,omitempty"`
	DietType           string   `json:"dietType,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// JSONBDays stores the seven-day structure in a JSONB column.
type JSONBDays []Day

func (a JSONBDays) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *JSONBDays) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBDays{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// JSONBShoppingList stores the derived shopping list in a JSONB column.
type JSONBShoppingList ShoppingList

func (a JSONBShoppingList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONBShoppingList) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBShoppingList{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// JSONBNutrition stores the nutrition summary in a JSONB column.
type JSONBNutrition NutritionSummary

func (a JSONBNutrition) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONBNutrition) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBNutrition{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// JSONBPreferences stores generation preferences in a JSONB column.
type JSONBPreferences MealPlanPreferences

func (a JSONBPreferences) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONBPreferences) Scan(value interface{}) error {
	bytes, ok := jsonbBytes(value)
	if !ok {
		*a = JSONBPreferences{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// MealPlan is a user's single weekly plan. Created once by generation and
// thereafter only updated in place; TotalWeeklyCost always equals the derived
// shopping list's TotalCost.
type MealPlan struct {
	ID               uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID         `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Preferences      JSONBPreferences  `gorm:"type:jsonb;not null;default:'{}'" json:"preferences"`
	Days             JSONBDays         `gorm:"type:jsonb;not null;default:'[]'" json:"days"`
	TotalWeeklyCost  float64           `json:"totalWeeklyCost"`
	NutritionSummary JSONBNutrition    `gorm:"type:jsonb;not null;default:'{}'" json:"nutritionSummary"`
	ShoppingList     JSONBShoppingList `gorm:"type:jsonb;not null;default:'{}'" json:"shoppingList"`
	Notes            string            `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// FindDay returns a pointer into the plan's Days slice for the named weekday,
// or nil if the plan does not contain it.
func (p *MealPlan) FindDay(day string) *Day {
	for i := range p.Days {
		if p.Days[i].Day == day {
			return &p.Days[i]
		}
	}
	return nil
}
