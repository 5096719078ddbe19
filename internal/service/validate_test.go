package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisewallet/backend/internal/models"
)

// validDays builds a structurally valid seven-day plan with three custom
// meals per day.
func validDays() []models.Day {
	days := make([]models.Day, 0, 7)
	for _, name := range models.Weekdays {
		days = append(days, models.Day{
			Day: name,
			Meals: []models.Meal{
				{MealType: "breakfast", Name: "Toast", EstimatedCost: 1.00},
				{MealType: "lunch", Name: "Soup", EstimatedCost: 2.00},
				{MealType: "dinner", Name: "Stew", EstimatedCost: 3.00},
			},
		})
	}
	return days
}

func TestValidatePlanStructureValid(t *testing.T) {
	assert.Empty(t, ValidatePlanStructure(validDays()))

	// Four meals is also fine.
	days := validDays()
	days[0].Meals = append(days[0].Meals, models.Meal{MealType: "snack", Name: "Apple"})
	assert.Empty(t, ValidatePlanStructure(days))
}

func TestValidatePlanStructureWrongDayCount(t *testing.T) {
	days := validDays()[:6]

	violations := ValidatePlanStructure(days)

	assert.Contains(t, violations, "expected 7 days, got 6")
}

func TestValidatePlanStructureDuplicateDay(t *testing.T) {
	days := validDays()
	days[6].Day = "Monday" // Sunday replaced

	violations := ValidatePlanStructure(days)

	assert.Contains(t, violations, "Monday appears 2 times")
	assert.Contains(t, violations, "missing day Sunday")
}

func TestValidatePlanStructureBadDayName(t *testing.T) {
	days := validDays()
	days[2].Day = "Funday"

	violations := ValidatePlanStructure(days)

	assert.Contains(t, violations, `"Funday" is not a valid day name`)
}

func TestValidatePlanStructureMealCount(t *testing.T) {
	days := validDays()
	days[0].Meals = days[0].Meals[:2]
	days[1].Meals = append(days[1].Meals,
		models.Meal{MealType: "snack"}, models.Meal{MealType: "snack"})

	violations := ValidatePlanStructure(days)

	assert.Contains(t, violations, "Monday has 2 meals, expected 3-4")
	assert.Contains(t, violations, "Tuesday has 5 meals, expected 3-4")
	assert.Contains(t, violations, "Tuesday has 2 snack meals, expected at most 1")
}

func TestValidatePlanStructureBadMealType(t *testing.T) {
	days := validDays()
	days[0].Meals[1].MealType = "brunch"

	violations := ValidatePlanStructure(days)

	assert.Contains(t, violations, `Monday has invalid meal type "brunch"`)
}
