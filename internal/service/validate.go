package service

import (
	"fmt"
	"strings"

	"github.com/wisewallet/backend/internal/models"
)

// ValidatePlanStructure checks the shape invariants of a seven-day plan and
// returns one entry per violation: exactly 7 days, each canonical weekday
// exactly once, 3-4 meals per day, canonical meal types, at most one meal per
// (day, mealType) slot. An empty result means the structure is valid.
//
// The itemized form exists because generated plans are untrusted input: a
// single boolean would leave structural failures undiagnosable.
func ValidatePlanStructure(days []models.Day) []string {
	var violations []string

	if len(days) != 7 {
		violations = append(violations, fmt.Sprintf("expected 7 days, got %d", len(days)))
	}

	seenDays := make(map[string]int)
	for _, day := range days {
		seenDays[day.Day]++

		if !models.IsWeekday(day.Day) {
			violations = append(violations, fmt.Sprintf("%q is not a valid day name", day.Day))
			continue
		}

		if len(day.Meals) < 3 || len(day.Meals) > 4 {
			violations = append(violations, fmt.Sprintf("%s has %d meals, expected 3-4", day.Day, len(day.Meals)))
		}

		seenTypes := make(map[string]int)
		for _, meal := range day.Meals {
			if !models.IsMealType(meal.MealType) {
				violations = append(violations, fmt.Sprintf("%s has invalid meal type %q", day.Day, meal.MealType))
				continue
			}
			seenTypes[meal.MealType]++
		}
		for _, mealType := range models.MealTypes {
			if count := seenTypes[mealType]; count > 1 {
				violations = append(violations, fmt.Sprintf("%s has %d %s meals, expected at most 1", day.Day, count, mealType))
			}
		}
	}

	for _, name := range models.Weekdays {
		if count := seenDays[name]; count > 1 {
			violations = append(violations, fmt.Sprintf("%s appears %d times", name, count))
		}
	}
	if len(days) == 7 {
		for _, name := range models.Weekdays {
			if seenDays[name] == 0 {
				violations = append(violations, fmt.Sprintf("missing day %s", name))
			}
		}
	}

	return violations
}

// legalSet renders a value set for validation error messages.
func legalSet(values []string) string {
	return "{" + strings.Join(values, ", ") + "}"
}
