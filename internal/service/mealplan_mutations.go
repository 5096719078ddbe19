package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wisewallet/backend/internal/models"
)

// AddMeal inserts a catalog recipe into the (day, mealType) slot of the
// user's plan. An occupied slot is replaced (last write wins). The whole
// shopping list is re-synthesized from the resulting structure before the
// plan is persisted, so the list never retains entries from displaced meals.
func (s *MealPlanService) AddMeal(ctx context.Context, userID uuid.UUID, day, mealType, recipeID string) (*models.MealPlan, error) {
	if err := validateSlot(day, mealType); err != nil {
		return nil, err
	}

	plan, err := s.loadPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, AsError(err)
	}

	meal := models.Meal{
		MealType:          mealType,
		Name:              recipe.Name,
		Description:       recipe.Description,
		RecipeID:          &recipe.ID,
		EstimatedCalories: recipe.EstimatedCalories,
		EstimatedCost:     recipe.TotalCost,
	}

	target := plan.FindDay(day)
	if target == nil {
		return nil, NewInternalError("plan is missing day %s", day)
	}
	replaced := false
	for i := range target.Meals {
		if target.Meals[i].MealType == mealType {
			target.Meals[i] = meal
			replaced = true
			break
		}
	}
	if !replaced {
		target.Meals = append(target.Meals, meal)
	}

	return s.finishMutation(ctx, plan)
}

// RemoveMeal clears the (day, mealType) slot. Removing from an empty slot is
// a not-found failure; removing a meal that would drop the day below the
// three-meal minimum is rejected so the plan's structure stays valid.
func (s *MealPlanService) RemoveMeal(ctx context.Context, userID uuid.UUID, day, mealType string) (*models.MealPlan, error) {
	if err := validateSlot(day, mealType); err != nil {
		return nil, err
	}

	plan, err := s.loadPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := plan.FindDay(day)
	if target == nil {
		return nil, NewInternalError("plan is missing day %s", day)
	}

	idx := -1
	for i := range target.Meals {
		if target.Meals[i].MealType == mealType {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NewNotFoundError("no %s meal on %s", mealType, day)
	}
	if len(target.Meals) <= 3 {
		return nil, NewValidationError("removing the %s meal would leave %s with %d meals; each day needs 3-4", mealType, day, len(target.Meals)-1)
	}
	target.Meals = append(target.Meals[:idx], target.Meals[idx+1:]...)

	return s.finishMutation(ctx, plan)
}

// UpdatePlanInput is the bulk-replace payload. Days is required; the other
// fields update the plan only when supplied.
type UpdatePlanInput struct {
	Days             []models.Day
	Preferences      *models.MealPlanPreferences
	NutritionSummary *models.NutritionSummary
	Notes            *string
}

// UpdatePlan replaces the plan's entire day structure with a client-supplied
// one. The structure is validated like generated output, but violations are
// the client's fault here and surface as validation errors.
func (s *MealPlanService) UpdatePlan(ctx context.Context, userID uuid.UUID, input UpdatePlanInput) (*models.MealPlan, error) {
	if violations := ValidatePlanStructure(input.Days); len(violations) > 0 {
		return nil, NewValidationError("invalid plan structure: %s", strings.Join(violations, "; "))
	}

	plan, err := s.loadPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan.Days = models.JSONBDays(orderDays(input.Days))
	if input.Preferences != nil {
		plan.Preferences = models.JSONBPreferences(*input.Preferences)
	}
	if input.NutritionSummary != nil {
		plan.NutritionSummary = models.JSONBNutrition(*input.NutritionSummary)
	}
	if input.Notes != nil {
		plan.Notes = *input.Notes
	}

	return s.finishMutation(ctx, plan)
}

// loadPlan fetches the user's plan for mutation; no plan is a not-found
// failure rather than the nil fetch-path result.
func (s *MealPlanService) loadPlan(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	plan, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return nil, NewNotFoundError("no meal plan exists for this user")
	}
	return plan, nil
}

// finishMutation runs the resolve -> synthesize -> persist tail shared by
// every mutation. The full recipe set is re-resolved and the whole list
// re-synthesized rather than patched incrementally.
func (s *MealPlanService) finishMutation(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error) {
	resolution, err := s.recipes.Resolve(ctx, collectRecipeIDs(plan.Days))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipes: %w", err)
	}

	list := SynthesizeShoppingList(plan.Days, resolution.Found)
	plan.ShoppingList = models.JSONBShoppingList(list)
	plan.TotalWeeklyCost = list.TotalCost
	plan.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	s.invalidateCache(ctx, plan.UserID)
	return plan, nil
}

// validateSlot checks that (day, mealType) names a legal slot, enumerating
// the legal sets in the failure message.
func validateSlot(day, mealType string) error {
	if !models.IsWeekday(day) {
		return NewValidationError("invalid day %q; must be one of %s", day, legalSet(models.Weekdays))
	}
	if !models.IsMealType(mealType) {
		return NewValidationError("invalid mealType %q; must be one of %s", mealType, legalSet(models.MealTypes))
	}
	return nil
}
