package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisewallet/backend/internal/models"
)

// generateBasePlan seeds a user with the stock stub plan: oats breakfast,
// custom lunch, chicken dinner on every day, snack slot free.
func generateBasePlan(t *testing.T) (*MealPlanService, uuid.UUID, *models.MealPlan) {
	t.Helper()
	stub := &stubGenerator{response: providerResponse(t)}
	svc, _ := newPlanService(t, stub)
	userID := uuid.New()

	plan, err := svc.Generate(context.Background(), userID, basePrefs())
	require.NoError(t, err)
	return svc, userID, plan
}

func storeByName(t *testing.T, list models.JSONBShoppingList, name string) *models.StoreGroup {
	t.Helper()
	for i := range list.Stores {
		if list.Stores[i].StoreName == name {
			return &list.Stores[i]
		}
	}
	return nil
}

func TestAddMealFillsEmptySlot(t *testing.T) {
	svc, userID, before := generateBasePlan(t)

	plan, err := svc.AddMeal(context.Background(), userID, "Monday", "snack", "tuna")
	require.NoError(t, err)

	monday := plan.FindDay("Monday")
	require.NotNil(t, monday)
	require.Len(t, monday.Meals, 4)
	assert.Equal(t, "snack", monday.Meals[3].MealType)
	assert.Equal(t, "Tuna Sandwich", monday.Meals[3].Name)
	require.NotNil(t, monday.Meals[3].RecipeID)
	assert.Equal(t, "tuna", *monday.Meals[3].RecipeID)

	// The sandwich's ingredients joined the list and the totals still agree.
	walmart := storeByName(t, plan.ShoppingList, "Walmart")
	require.NotNil(t, walmart)
	assert.Equal(t, "canned tuna", walmart.Items[0].Name)
	assert.Equal(t, plan.ShoppingList.TotalCost, plan.TotalWeeklyCost)
	assert.InDelta(t, before.TotalWeeklyCost+1.40, plan.TotalWeeklyCost, 1e-9)
}

func TestAddMealReplacesOccupiedSlot(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	plan, err := svc.AddMeal(context.Background(), userID, "Monday", "breakfast", "tuna")
	require.NoError(t, err)

	monday := plan.FindDay("Monday")
	require.NotNil(t, monday)
	require.Len(t, monday.Meals, 3)
	assert.Equal(t, "Tuna Sandwich", monday.Meals[0].Name)

	// Monday's oats are gone, so rolled oats aggregate over six days only.
	aldi := storeByName(t, plan.ShoppingList, "Aldi")
	require.NotNil(t, aldi)
	for _, item := range aldi.Items {
		if item.Name == "rolled oats" {
			assert.InDelta(t, 480, item.Quantity, 1e-9)
		}
	}
	assert.Equal(t, plan.ShoppingList.TotalCost, plan.TotalWeeklyCost)
}

func TestAddMealUnknownRecipe(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	_, err := svc.AddMeal(context.Background(), userID, "Monday", "snack", "ghost")

	svcErr := requireKind(t, err, KindNotFound)
	assert.Contains(t, svcErr.Message, `recipe "ghost" not found`)
}

func TestAddMealInvalidSlot(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	_, err := svc.AddMeal(context.Background(), userID, "Funday", "snack", "tuna")
	svcErr := requireKind(t, err, KindValidation)
	assert.Contains(t, svcErr.Message, `invalid day "Funday"`)
	assert.Contains(t, svcErr.Message, "Monday")

	_, err = svc.AddMeal(context.Background(), userID, "Monday", "brunch", "tuna")
	svcErr = requireKind(t, err, KindValidation)
	assert.Contains(t, svcErr.Message, `invalid mealType "brunch"`)
	assert.Contains(t, svcErr.Message, "snack")
}

func TestAddMealWithoutPlan(t *testing.T) {
	svc, _ := newPlanService(t, &stubGenerator{})

	_, err := svc.AddMeal(context.Background(), uuid.New(), "Monday", "snack", "tuna")

	requireKind(t, err, KindNotFound)
}

func TestRemoveMealEmptySlot(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	_, err := svc.RemoveMeal(context.Background(), userID, "Tuesday", "snack")

	svcErr := requireKind(t, err, KindNotFound)
	assert.Contains(t, svcErr.Message, "no snack meal on Tuesday")
}

func TestRemoveMealBelowMinimum(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	_, err := svc.RemoveMeal(context.Background(), userID, "Monday", "lunch")

	svcErr := requireKind(t, err, KindValidation)
	assert.Contains(t, svcErr.Message, "needs 3-4")
}

func TestAddThenRemoveRoundTrips(t *testing.T) {
	svc, userID, before := generateBasePlan(t)

	_, err := svc.AddMeal(context.Background(), userID, "Wednesday", "snack", "tuna")
	require.NoError(t, err)

	after, err := svc.RemoveMeal(context.Background(), userID, "Wednesday", "snack")
	require.NoError(t, err)

	assert.Equal(t, before.Days, after.Days)
	assert.Equal(t, before.ShoppingList, after.ShoppingList)
	assert.Equal(t, before.TotalWeeklyCost, after.TotalWeeklyCost)
}

func TestUpdatePlanReplacesStructure(t *testing.T) {
	svc, userID, _ := generateBasePlan(t)

	days := make([]models.Day, 0, 7)
	for _, name := range models.Weekdays {
		days = append(days, models.Day{
			Day: name,
			Meals: []models.Meal{
				{MealType: "breakfast", Name: "Banana Oatmeal", RecipeID: ref("oats"), EstimatedCost: 0.75},
				{MealType: "lunch", Name: "Packed lunch", EstimatedCost: 3.00},
				{MealType: "dinner", Name: "Tuna Sandwich", RecipeID: ref("tuna"), EstimatedCost: 1.40},
			},
		})
	}
	notes := "Lighter week."

	plan, err := svc.UpdatePlan(context.Background(), userID, UpdatePlanInput{
		Days:  days,
		Notes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lighter week.", plan.Notes)
	assert.Equal(t, plan.ShoppingList.TotalCost, plan.TotalWeeklyCost)
	// 7 x (oats 0.75 + tuna 1.40) itemized plus 7 x 3.00 custom.
	assert.InDelta(t, 36.05, plan.TotalWeeklyCost, 1e-9)

	// The displaced chicken dinners left no residue in the list.
	assert.Nil(t, storeByName(t, plan.ShoppingList, "Costco"))
}

func TestUpdatePlanRejectsInvalidStructure(t *testing.T) {
	svc, userID, before := generateBasePlan(t)

	days := []models.Day{{Day: "Monday", Meals: []models.Meal{{MealType: "breakfast"}}}}

	_, err := svc.UpdatePlan(context.Background(), userID, UpdatePlanInput{Days: days})
	svcErr := requireKind(t, err, KindValidation)
	assert.Contains(t, svcErr.Message, "expected 7 days, got 1")

	// The stored plan is untouched.
	current, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, before.Days, current.Days)
}
