package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wisewallet/backend/internal/logger"
	"github.com/wisewallet/backend/internal/models"
)

const mealPlanSystemPrompt = `You are a budget-conscious meal planning assistant. Respond ONLY with a JSON object of this exact shape:
{
    "days": [
        {
            "day": "Monday",
            "meals": [
                {
                    "mealType": "breakfast",
                    "name": "Meal name",
                    "description": "One-sentence description",
                    "recipeId": "id from the catalog, or null for a custom meal",
                    "estimatedCalories": 400,
                    "estimatedCost": 3.50
                }
            ]
        }
    ],
    "nutritionSummary": {
        "averageDailyCalories": 2000,
        "proteinGrams": 90,
        "carbsGrams": 250,
        "fatGrams": 70
    },
    "notes": "Free-text advice for the week"
}

Rules:
- days MUST contain exactly 7 entries named Monday through Sunday, each exactly once.
- Each day MUST have 3 or 4 meals drawn from breakfast, lunch, dinner, snack, with no repeats within a day.
- Prefer recipeId values from the provided catalog; use null only when no catalog recipe fits.
- estimatedCalories and estimatedCost must be numbers, not strings.`

// generatedPlan is the shape expected back from the provider. Nothing beyond
// this shape is assumed; the structure is re-validated before use.
type generatedPlan struct {
	Days             []models.Day             `json:"days"`
	NutritionSummary *models.NutritionSummary `json:"nutritionSummary"`
	Notes            string                   `json:"notes"`
}

// MealPlanService orchestrates plan generation and mutation. It drives the
// generative provider, validates the untrusted output, resolves recipes,
// synthesizes the shopping list and persists the result. All collaborators
// are injected; the service holds no global state.
type MealPlanService struct {
	store    MealPlanStore
	recipes  *RecipeService
	provider TextGenerator
	cache    *Cache
	log      *logger.Logger
	timeout  time.Duration
}

// NewMealPlanService creates a new MealPlanService instance.
func NewMealPlanService(store MealPlanStore, recipes *RecipeService, provider TextGenerator, cache *Cache, log *logger.Logger, timeout time.Duration) *MealPlanService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MealPlanService{
		store:    store,
		recipes:  recipes,
		provider: provider,
		cache:    cache,
		log:      log,
		timeout:  timeout,
	}
}

// Generate produces and persists the user's first meal plan. The operation is
// atomic: nothing is written unless the provider output passed structural
// validation and the shopping list was synthesized. The synthesized total is
// authoritative; any total the provider reports is discarded.
func (s *MealPlanService) Generate(ctx context.Context, userID uuid.UUID, prefs models.MealPlanPreferences) (*models.MealPlan, error) {
	if prefs.CalorieGoal <= 0 {
		return nil, NewValidationError("calorieGoal must be a positive number")
	}

	existing, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing plan: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("a meal plan already exists for this user; update it instead of regenerating")
	}

	catalog, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.GenerateContent(genCtx, mealPlanSystemPrompt, buildMealPlanPrompt(prefs, catalog))
	if err != nil {
		return nil, AsError(err)
	}

	var gen generatedPlan
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		s.log.Error("provider returned unparseable plan", "error", err)
		return nil, NewInternalError("provider response is not valid plan JSON: %v", err)
	}

	violations := ValidatePlanStructure(gen.Days)
	if gen.NutritionSummary == nil {
		violations = append(violations, "missing nutrition summary")
	}
	if len(violations) > 0 {
		s.log.Error("generated plan violated structural invariants", "violations", violations)
		return nil, NewStructuralError(violations)
	}

	resolution, err := s.recipes.Resolve(ctx, collectRecipeIDs(gen.Days))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipes: %w", err)
	}
	list := SynthesizeShoppingList(gen.Days, resolution.Found)

	now := time.Now().UTC()
	plan := &models.MealPlan{
		ID:               uuid.New(),
		UserID:           userID,
		Preferences:      models.JSONBPreferences(prefs),
		Days:             models.JSONBDays(orderDays(gen.Days)),
		TotalWeeklyCost:  list.TotalCost,
		NutritionSummary: models.JSONBNutrition(*gen.NutritionSummary),
		ShoppingList:     models.JSONBShoppingList(list),
		Notes:            gen.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.Create(ctx, plan); err != nil {
		if err == ErrPlanExists {
			return nil, NewValidationError("a meal plan already exists for this user; update it instead of regenerating")
		}
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	s.invalidateCache(ctx, userID)
	s.log.Info("generated meal plan", "user_id", userID, "plan_id", plan.ID, "total_cost", plan.TotalWeeklyCost)
	return plan, nil
}

// Get returns the user's plan, or nil when none has been generated yet.
func (s *MealPlanService) Get(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	cacheKey := planCacheKey(userID)
	var cached models.MealPlan
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	plan, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan != nil {
		s.cache.Set(ctx, cacheKey, plan)
	}
	return plan, nil
}

// buildMealPlanPrompt embeds the user's preferences and a summary of the full
// recipe catalog so the provider can reference real catalog ids.
func buildMealPlanPrompt(prefs models.MealPlanPreferences, catalog []models.Recipe) string {
	var b strings.Builder
	b.WriteString("Create a 7-day meal plan for these preferences:\n")
	fmt.Fprintf(&b, "- Daily calorie goal: %d\n", prefs.CalorieGoal)
	if len(prefs.Allergies) > 0 {
		fmt.Fprintf(&b, "- Allergies (must avoid): %s\n", strings.Join(prefs.Allergies, ", "))
	}
	if prefs.DietType != "" {
		fmt.Fprintf(&b, "- Diet type: %s\n", prefs.DietType)
	}
	if prefs.CulturalPreference != "" {
		fmt.Fprintf(&b, "- Cultural preference: %s\n", prefs.CulturalPreference)
	}
	if prefs.Notes != "" {
		fmt.Fprintf(&b, "- Additional notes: %s\n", prefs.Notes)
	}

	b.WriteString("\nAvailable recipe catalog:\n")
	for _, r := range catalog {
		fmt.Fprintf(&b, "- id: %s | %s | tags: %s | cost: $%.2f | servings: %d\n",
			r.ID, r.Name, strings.Join(r.DietaryTags, ","), r.TotalCost, r.Servings)
	}
	return b.String()
}

// collectRecipeIDs gathers every non-nil recipe reference across the plan.
func collectRecipeIDs(days []models.Day) []string {
	var ids []string
	for _, day := range days {
		for _, meal := range day.Meals {
			if meal.RecipeID != nil && *meal.RecipeID != "" {
				ids = append(ids, *meal.RecipeID)
			}
		}
	}
	return ids
}

// orderDays returns the days sorted Monday-first regardless of the order the
// provider emitted them. Assumes the structure already validated.
func orderDays(days []models.Day) []models.Day {
	ordered := make([]models.Day, 0, len(days))
	for _, name := range models.Weekdays {
		for _, day := range days {
			if day.Day == name {
				ordered = append(ordered, day)
				break
			}
		}
	}
	if len(ordered) != len(days) {
		return days
	}
	return ordered
}

func planCacheKey(userID uuid.UUID) string {
	return "mealplan:user:" + userID.String()
}

func (s *MealPlanService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	s.cache.Delete(ctx, planCacheKey(userID))
}
