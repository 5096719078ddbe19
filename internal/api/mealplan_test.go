package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisewallet/backend/internal/api"
	"github.com/wisewallet/backend/internal/logger"
	"github.com/wisewallet/backend/internal/middleware"
	"github.com/wisewallet/backend/internal/models"
	"github.com/wisewallet/backend/internal/router"
	"github.com/wisewallet/backend/internal/service"
	"github.com/wisewallet/backend/internal/testutil"
)

// fakeGenerator returns a canned provider response.
type fakeGenerator struct {
	response string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	return f.response, nil
}

// staticValidator accepts exactly one token and maps it to a fixed user.
type staticValidator struct {
	token  string
	userID uuid.UUID
}

func (v *staticValidator) ValidateToken(token string) (*service.TokenClaims, error) {
	if token != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return &service.TokenClaims{UserID: v.userID, Email: "test@example.com"}, nil
}

func plannerResponse(t *testing.T) string {
	t.Helper()
	type meal struct {
		MealType          string  `json:"mealType"`
		Name              string  `json:"name"`
		RecipeID          *string `json:"recipeId"`
		EstimatedCalories int     `json:"estimatedCalories"`
		EstimatedCost     float64 `json:"estimatedCost"`
	}
	type day struct {
		Day   string `json:"day"`
		Meals []meal `json:"meals"`
	}
	oats := "oats"
	days := make([]day, 0, 7)
	for _, name := range models.Weekdays {
		days = append(days, day{Day: name, Meals: []meal{
			{MealType: "breakfast", Name: "Banana Oatmeal", RecipeID: &oats, EstimatedCalories: 420, EstimatedCost: 0.75},
			{MealType: "lunch", Name: "Leftovers", EstimatedCalories: 400, EstimatedCost: 2.00},
			{MealType: "dinner", Name: "Tuna Sandwich", RecipeID: ref("tuna"), EstimatedCalories: 500, EstimatedCost: 1.40},
		}})
	}
	payload := map[string]interface{}{
		"days": days,
		"nutritionSummary": map[string]interface{}{
			"averageDailyCalories": 1320,
			"proteinGrams":         80,
			"carbsGrams":           160,
			"fatGrams":             50,
		},
		"notes": "Shop on Saturday.",
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func ref(s string) *string { return &s }

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupDB(t)
	testutil.SeedRecipes(t, db,
		models.Recipe{
			ID:   "oats",
			Name: "Banana Oatmeal",
			Ingredients: models.JSONBIngredients{
				{Name: "rolled oats", Quantity: 80, Unit: "g", Price: 0.45, Source: "Aldi"},
				{Name: "banana", Quantity: 1, Unit: "pc", Price: 0.30, Source: "Aldi"},
			},
			TotalCost: 0.75,
		},
		models.Recipe{
			ID:   "tuna",
			Name: "Tuna Sandwich",
			Ingredients: models.JSONBIngredients{
				{Name: "canned tuna", Quantity: 1, Unit: "can", Price: 1.10, Source: "Walmart"},
				{Name: "bread", Quantity: 2, Unit: "slice", Price: 0.30, Source: "Aldi"},
			},
			TotalCost: 1.40,
		},
	)

	log := logger.NewNop()
	cache := service.NewCache(nil, 0)
	provider := &fakeGenerator{response: plannerResponse(t)}

	recipes := service.NewRecipeService(db, log)
	store := service.NewMealPlanStore(db)
	plans := service.NewMealPlanService(store, recipes, provider, cache, log, time.Second)
	export := service.NewExportService(nil, store)
	auth := service.NewAuthService(db, "test-secret")

	validator := &staticValidator{token: "good-token", userID: uuid.New()}
	limiter := middleware.NewRateLimiter(nil, middleware.RateLimitConfig{Limit: 5, Window: time.Minute})

	engine := router.Setup(router.Handlers{
		Auth:     api.NewAuthHandler(auth),
		MealPlan: api.NewMealPlanHandler(plans, export),
		Recipe:   api.NewRecipeHandler(recipes),
		Chat:     api.NewChatHandler(service.NewChatService(provider, time.Second)),
		Profile:  api.NewProfileHandler(service.NewProfileService(db)),
		Lookup:   api.NewLookupHandler(service.NewLookupService(db, cache)),
	}, validator, limiter)

	return engine, "good-token"
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func generateBody() map[string]interface{} {
	return map[string]interface{}{
		"preferences": map[string]interface{}{
			"allergies":   []string{"peanuts"},
			"calorieGoal": 2000,
			"dietType":    "omnivore",
		},
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) api.ErrorEnvelope {
	t.Helper()
	var env api.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGenerateEndpoint(t *testing.T) {
	engine, token := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Message  string          `json:"message"`
		PlanID   uuid.UUID       `json:"planId"`
		MealPlan models.MealPlan `json:"mealPlan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "meal plan generated", resp.Message)
	assert.NotEqual(t, uuid.Nil, resp.PlanID)
	assert.Len(t, []models.Day(resp.MealPlan.Days), 7)
	assert.Greater(t, resp.MealPlan.TotalWeeklyCost, 0.0)
	assert.Equal(t, resp.MealPlan.ShoppingList.TotalCost, resp.MealPlan.TotalWeeklyCost)
}

func TestGenerateTwiceIsRejected(t *testing.T) {
	engine, token := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "validation_error", env.Error)
	assert.False(t, env.Retryable)
}

func TestGetPlanBeforeGenerate(t *testing.T) {
	engine, token := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["mealPlan"]))
}

func TestAddMealEndpoint(t *testing.T) {
	engine, token := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/meals", token, map[string]string{
		"day": "Monday", "mealType": "snack", "recipeId": "tuna",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		MealPlan models.MealPlan `json:"mealPlan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	monday := resp.MealPlan.FindDay("Monday")
	require.NotNil(t, monday)
	assert.Len(t, monday.Meals, 4)
}

func TestAddMealRejectsBadSlot(t *testing.T) {
	engine, token := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/meals", token, map[string]string{
		"day": "Monday", "mealType": "brunch", "recipeId": "tuna",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "validation_error", env.Error)
	assert.Contains(t, env.Message, `invalid mealType "brunch"`)
}

func TestRemoveMealFromEmptySlot(t *testing.T) {
	engine, token := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/meal-plan/meals", token, map[string]string{
		"day": "Friday", "mealType": "snack",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "not_found", env.Error)
	assert.Contains(t, env.Message, "no snack meal on Friday")
}

func TestExportWithoutStorageConfigured(t *testing.T) {
	engine, token := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/generate", token, generateBody())

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/shopping-list/export", token, nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "service_unavailable", env.Error)
	assert.True(t, env.Retryable)
}

func TestMealPlanRequiresAuth(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan", "wrong-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeEndpoints(t *testing.T) {
	engine, token := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Recipes, 2)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/oats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/ghost", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "not_found", env.Error)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/recipes/search?q=tuna", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Recipes, 1)
}
