package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/middleware"
	"github.com/wisewallet/backend/internal/models"
	"github.com/wisewallet/backend/internal/service"
)

// MealPlanHandler exposes the meal-plan engine over HTTP.
type MealPlanHandler struct {
	plans  *service.MealPlanService
	export *service.ExportService
}

// NewMealPlanHandler creates a new MealPlanHandler instance.
func NewMealPlanHandler(plans *service.MealPlanService, export *service.ExportService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, export: export}
}

type generateRequest struct {
	Preferences models.MealPlanPreferences `json:"preferences" binding:"required"`
}

// Generate creates the user's first plan from their preferences.
func (h *MealPlanHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}
	if req.Preferences.Allergies == nil {
		req.Preferences.Allergies = []string{}
	}

	plan, err := h.plans.Generate(c.Request.Context(), userID, req.Preferences)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "meal plan generated",
		"planId":   plan.ID,
		"mealPlan": plan,
	})
}

// Get returns the user's plan, or mealPlan: null when none exists.
func (h *MealPlanHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plan, err := h.plans.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}

type updatePlanRequest struct {
	MealPlan struct {
		Days             []models.Day                `json:"days" binding:"required"`
		Preferences      *models.MealPlanPreferences `json:"preferences"`
		NutritionSummary *models.NutritionSummary    `json:"nutritionSummary"`
		Notes            *string                     `json:"notes"`
	} `json:"mealPlan" binding:"required"`
}

// Update bulk-replaces the plan's day structure.
func (h *MealPlanHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}

	plan, err := h.plans.UpdatePlan(c.Request.Context(), userID, service.UpdatePlanInput{
		Days:             req.MealPlan.Days,
		Preferences:      req.MealPlan.Preferences,
		NutritionSummary: req.MealPlan.NutritionSummary,
		Notes:            req.MealPlan.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "meal plan updated",
		"mealPlan": plan,
	})
}

type addMealRequest struct {
	Day      string `json:"day" binding:"required"`
	MealType string `json:"mealType" binding:"required"`
	RecipeID string `json:"recipeId" binding:"required"`
}

// AddMeal fills or replaces a single (day, mealType) slot.
func (h *MealPlanHandler) AddMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}

	plan, err := h.plans.AddMeal(c.Request.Context(), userID, req.Day, req.MealType, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "meal added",
		"mealPlan": plan,
	})
}

type removeMealRequest struct {
	Day      string `json:"day" binding:"required"`
	MealType string `json:"mealType" binding:"required"`
}

// RemoveMeal clears a single (day, mealType) slot.
func (h *MealPlanHandler) RemoveMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req removeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}

	plan, err := h.plans.RemoveMeal(c.Request.Context(), userID, req.Day, req.MealType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "meal removed",
		"mealPlan": plan,
	})
}

// ExportShoppingList uploads the current list and returns a download URL.
func (h *MealPlanHandler) ExportShoppingList(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	url, err := h.export.ExportShoppingList(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
