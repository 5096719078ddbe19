package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/middleware"
	"github.com/wisewallet/backend/internal/models"
	"github.com/wisewallet/backend/internal/service"
)

// ProfileHandler handles the profile read/write paths.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type updateProfileRequest struct {
	DisplayName     string   `json:"displayName"`
	City            string   `json:"city"`
	MonthlyBudget   float64  `json:"monthlyBudget"`
	HouseholdSize   int      `json:"householdSize"`
	PreferredStores []string `json:"preferredStores"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}

	profile, err := h.profiles.UpsertProfile(c.Request.Context(), userID, &models.UserProfile{
		DisplayName:     req.DisplayName,
		City:            req.City,
		MonthlyBudget:   req.MonthlyBudget,
		HouseholdSize:   req.HouseholdSize,
		PreferredStores: models.JSONBStrings(req.PreferredStores),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
