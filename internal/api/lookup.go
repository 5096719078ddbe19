package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/service"
)

// LookupHandler serves the events and fuel-station read paths.
type LookupHandler struct {
	lookup *service.LookupService
}

func NewLookupHandler(lookup *service.LookupService) *LookupHandler {
	return &LookupHandler{lookup: lookup}
}

func (h *LookupHandler) Events(c *gin.Context) {
	events, err := h.lookup.ListEvents(c.Request.Context(), c.Query("city"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *LookupHandler) FuelStations(c *gin.Context) {
	stations, err := h.lookup.ListFuelStations(c.Request.Context(), c.Query("city"), c.Query("fuelType"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}
