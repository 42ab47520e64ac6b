package handlers

import (
	"net/http"

	"franchise_supply_backend/internal/middleware"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OverviewHandler holds the overview service.
type OverviewHandler struct {
	overviewService services.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(os services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: os}
}

// GetOverview handles fetching the dashboard summary and ordered notices.
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewService.GetOverview(middleware.RestaurantID(c))
	if err != nil {
		utils.LogError(err, "GetOverview: Error from overviewService.GetOverview")
		respondServiceError(c, err, "Failed to fetch overview.")
		return
	}
	c.JSON(http.StatusOK, overview)
}
