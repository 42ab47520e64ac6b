package handlers

import (
	"net/http"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// itemResponse is a catalog item plus the rendered cut-off label the
// marketplace page shows.
type itemResponse struct {
	models.Item
	CutOffLabel string `json:"cut_off_label"`
}

// GetItems handles listing the orderable catalog, with optional name search.
func (h *CatalogHandler) GetItems(c *gin.Context) {
	items, err := h.catalogService.GetItems(c.Query("search"))
	if err != nil {
		utils.LogError(err, "GetItems: Error from catalogService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch catalog items.", "Internal error"))
		return
	}

	responses := make([]itemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemResponse{
			Item:        item,
			CutOffLabel: services.FormatCutOff(item.CutOffDay, item.CutOffTime),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": responses})
}
