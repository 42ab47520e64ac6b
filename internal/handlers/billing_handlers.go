package handlers

import (
	"net/http"
	"strconv"
	"time"

	"franchise_supply_backend/internal/middleware"
	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BillingHandler holds the billing service.
type BillingHandler struct {
	billingService services.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: bs}
}

// GetStatements handles fetching the monthly billing statements.
func (h *BillingHandler) GetStatements(c *gin.Context) {
	statements, err := h.billingService.GetMonthlyStatements(middleware.RestaurantID(c))
	if err != nil {
		utils.LogError(err, "GetStatements: Error from billingService.GetMonthlyStatements")
		respondServiceError(c, err, "Failed to fetch billing statements.")
		return
	}
	if statements == nil {
		statements = []models.MonthlyStatement{}
	}
	c.JSON(http.StatusOK, gin.H{"data": statements})
}

// GetInvoice handles generating the printable invoice for one calendar month.
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid year format.", "year must be a positive integer"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid month format.", "month must be between 1 and 12"))
		return
	}

	invoice, err := h.billingService.GenerateInvoice(middleware.RestaurantID(c), year, time.Month(month))
	if err != nil {
		utils.LogError(err, "GetInvoice: Error from billingService.GenerateInvoice")
		respondServiceError(c, err, "Failed to generate invoice.")
		return
	}
	c.JSON(http.StatusOK, invoice)
}
