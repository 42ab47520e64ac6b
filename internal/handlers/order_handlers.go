package handlers

import (
	"errors"
	"net/http"

	"franchise_supply_backend/internal/middleware"
	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the lifecycle service.
type OrderHandler struct {
	lifecycleService services.LifecycleService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(ls services.LifecycleService) *OrderHandler {
	return &OrderHandler{lifecycleService: ls}
}

// ConfirmOrderRequest is the body for delivery confirmation.
type ConfirmOrderRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

// FlagOrderRequest is the body for flag toggling. Note is required only when
// the toggle raises the flag; the service enforces that.
type FlagOrderRequest struct {
	Note string `json:"note"`
}

// NoteRequest is the body for note attachment.
type NoteRequest struct {
	Note string `json:"note"`
}

// GetOrders handles fetching one of the three order views:
// pending (default), past, or reported.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var orders []models.InventoryRequest
	var err error
	view := c.DefaultQuery("view", "pending")
	switch view {
	case "pending":
		orders, err = h.lifecycleService.GetPendingOrders(restaurantID)
	case "past":
		orders, err = h.lifecycleService.GetPastOrders(restaurantID)
	case "reported":
		orders, err = h.lifecycleService.GetReportedOrders(restaurantID)
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid view parameter.", "view must be one of pending, past, reported"))
		return
	}
	if err != nil {
		utils.LogError(err, "GetOrders: Error fetching "+view+" orders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}

	if orders == nil {
		orders = []models.InventoryRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"data": orders, "view": view})
}

// ConfirmOrder handles floor-staff delivery confirmation.
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ConfirmOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	updated, err := h.lifecycleService.ConfirmDelivery(middleware.RestaurantID(c), requestID, req.EmployeeID)
	if err != nil {
		utils.LogError(err, "ConfirmOrder: Error from lifecycleService.ConfirmDelivery")
		respondServiceError(c, err, "Failed to confirm delivery.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// FlagOrder handles toggling the problem flag on an order.
func (h *OrderHandler) FlagOrder(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req FlagOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "FlagOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	updated, err := h.lifecycleService.ToggleFlag(middleware.RestaurantID(c), requestID, req.Note)
	if err != nil {
		utils.LogError(err, "FlagOrder: Error from lifecycleService.ToggleFlag")
		respondServiceError(c, err, "Failed to toggle flag.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateNote handles replacing the note on an order.
func (h *OrderHandler) UpdateNote(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateNote: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	updated, err := h.lifecycleService.AttachNote(middleware.RestaurantID(c), requestID, req.Note)
	if err != nil {
		utils.LogError(err, "UpdateNote: Error from lifecycleService.AttachNote")
		respondServiceError(c, err, "Failed to update note.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SendNote handles escalating the attached note to the admin reported list.
func (h *OrderHandler) SendNote(c *gin.Context) {
	requestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	updated, err := h.lifecycleService.SendNoteToAdmin(middleware.RestaurantID(c), requestID)
	if err != nil {
		utils.LogError(err, "SendNote: Error from lifecycleService.SendNoteToAdmin")
		respondServiceError(c, err, "Failed to send note to admin.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// parseIDParam reads the :id path parameter, responding with a validation
// error itself when the value is malformed.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// respondServiceError maps service-layer errors onto API error responses.
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, message, err.Error()))
	case errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrStatementNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, message, err.Error()))
	case errors.Is(err, services.ErrInvalidRequestStatus):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, message, err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, message, "Internal error"))
	}
}
