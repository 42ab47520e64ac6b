package handlers

import (
	"net/http"

	"franchise_supply_backend/internal/middleware"
	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler holds the cart service.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// AddCartItemRequest is the body for adding an item to the cart.
type AddCartItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartLineRequest is the body for patching a cart line. Nil fields are
// left unchanged.
type UpdateCartLineRequest struct {
	Quantity *int    `json:"quantity"`
	Note     *string `json:"note"`
}

// SubmitOrderRequest is the body for order submission.
type SubmitOrderRequest struct {
	Timeline string `json:"timeline"`
}

// GetCart handles fetching the current cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.GetCart(middleware.RestaurantID(c)))
}

// AddItem handles adding a catalog item to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	view, err := h.cartService.AddItem(middleware.RestaurantID(c), req.ItemID, req.Quantity)
	if err != nil {
		utils.LogError(err, "AddItem: Error from cartService.AddItem")
		respondServiceError(c, err, "Failed to add item to cart.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateLine handles quantity and note changes on one cart line.
func (h *CartHandler) UpdateLine(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("itemId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateLine: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	if req.Quantity == nil && req.Note == nil {
		utils.RespondValidationFailed(c, "at least one of quantity or note must be provided")
		return
	}

	restaurantID := middleware.RestaurantID(c)
	var view *models.CartView
	if req.Quantity != nil {
		view, err = h.cartService.UpdateQuantity(restaurantID, itemID, *req.Quantity)
		if err != nil {
			utils.LogError(err, "UpdateLine: Error from cartService.UpdateQuantity")
			respondServiceError(c, err, "Failed to update cart line.")
			return
		}
	}
	if req.Note != nil {
		view, err = h.cartService.SetLineNote(restaurantID, itemID, *req.Note)
		if err != nil {
			utils.LogError(err, "UpdateLine: Error from cartService.SetLineNote")
			respondServiceError(c, err, "Failed to update cart line.")
			return
		}
	}
	c.JSON(http.StatusOK, view)
}

// RemoveItem handles deleting one line from the cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("itemId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	view, err := h.cartService.RemoveItem(middleware.RestaurantID(c), itemID)
	if err != nil {
		utils.LogError(err, "RemoveItem: Error from cartService.RemoveItem")
		respondServiceError(c, err, "Failed to remove item from cart.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit handles the two-phase order submission. The first call answers with
// confirming=true and persists nothing; the second call creates the requests.
func (h *CartHandler) Submit(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Submit: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	result, err := h.cartService.SubmitOrder(middleware.RestaurantID(c), req.Timeline)
	if err != nil {
		utils.LogError(err, "Submit: Error from cartService.SubmitOrder")
		respondServiceError(c, err, "Failed to submit order.")
		return
	}
	if result.Confirming {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}
