package middleware

import (
	"net/http"

	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const restaurantIDKey = "restaurantID"

// RestaurantScope parses the :restaurantId path parameter and stores it in
// the request context. Every core operation is scoped to an explicit
// restaurant identity; there is no implicit "current restaurant".
func RestaurantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("restaurantId")
		restaurantID, err := utils.StrToInt64(idStr)
		if err != nil || restaurantID <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
				"Invalid restaurant ID in path.", "restaurantId must be a positive integer"))
			return
		}
		c.Set(restaurantIDKey, restaurantID)
		c.Next()
	}
}

// RestaurantID returns the restaurant identity set by RestaurantScope.
func RestaurantID(c *gin.Context) int64 {
	return c.GetInt64(restaurantIDKey)
}
