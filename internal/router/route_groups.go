package router

import (
	"franchise_supply_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the catalog browsing routes.
func SetupCatalogRoutes(group *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	group.GET("/items", catalogHandler.GetItems)
}

// SetupCartRoutes sets up the cart and order submission routes.
func SetupCartRoutes(group *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cartRoutes := group.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PATCH("/items/:itemId", cartHandler.UpdateLine)
		cartRoutes.DELETE("/items/:itemId", cartHandler.RemoveItem)
		cartRoutes.POST("/submit", cartHandler.Submit)
	}
}

// SetupOrderRoutes sets up the order lifecycle routes.
func SetupOrderRoutes(group *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := group.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.POST("/:id/confirm", orderHandler.ConfirmOrder)
		orderRoutes.POST("/:id/flag", orderHandler.FlagOrder)
		orderRoutes.PUT("/:id/note", orderHandler.UpdateNote)
		orderRoutes.POST("/:id/note/send", orderHandler.SendNote)
	}
}

// SetupBillingRoutes sets up the billing and invoice routes.
func SetupBillingRoutes(group *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billingRoutes := group.Group("/billing")
	{
		billingRoutes.GET("", billingHandler.GetStatements)
		billingRoutes.GET("/:year/:month/invoice", billingHandler.GetInvoice)
	}
}

// SetupOverviewRoutes sets up the dashboard overview route.
func SetupOverviewRoutes(group *gin.RouterGroup, overviewHandler *handlers.OverviewHandler) {
	group.GET("/overview", overviewHandler.GetOverview)
}
