package router

import (
	"database/sql"
	"time"

	"franchise_supply_backend/internal/handlers"
	"franchise_supply_backend/internal/middleware"
	"franchise_supply_backend/internal/repositories"
	"franchise_supply_backend/internal/services"
	"franchise_supply_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	itemRepo := repositories.NewItemRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	requestRepo := repositories.NewRequestRepository(db)

	// Billing configuration. Tax rate and reporting month boundary were
	// hardcoded in earlier iterations of the product; both are env-driven now.
	taxPercent, err := decimal.NewFromString(utils.Getenv("BILLING_TAX_PERCENT", "5"))
	if err != nil {
		utils.LogError(err, "Invalid BILLING_TAX_PERCENT, falling back to 5")
		taxPercent = decimal.NewFromInt(5)
	}
	reportingZone, err := time.LoadLocation(utils.Getenv("BILLING_TIMEZONE", "America/Edmonton"))
	if err != nil {
		utils.LogError(err, "Invalid BILLING_TIMEZONE, falling back to UTC")
		reportingZone = time.UTC
	}
	dueDays := utils.GetenvInt("INVOICE_DUE_DAYS", 30)

	// Initialize Services
	catalogService := services.NewCatalogService(itemRepo)
	cartService := services.NewCartService(itemRepo, restaurantRepo, requestRepo)
	lifecycleService := services.NewLifecycleService(requestRepo)
	billingService := services.NewBillingService(requestRepo, restaurantRepo, taxPercent, reportingZone, dueDays)
	overviewService := services.NewOverviewService(requestRepo, billingService)

	// Initialize Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(lifecycleService)
	billingHandler := handlers.NewBillingHandler(billingService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)

	apiV1 := engine.Group("/api/v1")

	restaurantScoped := apiV1.Group("/restaurants/:restaurantId")
	restaurantScoped.Use(middleware.RestaurantScope())
	{
		SetupCatalogRoutes(restaurantScoped, catalogHandler)
		SetupCartRoutes(restaurantScoped, cartHandler)
		SetupOrderRoutes(restaurantScoped, orderHandler)
		SetupBillingRoutes(restaurantScoped, billingHandler)
		SetupOverviewRoutes(restaurantScoped, overviewHandler)
	}
}
