package services

import (
	"fmt"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"
)

// OverviewService derives the dashboard summary from the other components'
// current state. Nothing is stored; every read recomputes. The notice order
// is a contract the overview page relies on: pending orders first, then the
// latest billing amount, then system notices.
type OverviewService interface {
	GetOverview(restaurantID int64) (*models.Overview, error)
}

type overviewService struct {
	requestRepo repositories.RequestRepository
	billing     BillingService
}

// NewOverviewService creates a new instance of OverviewService.
func NewOverviewService(rr repositories.RequestRepository, bs BillingService) OverviewService {
	return &overviewService{requestRepo: rr, billing: bs}
}

func (s *overviewService) GetOverview(restaurantID int64) (*models.Overview, error) {
	pending, err := s.requestRepo.GetRequests(models.RequestFilters{
		RestaurantID: &restaurantID,
		Statuses:     []string{StatusPending},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}

	statements, err := s.billing.GetMonthlyStatements(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing statements: %w", err)
	}

	overview := &models.Overview{PendingOrders: len(pending)}

	// Statements come back newest month first.
	if len(statements) > 0 {
		recent := "$" + statements[0].TotalAmount.StringFixed(2)
		overview.RecentBilling = &recent
	}

	if overview.PendingOrders > 0 {
		overview.Notifications = append(overview.Notifications,
			fmt.Sprintf("You have %d pending order(s).", overview.PendingOrders))
	}
	if overview.RecentBilling != nil {
		overview.Notifications = append(overview.Notifications,
			fmt.Sprintf("Your most recent billing amount is %s.", *overview.RecentBilling))
	}
	overview.Notifications = append(overview.Notifications,
		"New feature: Dark mode is now available!")

	return overview, nil
}
