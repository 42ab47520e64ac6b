package services

import (
	"testing"
	"time"

	"franchise_supply_backend/internal/models"

	"github.com/shopspring/decimal"
)

func newOverviewFixture() (*fakeRequestRepo, OverviewService) {
	requestRepo := newFakeRequestRepo()
	restaurantRepo := newFakeRestaurantRepo(models.Restaurant{ID: 7, Name: "Northside Grill", Location: "12 Main St"})
	billing := NewBillingService(requestRepo, restaurantRepo, decimal.NewFromInt(5), time.UTC, 30)
	return requestRepo, NewOverviewService(requestRepo, billing)
}

func TestOverviewNoticeOrdering(t *testing.T) {
	requestRepo, svc := newOverviewFixture()

	seedRequest(requestRepo, 7, StatusPending, PendingStatusNotConfirmed, time.Now().UTC())
	seedRequest(requestRepo, 7, StatusPending, PendingStatusNotConfirmed, time.Now().UTC())
	seedBillable(requestRepo, 7, "Item A", 2, "10.00", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))

	overview, err := svc.GetOverview(7)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.PendingOrders != 2 {
		t.Fatalf("pending orders = %d, want 2", overview.PendingOrders)
	}
	if overview.RecentBilling == nil || *overview.RecentBilling != "$20.00" {
		t.Fatalf("recent billing = %v, want $20.00", overview.RecentBilling)
	}

	want := []string{
		"You have 2 pending order(s).",
		"Your most recent billing amount is $20.00.",
		"New feature: Dark mode is now available!",
	}
	if len(overview.Notifications) != len(want) {
		t.Fatalf("notifications = %v, want %v", overview.Notifications, want)
	}
	for i := range want {
		if overview.Notifications[i] != want[i] {
			t.Fatalf("notification %d = %q, want %q", i, overview.Notifications[i], want[i])
		}
	}
}

func TestOverviewRecentBillingPicksLatestMonth(t *testing.T) {
	requestRepo, svc := newOverviewFixture()

	seedBillable(requestRepo, 7, "Item A", 1, "10.00", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	seedBillable(requestRepo, 7, "Item B", 3, "5.00", time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC))

	overview, err := svc.GetOverview(7)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.RecentBilling == nil || *overview.RecentBilling != "$15.00" {
		t.Fatalf("recent billing = %v, want the April amount $15.00", overview.RecentBilling)
	}
}

func TestOverviewEmptyState(t *testing.T) {
	_, svc := newOverviewFixture()

	overview, err := svc.GetOverview(7)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.PendingOrders != 0 {
		t.Fatalf("pending orders = %d, want 0", overview.PendingOrders)
	}
	if overview.RecentBilling != nil {
		t.Fatalf("recent billing = %v, want nil", *overview.RecentBilling)
	}
	if len(overview.Notifications) != 1 || overview.Notifications[0] != "New feature: Dark mode is now available!" {
		t.Fatalf("empty overview must still carry the system notice: %v", overview.Notifications)
	}
}
