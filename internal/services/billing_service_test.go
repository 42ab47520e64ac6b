package services

import (
	"errors"
	"testing"
	"time"

	"franchise_supply_backend/internal/models"

	"github.com/shopspring/decimal"
)

func seedBillable(repo *fakeRequestRepo, restaurantID int64, itemName string, quantity int, unitCost string, createdAt time.Time) models.InventoryRequest {
	return repo.seed(models.InventoryRequest{
		RestaurantID:  restaurantID,
		ItemID:        1,
		ItemName:      itemName,
		Quantity:      quantity,
		Unit:          "case",
		CostPerUnit:   dec(unitCost),
		Status:        StatusAccepted,
		PendingStatus: PendingStatusConfirmed,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	})
}

func newBillingFixture() (*fakeRequestRepo, *fakeRestaurantRepo, BillingService) {
	requestRepo := newFakeRequestRepo()
	restaurantRepo := newFakeRestaurantRepo(models.Restaurant{ID: 7, Name: "Northside Grill", Location: "12 Main St"})
	svc := NewBillingService(requestRepo, restaurantRepo, decimal.NewFromInt(5), time.UTC, 30)
	return requestRepo, restaurantRepo, svc
}

func TestMonthlyStatementsAndInvoiceScenario(t *testing.T) {
	requestRepo, _, svc := newBillingFixture()

	seedBillable(requestRepo, 7, "Item A", 2, "10.00", time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC))
	marchLatest := seedBillable(requestRepo, 7, "Item B", 3, "5.00", time.Date(2026, time.March, 20, 10, 0, 0, 0, time.UTC))
	seedBillable(requestRepo, 7, "Item A", 1, "10.00", time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC))

	statements, err := svc.GetMonthlyStatements(7)
	if err != nil {
		t.Fatalf("statements: %v", err)
	}
	if len(statements) != 2 {
		t.Fatalf("want one statement per month, got %d", len(statements))
	}

	// Newest month first.
	april, march := statements[0], statements[1]
	if april.Month != time.April || march.Month != time.March {
		t.Fatalf("statement order wrong: %v then %v", april.Period, march.Period)
	}
	if !april.TotalAmount.Equal(dec("10")) {
		t.Fatalf("april total = %s, want 10", april.TotalAmount)
	}
	if !march.TotalAmount.Equal(dec("35")) {
		t.Fatalf("march total = %s, want 35", march.TotalAmount)
	}
	if len(march.Items) != 2 {
		t.Fatalf("march must merge both requests, got %d lines", len(march.Items))
	}
	if march.ID != marchLatest.ID {
		t.Fatalf("statement id must be the first request id encountered, got %d want %d", march.ID, marchLatest.ID)
	}

	invoice, err := svc.GenerateInvoice(7, 2026, time.March)
	if err != nil {
		t.Fatalf("invoice: %v", err)
	}
	if invoice.Subtotal != "35.00" || invoice.TaxAmount != "1.75" || invoice.Total != "36.75" {
		t.Fatalf("invoice math wrong: subtotal=%s tax=%s total=%s", invoice.Subtotal, invoice.TaxAmount, invoice.Total)
	}
	if invoice.InvoiceNumber != march.ID {
		t.Fatalf("invoice number = %d, want statement id %d", invoice.InvoiceNumber, march.ID)
	}
	if invoice.RestaurantName != "Northside Grill" || invoice.RestaurantLocation != "12 Main St" {
		t.Fatalf("restaurant identity wrong: %+v", invoice)
	}
	if !invoice.DueDate.Equal(invoice.InvoiceDate.AddDate(0, 0, 30)) {
		t.Fatal("due date must be invoice date plus the configured term")
	}

	aprilInvoice, err := svc.GenerateInvoice(7, 2026, time.April)
	if err != nil {
		t.Fatalf("april invoice: %v", err)
	}
	if aprilInvoice.Subtotal != "10.00" {
		t.Fatalf("april subtotal = %s, want 10.00", aprilInvoice.Subtotal)
	}
}

func TestBillingEligibilityFilter(t *testing.T) {
	requestRepo, _, svc := newBillingFixture()
	march := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	// Confirmed but never accepted: must not become billable.
	requestRepo.seed(models.InventoryRequest{
		RestaurantID: 7, ItemID: 1, ItemName: "Pending Item", Quantity: 4,
		CostPerUnit: dec("9.99"), Status: StatusPending, PendingStatus: PendingStatusConfirmed,
		CreatedAt: march,
	})
	// Accepted but not confirmed by floor staff.
	requestRepo.seed(models.InventoryRequest{
		RestaurantID: 7, ItemID: 1, ItemName: "Unconfirmed Item", Quantity: 4,
		CostPerUnit: dec("9.99"), Status: StatusAccepted, PendingStatus: PendingStatusNotConfirmed,
		CreatedAt: march,
	})
	requestRepo.seed(models.InventoryRequest{
		RestaurantID: 7, ItemID: 1, ItemName: "Rejected Item", Quantity: 4,
		CostPerUnit: dec("9.99"), Status: StatusRejected, PendingStatus: PendingStatusNotConfirmed,
		CreatedAt: march,
	})
	billable := seedBillable(requestRepo, 7, "Real Item", 1, "3.25", march)

	statements, err := svc.GetMonthlyStatements(7)
	if err != nil {
		t.Fatalf("statements: %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("want one statement, got %d", len(statements))
	}
	if len(statements[0].Items) != 1 || statements[0].Items[0].ItemName != "Real Item" {
		t.Fatalf("ineligible requests leaked into billing: %v", statements[0].Items)
	}
	if statements[0].ID != billable.ID {
		t.Fatalf("statement id = %d, want %d", statements[0].ID, billable.ID)
	}
}

func TestStatementTotalsAreExact(t *testing.T) {
	requestRepo, _, svc := newBillingFixture()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// 30 lines of 0.10 would drift under float accumulation.
	for i := 0; i < 30; i++ {
		seedBillable(requestRepo, 7, "Penny Item", 1, "0.10", march.Add(time.Duration(i)*time.Minute))
	}

	statements, err := svc.GetMonthlyStatements(7)
	if err != nil {
		t.Fatalf("statements: %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("want one statement, got %d", len(statements))
	}
	if !statements[0].TotalAmount.Equal(dec("3")) {
		t.Fatalf("total = %s, want exactly 3", statements[0].TotalAmount)
	}

	var sum decimal.Decimal
	for _, line := range statements[0].Items {
		sum = sum.Add(line.Amount)
	}
	if !sum.Equal(statements[0].TotalAmount) {
		t.Fatalf("line sum %s differs from statement total %s", sum, statements[0].TotalAmount)
	}
}

func TestGenerateInvoiceNotFound(t *testing.T) {
	requestRepo, _, svc := newBillingFixture()
	seedBillable(requestRepo, 7, "Item A", 1, "10.00", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))

	if _, err := svc.GenerateInvoice(999, 2026, time.March); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("unknown restaurant: got %v", err)
	}
	if _, err := svc.GenerateInvoice(7, 2026, time.July); !errors.Is(err, ErrStatementNotFound) {
		t.Fatalf("month without orders: got %v", err)
	}
}

func TestInvoiceFetchesRestaurantFresh(t *testing.T) {
	requestRepo, restaurantRepo, svc := newBillingFixture()
	seedBillable(requestRepo, 7, "Item A", 1, "10.00", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))

	if _, err := svc.GenerateInvoice(7, 2026, time.March); err != nil {
		t.Fatalf("first invoice: %v", err)
	}

	restaurantRepo.restaurants[7] = models.Restaurant{ID: 7, Name: "Northside Grill & Bar", Location: "14 Main St"}
	invoice, err := svc.GenerateInvoice(7, 2026, time.March)
	if err != nil {
		t.Fatalf("second invoice: %v", err)
	}
	if invoice.RestaurantName != "Northside Grill & Bar" || invoice.RestaurantLocation != "14 Main St" {
		t.Fatal("invoice must carry the restaurant identity fetched at generation time")
	}
}

func TestMonthBoundaryUsesReportingZone(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	restaurantRepo := newFakeRestaurantRepo(models.Restaurant{ID: 7, Name: "Northside Grill", Location: "12 Main St"})
	zone := time.FixedZone("UTC-7", -7*3600)
	svc := NewBillingService(requestRepo, restaurantRepo, decimal.NewFromInt(5), zone, 30)

	// 03:00 UTC April 1 is still March 31 in the reporting zone.
	seedBillable(requestRepo, 7, "Item A", 1, "10.00", time.Date(2026, time.April, 1, 3, 0, 0, 0, time.UTC))

	statements, err := svc.GetMonthlyStatements(7)
	if err != nil {
		t.Fatalf("statements: %v", err)
	}
	if len(statements) != 1 || statements[0].Month != time.March {
		t.Fatalf("want a March statement in the reporting zone, got %v", statements)
	}
}
