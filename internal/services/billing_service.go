package services

import (
	"errors"
	"fmt"
	"time"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrStatementNotFound = errors.New("no billable orders for that month")

// BillingService aggregates confirmed, accepted requests into monthly
// statements and renders invoices from them. It only ever reads request
// records; every statement is recomputed from the store on demand so the
// numbers always reflect the latest confirmed-order state.
type BillingService interface {
	GetMonthlyStatements(restaurantID int64) ([]models.MonthlyStatement, error)
	GenerateInvoice(restaurantID int64, year int, month time.Month) (*models.Invoice, error)
}

type billingService struct {
	requestRepo    repositories.RequestRepository
	restaurantRepo repositories.RestaurantRepository
	taxPercent     decimal.Decimal
	reportingZone  *time.Location
	dueDays        int
}

// NewBillingService creates a new instance of BillingService. taxPercent is
// the configured tax rate (e.g. 5 for 5%), reportingZone the timezone whose
// calendar months bound the billing groups, dueDays the invoice payment term.
func NewBillingService(
	rr repositories.RequestRepository,
	restr repositories.RestaurantRepository,
	taxPercent decimal.Decimal,
	reportingZone *time.Location,
	dueDays int,
) BillingService {
	return &billingService{
		requestRepo:    rr,
		restaurantRepo: restr,
		taxPercent:     taxPercent,
		reportingZone:  reportingZone,
		dueDays:        dueDays,
	}
}

type monthKey struct {
	year  int
	month time.Month
}

// GetMonthlyStatements partitions the restaurant's billable requests by the
// calendar month of their creation time. Only requests that are both
// accepted by the admin AND confirmed by floor staff are billable; a
// confirmed-but-still-pending request must never produce a charge.
func (s *billingService) GetMonthlyStatements(restaurantID int64) ([]models.MonthlyStatement, error) {
	confirmed := PendingStatusConfirmed
	requests, err := s.requestRepo.GetRequests(models.RequestFilters{
		RestaurantID:  &restaurantID,
		Statuses:      []string{StatusAccepted},
		PendingStatus: &confirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get billable requests: %w", err)
	}

	statements := []models.MonthlyStatement{}
	index := map[monthKey]int{}

	// Requests arrive newest first, so statements come out newest first and
	// each statement id is the first request id seen in its group.
	for _, req := range requests {
		local := req.CreatedAt.In(s.reportingZone)
		key := monthKey{year: local.Year(), month: local.Month()}

		line := models.StatementLine{
			ItemName:  req.ItemName,
			Quantity:  req.Quantity,
			UnitPrice: req.CostPerUnit,
			Amount:    req.CostPerUnit.Mul(decimal.NewFromInt(int64(req.Quantity))),
			OrderedAt: req.CreatedAt,
		}

		pos, ok := index[key]
		if !ok {
			index[key] = len(statements)
			statements = append(statements, models.MonthlyStatement{
				ID:          req.ID,
				Year:        key.year,
				Month:       key.month,
				Period:      fmt.Sprintf("%s %d", key.month, key.year),
				TotalAmount: line.Amount,
				Items:       []models.StatementLine{line},
			})
			continue
		}
		statements[pos].TotalAmount = statements[pos].TotalAmount.Add(line.Amount)
		statements[pos].Items = append(statements[pos].Items, line)
	}

	return statements, nil
}

// GenerateInvoice renders the statement for one calendar month. The
// restaurant name and location are fetched fresh at generation time. Sums
// accumulate in full precision; the two-decimal rounding happens exactly
// once, at the formatting below.
func (s *billingService) GenerateInvoice(restaurantID int64, year int, month time.Month) (*models.Invoice, error) {
	restaurant, err := s.restaurantRepo.GetRestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to fetch restaurant %d: %w", restaurantID, err)
	}

	statements, err := s.GetMonthlyStatements(restaurantID)
	if err != nil {
		return nil, err
	}

	var statement *models.MonthlyStatement
	for i := range statements {
		if statements[i].Year == year && statements[i].Month == month {
			statement = &statements[i]
			break
		}
	}
	if statement == nil {
		return nil, fmt.Errorf("%w: %s %d", ErrStatementNotFound, month, year)
	}

	subtotal := statement.TotalAmount
	tax := subtotal.Mul(s.taxPercent).Div(decimal.NewFromInt(100))
	total := subtotal.Add(tax)

	now := time.Now().UTC()
	return &models.Invoice{
		InvoiceNumber:      statement.ID,
		RestaurantName:     restaurant.Name,
		RestaurantLocation: restaurant.Location,
		Period:             statement.Period,
		InvoiceDate:        now,
		DueDate:            now.AddDate(0, 0, s.dueDays),
		Lines:              statement.Items,
		Subtotal:           subtotal.StringFixed(2),
		TaxPercentage:      s.taxPercent,
		TaxAmount:          tax.StringFixed(2),
		Total:              total.StringFixed(2),
	}, nil
}
