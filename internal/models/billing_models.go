package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one billed request inside a monthly statement. The original
// order timestamp is kept so the audit trail survives the monthly merge.
type StatementLine struct {
	ItemName  string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	OrderedAt time.Time       `json:"ordered_at"`
}

// MonthlyStatement groups one calendar month of billable requests for a
// restaurant. It is recomputed on demand and never persisted. ID reuses the
// first request id encountered in the group as a stable statement handle.
type MonthlyStatement struct {
	ID          int64           `json:"id"`
	Year        int             `json:"year"`
	Month       time.Month      `json:"month"`
	Period      string          `json:"period"` // e.g. "March 2026"
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []StatementLine `json:"items"`
}

// Invoice is the printable rendition of one monthly statement. Currency
// fields are pre-formatted to exactly two fraction digits; that formatting is
// the only place rounding happens.
type Invoice struct {
	InvoiceNumber      int64           `json:"invoice_number"`
	RestaurantName     string          `json:"restaurant_name"`
	RestaurantLocation string          `json:"restaurant_location"`
	Period             string          `json:"period"`
	InvoiceDate        time.Time       `json:"invoice_date"`
	DueDate            time.Time       `json:"due_date"`
	Lines              []StatementLine `json:"lines"`
	Subtotal           string          `json:"subtotal"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	TaxAmount          string          `json:"tax_amount"`
	Total              string          `json:"total"`
}
