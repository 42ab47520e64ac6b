package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one orderable row from the shared supply catalog. The dashboard
// never mutates items; the catalog is owned by the admin side of the product.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"item_description,omitempty"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	CutOffDay   string          `json:"cut_off_day"`  // e.g. "Friday"
	CutOffTime  string          `json:"cut_off_time"` // e.g. "14:00:00"
	ImageLink   *string         `json:"image_link,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Restaurant identifies one franchise location.
type Restaurant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
