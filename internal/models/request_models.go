package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRequest is one line-item supply order placed by a restaurant.
// Unit and CostPerUnit are copied from the catalog item at submission time so
// historical requests keep the unit and price in effect when they were placed,
// regardless of later catalog edits.
type InventoryRequest struct {
	ID            int64           `json:"id"`
	RestaurantID  int64           `json:"restaurant_id"`
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name"` // joined from items, not stored on the row
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Timeline      *string         `json:"timeline,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	Status        string          `json:"status"`         // pending | accepted | rejected
	PendingStatus string          `json:"pending_status"` // not_confirmed | confirmed
	Flagged       bool            `json:"flagged"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasNote reports whether the request carries a non-empty note.
func (r *InventoryRequest) HasNote() bool {
	return r.Notes != nil && *r.Notes != ""
}

// RequestFilters defines the available filters for querying inventory
// requests. This struct is used by both the service and repository layers.
type RequestFilters struct {
	RestaurantID  *int64
	Statuses      []string
	PendingStatus *string
	Flagged       *bool
}

// RequestPatch carries the mutable fields of an inventory request.
// Nil fields are left untouched by the update.
type RequestPatch struct {
	PendingStatus *string
	Flagged       *bool
	Notes         *string // pointer to empty string clears the note
}
