package models

import "github.com/shopspring/decimal"

// CartLine is one draft selection in a restaurant's cart. Unit and
// CostPerUnit are snapshotted from the catalog when the item is added.
type CartLine struct {
	ItemID      int64           `json:"item_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Notes       string          `json:"notes"`
	Amount      decimal.Decimal `json:"amount"` // quantity x cost per unit
}

// CartView is a read-only snapshot of a cart: lines in insertion order plus
// the subtotal recomputed from the current lines.
type CartView struct {
	Lines      []CartLine      `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Confirming bool            `json:"confirming"`
}

// SubmitResult reports the outcome of a submit call. The first call of the
// two-phase flow returns Confirming=true with no requests; the second call
// returns the persisted requests.
type SubmitResult struct {
	Confirming bool               `json:"confirming"`
	Requests   []InventoryRequest `json:"requests,omitempty"`
}
