package models

// Overview is the dashboard summary for one restaurant: pending request
// count, latest billing amount and the ordered notification list. Derived on
// every read, nothing here is stored.
type Overview struct {
	PendingOrders int      `json:"pending_orders"`
	RecentBilling *string  `json:"recent_billing,omitempty"` // e.g. "$36.75"
	Notifications []string `json:"notifications"`
}
