package orders

import "time"

type Order struct {
	ID             string     `json:"id"`
	OrderNumber    string     `json:"order_number"`
	Status         Status     `json:"status"`
	SubtotalCents  int        `json:"subtotal_cents"`
	ShippingCents  int        `json:"shipping_cents"`
	TotalCents     int        `json:"total_cents"`
	ShippingName   string     `json:"shipping_name"`
	ShippingPhone  string     `json:"shipping_phone"`
	ShippingLine   string     `json:"shipping_line"`
	ShippingCity   string     `json:"shipping_city"`
	Courier        string     `json:"courier"`
	TrackingNumber string     `json:"tracking_number"`
	TrackingURL    string     `json:"tracking_url"`
	AdminNotes     string     `json:"admin_notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ShippedAt      *time.Time `json:"shipped_at"`
	DeliveredAt    *time.Time `json:"delivered_at"`
	Items          []Item     `json:"items"`
}

// Item is one order line. ProductID may reference the products table or, by
// absence of a product match, the merch table; VariantID is set only for
// variant-bearing products. Name and PriceCents are snapshots taken at order
// time.
type Item struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	ProductID  string `json:"product_id"`
	VariantID  string `json:"variant_id,omitempty"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Qty        int    `json:"qty"`

	// StockLeft is a display-only annotation filled in by listing calls;
	// nil when the probe failed or was not run.
	StockLeft *int `json:"stock_left,omitempty"`
}

// TrackingInfo is a partial update; nil fields are left untouched.
type TrackingInfo struct {
	Courier        *string `json:"courier"`
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
}

// StatusPatch carries everything a status write touches besides the status
// itself.
type StatusPatch struct {
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	Tracking    *TrackingInfo
}

type Filter struct {
	Status string // exact match; empty means all
	Search string // case-insensitive substring on number, name, phone
}
