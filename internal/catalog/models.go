package catalog

import "time"

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	PriceCents   int       `json:"price_cents"`
	Stock        int       `json:"stock"`
	CollectionID string    `json:"collection_id,omitempty"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Variant is one size/color SKU of a product, with its own stock count.
type Variant struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	Label      string `json:"label"`
	PriceCents int    `json:"price_cents"`
	Stock      int    `json:"stock"`
}

// Merch is the separate non-cable merchandise taxonomy; note the different
// stock field name, kept from the storefront schema.
type Merch struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PriceCents        int       `json:"price_cents"`
	QuantityAvailable int       `json:"quantity_available"`
	ImageURL          string    `json:"image_url"`
	CreatedAt         time.Time `json:"created_at"`
}

type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type Discount struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	PercentOff int        `json:"percent_off"`
	Active     bool       `json:"active"`
	ExpiresAt  *time.Time `json:"expires_at"`
}
