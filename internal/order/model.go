package order

import (
	"time"

	"fixitplus-be/internal/issue"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// next returns the only legal forward transition; fulfillment never
// moves backwards.
func next(s Status) (Status, bool) {
	switch s {
	case StatusProcessing:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	}
	return "", false
}

// Item is a denormalized snapshot of the product at order time. Later
// catalog edits must never reprice a placed order, so name and price are
// copied by value; the product id is kept for reference only.
type Item struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Items         []Item              `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	DeliveryCost  float64             `json:"deliveryCost"`
	Total         float64             `json:"total"`
	LocationClass issue.LocationClass `json:"locationType"`
	Status        Status              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CheckoutLine is one requested line at checkout: the product reference
// and the quantity, nothing else. Prices come from the catalog.
type CheckoutLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}
