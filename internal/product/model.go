package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewProductParams struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	ImageURL    *string
}

// UpdateProductParams carries a partial update: nil fields stay untouched.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	ImageURL    *string
}
