package cart

import "fixitplus-be/internal/issue"

// DeliveryCosts is the fixed location-based delivery rate table.
var DeliveryCosts = map[issue.LocationClass]float64{
	issue.LocationUrban: 50,
	issue.LocationRural: 30,
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"deliveryCost"`
	Total    float64 `json:"total"`
}

// TotalsFor computes subtotal, delivery and total for a set of lines.
// Delivery applies only to non-empty carts.
func TotalsFor(items []Item, lc issue.LocationClass) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Price * float64(item.Quantity)
	}

	if len(items) > 0 {
		t.Delivery = DeliveryCosts[lc]
	}

	t.Total = t.Subtotal + t.Delivery
	return t
}
