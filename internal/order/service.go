package order

import (
	"context"

	"fixitplus-be/internal/cart"
	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/logger"
	"fixitplus-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, userID string, lines []CheckoutLine, lc issue.LocationClass) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Checkout snapshots the requested lines into an immutable order. The
// catalog is the price authority: whatever totals the client computed are
// discarded and recomputed here from the products as they exist right now.
func (s *service) Checkout(ctx context.Context, userID string, lines []CheckoutLine, lc issue.LocationClass) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("user_id", userID),
	)

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !issue.ValidLocationClass(lc) {
		return nil, ErrInvalidLocation
	}

	// Rebuild the cart server-side so duplicate lines merge and pricing
	// follows the engine's rules exactly.
	merged := make(map[string]int)
	var productIDs []string
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, seen := merged[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		merged[line.ProductID] += line.Quantity
	}

	c := cart.New()
	for _, id := range productIDs {
		p, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		c.AddItem(p)
		c.SetQuantity(p.ID, merged[id])
	}

	totals := c.ComputeTotals(lc)

	o := &Order{
		UserID:        userID,
		Subtotal:      totals.Subtotal,
		DeliveryCost:  totals.Delivery,
		Total:         totals.Total,
		LocationClass: lc,
		Status:        StatusProcessing,
	}
	for _, item := range c.Items() {
		o.Items = append(o.Items, Item{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus advances fulfillment one step at a time; regressions and
// skips are rejected.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	want, ok := next(current.Status)
	if !ok || want != status {
		return nil, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
