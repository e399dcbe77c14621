package service

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/repository"
	"github.com/kahvecikaan/gaming-store/internal/store"
	"time"
)

// SimulatedOrderID is reported for orders that could not be persisted
const SimulatedOrderID = "demo-order"

// Confirmation is returned to the customer after checkout.
//
// swagger:model
type Confirmation struct {
	// required: true
	Success bool `json:"success"`

	// required: true
	OrderID string `json:"order_id"`

	// required: true
	Total float64 `json:"total"`

	// Persisted is false for a simulated success
	Persisted bool `json:"-"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (*Confirmation, error)
}

type checkoutService struct {
	repo      repository.OrderRepository
	validator *domain.Validation
	logger    hclog.Logger
	now       func() time.Time
}

func NewCheckoutService(
	repo repository.OrderRepository,
	validator *domain.Validation,
	logger hclog.Logger) CheckoutService {
	return &checkoutService{
		repo:      repo,
		validator: validator,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Checkout prices the cart and stores a pending order. Prices are taken
// from the request as submitted.
//
// A store failure does not fail the checkout: the confirmation carries
// SimulatedOrderID and the order is dropped.
func (s *checkoutService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*Confirmation, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	totals := domain.ComputeTotals(req.Items)
	order := domain.NewOrder(req, totals, s.now())

	if errs := s.validator.Validate(order); len(errs) != 0 {
		return nil, errs
	}

	s.logger.Debug("Placing order",
		"items", len(order.Items),
		"subtotal", order.Subtotal,
		"tax", order.Tax,
		"total", order.Total)

	// persistence runs to completion even if the client goes away
	orderID, err := s.repo.Add(context.WithoutCancel(ctx), order)
	switch {
	case err == nil:
		return &Confirmation{Success: true, OrderID: orderID, Total: order.Total, Persisted: true}, nil
	case store.IsUnavailable(err):
		s.logger.Warn("Document store unavailable, order not persisted", "total", order.Total, "error", err)
		return &Confirmation{Success: true, OrderID: SimulatedOrderID, Total: order.Total}, nil
	default:
		s.logger.Error("Unable to place order", "error", err)
		return nil, err
	}
}
