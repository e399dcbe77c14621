package repository

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/gaming-store/internal/domain"
	"github.com/kahvecikaan/gaming-store/internal/store"
)

// OrderRepository persists placed orders. Orders are append-only.
type OrderRepository interface {
	Add(ctx context.Context, order *domain.Order) (string, error)
}

type documentOrderRepository struct {
	gateway store.Gateway
	logger  hclog.Logger
}

func NewOrderRepository(gw store.Gateway, logger hclog.Logger) OrderRepository {
	return &documentOrderRepository{
		gateway: gw,
		logger:  logger,
	}
}

func (r *documentOrderRepository) Add(ctx context.Context, order *domain.Order) (string, error) {
	id, err := r.gateway.Insert(ctx, store.OrderCollection, order)
	if err != nil {
		return "", err
	}

	order.ID = id
	r.logger.Debug("Stored order", "id", id, "items", len(order.Items))

	return id, nil
}
