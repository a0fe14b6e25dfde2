package ports

import (
	"context"

	"mandoob-route-service/internal/domain"
)

// Port: a boundary for storing and retrieving Order entities.
type OrderRepository interface {
	// Persist a new order.
	CreateOrder(ctx context.Context, order *domain.Order) error
	// Return up to limit orders, newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.OrderStatus, limit int) ([]*domain.Order, error)
	// Return a single order, or domain.ErrOrderNotFound.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// Return orders for the given ids preserving input order;
	// fails with domain.ErrOrderNotFound if any id is unknown.
	GetOrders(ctx context.Context, ids []string) ([]*domain.Order, error)
	// Persist changes to an existing order.
	UpdateOrder(ctx context.Context, order *domain.Order) error
}
