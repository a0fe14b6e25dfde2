package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"mandoob-route-service/internal/domain"
)

// In-memory implementation of the OrderRepository port, used in tests and
// for running the server without a database file.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (m *MemoryOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[order.ID]; ok {
		return fmt.Errorf("create order %s: id already exists", order.ID)
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *MemoryOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if status != nil && o.Status != *status {
			continue
		}
		copied := o
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryOrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order %s: %w", id, domain.ErrOrderNotFound)
	}
	copied := o
	return &copied, nil
}

func (m *MemoryOrderRepository) GetOrders(ctx context.Context, ids []string) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		o, ok := m.orders[id]
		if !ok {
			return nil, fmt.Errorf("get orders: %s: %w", id, domain.ErrOrderNotFound)
		}
		copied := o
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[order.ID]; !ok {
		return fmt.Errorf("update order %s: %w", order.ID, domain.ErrOrderNotFound)
	}
	m.orders[order.ID] = *order
	return nil
}
