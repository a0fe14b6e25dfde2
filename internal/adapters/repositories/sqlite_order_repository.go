package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mandoob-route-service/internal/domain"
)

const orderColumns = `
	order_id,
	source_app,
	restaurant_name,
	customer_name,
	pickup_lat, pickup_lng, pickup_address,
	delivery_lat, delivery_lng, delivery_address,
	payout,
	status,
	created_at,
	updated_at`

// SQLite-backed implementation of the OrderRepository port.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

func (s *SqliteOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	query := `
	INSERT INTO orders (` + orderColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		order.ID,
		string(order.SourceApp),
		order.RestaurantName,
		order.CustomerName,
		order.Pickup.Lat, order.Pickup.Lng, order.Pickup.Address,
		order.Delivery.Lat, order.Delivery.Lng, order.Delivery.Address,
		order.Payout,
		string(order.Status),
		order.CreatedAt.UTC().Format(time.RFC3339Nano),
		order.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create order %s: insert: %w", order.ID, err)
	}
	return nil
}

func (s *SqliteOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus, limit int) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, order_id LIMIT ?;`
	args = append(args, limit)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}
	return orders, nil
}

func (s *SqliteOrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ?;`
	row := s.DB.QueryRowContext(ctx, query, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order %s: %w", id, domain.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

func (s *SqliteOrderRepository) GetOrders(ctx context.Context, ids []string) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}
	if len(ids) == 0 {
		return []*domain.Order{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id IN (` + placeholders + `);`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get orders: query orders table: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.Order, len(ids))
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("get orders: %w", err)
		}
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get orders: row iteration: %w", err)
	}

	// Preserve the caller's id order; the selection order matters to the
	// baseline route.
	out := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("get orders: %s: %w", id, domain.ErrOrderNotFound)
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *SqliteOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	query := `
	UPDATE orders
	SET source_app = ?,
		restaurant_name = ?,
		customer_name = ?,
		payout = ?,
		status = ?,
		updated_at = ?
	WHERE order_id = ?;
	`
	res, err := s.DB.ExecContext(ctx, query,
		string(order.SourceApp),
		order.RestaurantName,
		order.CustomerName,
		order.Payout,
		string(order.Status),
		order.UpdatedAt.UTC().Format(time.RFC3339Nano),
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("update order %s: %w", order.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order %s: rows affected: %w", order.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update order %s: %w", order.ID, domain.ErrOrderNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o                    domain.Order
		source, status       string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&o.ID,
		&source,
		&o.RestaurantName,
		&o.CustomerName,
		&o.Pickup.Lat, &o.Pickup.Lng, &o.Pickup.Address,
		&o.Delivery.Lat, &o.Delivery.Lng, &o.Delivery.Address,
		&o.Payout,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.SourceApp = domain.ParseSourceApp(source)
	o.Status = domain.OrderStatus(status)
	if o.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("scan order %s: created_at: %w", o.ID, err)
	}
	if o.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("scan order %s: updated_at: %w", o.ID, err)
	}
	return &o, nil
}
