package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the OrderRepository port (pgx stdlib
// driver). Used when DATABASE_URL is configured; the SQLite adapter is the
// local default.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// InitPostgresSchema creates the orders table when it does not exist.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		source_app TEXT NOT NULL,
		restaurant_name TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lng DOUBLE PRECISION NOT NULL,
		pickup_address TEXT NOT NULL DEFAULT '',
		delivery_lat DOUBLE PRECISION NOT NULL,
		delivery_lng DOUBLE PRECISION NOT NULL,
		delivery_address TEXT NOT NULL DEFAULT '',
		payout DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init postgres schema: %w", err)
	}
	return nil
}

func (p *PostgresOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.pg.CreateOrder")(&err)

	if p.DB == nil {
		return errors.New("postgres order repository: DB is nil")
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	query := `
	INSERT INTO orders (` + orderColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (order_id) DO NOTHING;
	`
	res, err := p.DB.ExecContext(ctx, query,
		order.ID,
		string(order.SourceApp),
		order.RestaurantName,
		order.CustomerName,
		order.Pickup.Lat, order.Pickup.Lng, order.Pickup.Address,
		order.Delivery.Lat, order.Delivery.Lng, order.Delivery.Address,
		order.Payout,
		string(order.Status),
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order %s: insert: %w", order.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create order %s: rows affected: %w", order.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("create order %s: id already exists", order.ID)
	}
	return nil
}

func (p *PostgresOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus, limit int) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.pg.ListOrders")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres order repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, order_id LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	for rows.Next() {
		o, err := scanPgOrder(rows)
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

func (p *PostgresOrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if p.DB == nil {
		return nil, errors.New("postgres order repository: DB is nil")
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	o, err := scanPgOrder(p.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order %s: %w", id, domain.ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

func (p *PostgresOrderRepository) GetOrders(ctx context.Context, ids []string) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.pg.GetOrders")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres order repository: DB is nil")
	}
	if len(ids) == 0 {
		return []*domain.Order{}, nil
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ANY($1::text[]);`
	rows, err := p.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get orders: query orders table: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.Order, len(ids))
	for rows.Next() {
		o, err := scanPgOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("get orders: %w", err)
		}
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get orders: row iteration: %w", err)
	}

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

func (p *PostgresOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.pg.UpdateOrder")(&err)

	if p.DB == nil {
		return errors.New("postgres order repository: DB is nil")
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	query := `
	UPDATE orders
	SET source_app = $1,
		restaurant_name = $2,
		customer_name = $3,
		payout = $4,
		status = $5,
		updated_at = $6
	WHERE order_id = $7;
	`
	res, err := p.DB.ExecContext(ctx, query,
		string(order.SourceApp),
		order.RestaurantName,
		order.CustomerName,
		order.Payout,
		string(order.Status),
		order.UpdatedAt,
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

func scanPgOrder(row rowScanner) (*domain.Order, error) {
	var (
		o              domain.Order
		source, status string
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
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.SourceApp = domain.ParseSourceApp(source)
	o.Status = domain.OrderStatus(status)
	return &o, nil
}
