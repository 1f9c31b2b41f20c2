package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"reddys-kitchen/storefront-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, phone, address, payment, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, order.CustomerName, order.Phone, order.Address, order.Payment, order.Total, order.CreatedAt); err != nil {
		return err
	}

	for position, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, restaurant_name, name, qty, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, position, item.RestaurantName, item.Name, item.Qty, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_name, phone, address, payment, total, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerName, &order.Phone, &order.Address, &order.Payment, &order.Total, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT restaurant_name, name, qty, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.RestaurantName, &item.Name, &item.Qty, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

// ListOrders returns every order newest first, with the lines of all orders
// fetched in a single query.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_name, phone, address, payment, total, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []string{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.Phone, &order.Address, &order.Payment, &order.Total, &order.CreatedAt); err != nil {
			return nil, err
		}
		order.Items = []domain.OrderItem{}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, restaurant_name, name, qty, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	index := make(map[string]int, len(orders))
	for i, order := range orders {
		index[order.ID] = i
	}
	for itemRows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := itemRows.Scan(&orderID, &item.RestaurantName, &item.Name, &item.Qty, &item.Price); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			payment TEXT NOT NULL DEFAULT '',
			total NUMERIC(12, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			position INT NOT NULL,
			restaurant_name TEXT NOT NULL,
			name TEXT NOT NULL,
			qty INT NOT NULL CHECK (qty > 0),
			price NUMERIC(12, 2) NOT NULL CHECK (price >= 0)
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, ch := range stmt {
		if ch == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
