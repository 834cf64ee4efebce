package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db Executor
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db.Pool}
}

// Append inserts the order and fills in the generated id and timestamp.
func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (user_number, product_id)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`

	err := r.db.QueryRow(ctx, query, order.CustomerAddress.String(), order.ProductID).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append order: %w", err)
	}

	return nil
}

func (r *OrderRepository) MostRecent(ctx context.Context) (*domain.Order, error) {
	query := `
		SELECT id, user_number, product_id, timestamp
		FROM orders
		ORDER BY id DESC
		LIMIT 1
	`

	var m OrderModel
	err := r.db.QueryRow(ctx, query).Scan(&m.ID, &m.UserNumber, &m.ProductID, &m.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	return toDomainOrder(m), nil
}

// Recent returns up to n orders, newest first.
func (r *OrderRepository) Recent(ctx context.Context, n int) ([]*domain.Order, error) {
	query := `
		SELECT id, user_number, product_id, timestamp
		FROM orders
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Order, error) {
		var m OrderModel
		err := row.Scan(&m.ID, &m.UserNumber, &m.ProductID, &m.Timestamp)
		return toDomainOrder(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent orders: %w", err)
	}

	return results, nil
}
