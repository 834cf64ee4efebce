package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	createdAt := r.db.now().UTC()

	res, err := r.db.SQL.ExecContext(ctx,
		`INSERT INTO orders (user_number, product_id, timestamp) VALUES (?, ?, ?)`,
		order.CustomerAddress.String(), order.ProductID, formatTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("failed to append order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read order id: %w", err)
	}

	order.ID = id
	order.CreatedAt = createdAt
	return nil
}

func (r *OrderRepository) MostRecent(ctx context.Context) (*domain.Order, error) {
	row := r.db.SQL.QueryRowContext(ctx, `
		SELECT id, user_number, product_id, timestamp
		FROM orders
		ORDER BY id DESC
		LIMIT 1
	`)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) Recent(ctx context.Context, n int) ([]*domain.Order, error) {
	rows, err := r.db.SQL.QueryContext(ctx, `
		SELECT id, user_number, product_id, timestamp
		FROM orders
		ORDER BY id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan recent orders: %w", err)
	}
	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*domain.Order, error) {
	var (
		o          domain.Order
		userNumber string
		ts         string
	)
	if err := s.Scan(&o.ID, &userNumber, &o.ProductID, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	createdAt, err := parseTime(ts)
	if err != nil {
		return nil, err
	}
	o.CustomerAddress = domain.Address(userNumber)
	o.CreatedAt = createdAt
	return &o, nil
}
