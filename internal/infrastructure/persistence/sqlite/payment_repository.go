package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Append(ctx context.Context, notice *domain.PaymentNotice) error {
	createdAt := r.db.now().UTC()

	payer := sql.NullString{String: notice.PayerName, Valid: notice.PayerName != ""}
	res, err := r.db.SQL.ExecContext(ctx,
		`INSERT INTO payments (mpesa_message, payer_name, timestamp) VALUES (?, ?, ?)`,
		notice.RawMessage, payer, formatTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("failed to append payment notice: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment notice id: %w", err)
	}

	notice.ID = id
	notice.CreatedAt = createdAt
	return nil
}

func (r *PaymentRepository) MostRecent(ctx context.Context) (*domain.PaymentNotice, error) {
	row := r.db.SQL.QueryRowContext(ctx, `
		SELECT id, mpesa_message, payer_name, timestamp
		FROM payments
		ORDER BY id DESC
		LIMIT 1
	`)

	notice, err := scanPaymentNotice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNoticeNotFound
		}
		return nil, err
	}
	return notice, nil
}

func (r *PaymentRepository) Recent(ctx context.Context, n int) ([]*domain.PaymentNotice, error) {
	rows, err := r.db.SQL.QueryContext(ctx, `
		SELECT id, mpesa_message, payer_name, timestamp
		FROM payments
		ORDER BY id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent payment notices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notices []*domain.PaymentNotice
	for rows.Next() {
		n, err := scanPaymentNotice(rows)
		if err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan recent payment notices: %w", err)
	}
	return notices, nil
}

func scanPaymentNotice(s scanner) (*domain.PaymentNotice, error) {
	var (
		n     domain.PaymentNotice
		payer sql.NullString
		ts    string
	)
	if err := s.Scan(&n.ID, &n.RawMessage, &payer, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan payment notice: %w", err)
	}

	createdAt, err := parseTime(ts)
	if err != nil {
		return nil, err
	}
	n.PayerName = payer.String
	n.CreatedAt = createdAt
	return &n, nil
}
