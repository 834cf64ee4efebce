package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db Executor
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db.Pool}
}

func (r *PaymentRepository) Append(ctx context.Context, notice *domain.PaymentNotice) error {
	query := `
		INSERT INTO payments (mpesa_message, payer_name)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`

	err := r.db.QueryRow(ctx, query, notice.RawMessage, nullableString(notice.PayerName)).
		Scan(&notice.ID, &notice.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append payment notice: %w", err)
	}

	return nil
}

func (r *PaymentRepository) MostRecent(ctx context.Context) (*domain.PaymentNotice, error) {
	query := `
		SELECT id, mpesa_message, payer_name, timestamp
		FROM payments
		ORDER BY id DESC
		LIMIT 1
	`

	var m PaymentModel
	err := r.db.QueryRow(ctx, query).Scan(&m.ID, &m.MpesaMessage, &m.PayerName, &m.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNoticeNotFound
		}
		return nil, fmt.Errorf("failed to scan payment notice: %w", err)
	}

	return toDomainPaymentNotice(m), nil
}

func (r *PaymentRepository) Recent(ctx context.Context, n int) ([]*domain.PaymentNotice, error) {
	query := `
		SELECT id, mpesa_message, payer_name, timestamp
		FROM payments
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("query recent payment notices: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.PaymentNotice, error) {
		var m PaymentModel
		err := row.Scan(&m.ID, &m.MpesaMessage, &m.PayerName, &m.Timestamp)
		return toDomainPaymentNotice(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent payment notices: %w", err)
	}

	return results, nil
}
