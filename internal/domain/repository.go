package domain

import "context"

// OrderLedger is the append-only order log.
type OrderLedger interface {
	// Append persists an order and fills in its id and timestamp.
	Append(ctx context.Context, order *Order) error

	// MostRecent returns the newest order or ErrOrderNotFound.
	MostRecent(ctx context.Context) (*Order, error)

	// Recent returns up to n orders, newest first.
	Recent(ctx context.Context, n int) ([]*Order, error)
}

// PaymentLedger is the append-only payment notice log.
type PaymentLedger interface {
	Append(ctx context.Context, notice *PaymentNotice) error

	// MostRecent returns the newest notice or ErrPaymentNoticeNotFound.
	MostRecent(ctx context.Context) (*PaymentNotice, error)

	Recent(ctx context.Context, n int) ([]*PaymentNotice, error)
}
