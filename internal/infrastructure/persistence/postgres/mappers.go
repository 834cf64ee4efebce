package postgres

import (
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

func toDomainOrder(m OrderModel) *domain.Order {
	return &domain.Order{
		ID:              m.ID,
		CustomerAddress: domain.Address(m.UserNumber),
		ProductID:       m.ProductID,
		CreatedAt:       m.Timestamp,
	}
}

func toDomainPaymentNotice(m PaymentModel) *domain.PaymentNotice {
	n := &domain.PaymentNotice{
		ID:         m.ID,
		RawMessage: m.MpesaMessage,
		CreatedAt:  m.Timestamp,
	}
	if m.PayerName != nil {
		n.PayerName = *m.PayerName
	}
	return n
}

// nullableString stores empty strings as NULL.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
