package domain

import (
	"strings"
	"time"
)

// PaymentNotice is a captured free-text payment message.
type PaymentNotice struct {
	ID         int64
	RawMessage string
	PayerName  string
	CreatedAt  time.Time
}

func NewPaymentNotice(raw string) (*PaymentNotice, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, NewMissingRequiredFieldError("payment message")
	}
	return &PaymentNotice{
		RawMessage: raw,
		PayerName:  ExtractPayerName(raw),
	}, nil
}

// Payer returns the stored payer name, re-running extraction when the stored
// value is empty.
func (n PaymentNotice) Payer() string {
	if strings.TrimSpace(n.PayerName) != "" {
		return n.PayerName
	}
	return ExtractPayerName(n.RawMessage)
}
