package postgres

import (
	"time"
)

// OrderModel mirrors a row of the orders table.
type OrderModel struct {
	ID         int64
	UserNumber string
	ProductID  string
	Timestamp  time.Time
}

// PaymentModel mirrors a row of the payments table. PayerName is nullable.
type PaymentModel struct {
	ID           int64
	MpesaMessage string
	PayerName    *string
	Timestamp    time.Time
}
