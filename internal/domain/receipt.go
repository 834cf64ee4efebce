package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt pairs the most recent payment notice with the most recent order.
// The two are correlated by recency only.
type Receipt struct {
	Customer string
	Item     string
	Price    decimal.Decimal
	Total    decimal.Decimal
	IssuedAt time.Time
}

func NewReceipt(notice PaymentNotice, line OrderLine, issuedAt time.Time) Receipt {
	return Receipt{
		Customer: notice.Payer(),
		Item:     line.Product.Name,
		Price:    line.Product.UnitPrice,
		Total:    line.Product.UnitPrice,
		IssuedAt: issuedAt,
	}
}

// Render formats the receipt as a fixed-width text block.
func (r Receipt) Render() string {
	var b strings.Builder
	b.WriteString("========== RECEIPT ==========\n")
	fmt.Fprintf(&b, "Date:     %s\n", r.IssuedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Customer: %s\n", r.Customer)
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "%-18s %s\n", r.Item, FormatPrice(r.Price))
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "%-18s %s\n", "TOTAL", FormatPrice(r.Total))
	b.WriteString("=============================\n")
	return b.String()
}
