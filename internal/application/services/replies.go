package services

import (
	"fmt"
	"strings"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

const (
	msgSupportAck = "🙋 A designer has been notified and will reach out to you shortly."
	msgHelp       = "Sorry, I didn't understand that.\n\n" +
		"• Send 'menu' to see our design services\n" +
		"• Send 'support' to talk to a designer\n" +
		"• Forward your M-Pesa confirmation ending in " + domain.USSDMarker + " to record a payment"
	msgNoOrders = "No orders yet."

	supportSummary = "Customer requested support"
)

func renderMenu(catalog *domain.Catalog) string {
	var b strings.Builder
	b.WriteString("👋 Welcome to Doga's Graphic Design services.\n")
	b.WriteString("Reply with the number to order:\n\n")
	for _, p := range catalog.Products() {
		fmt.Fprintf(&b, "*%s. %s* - %s\n", p.ID, p.Name, p.DisplayPrice())
	}
	b.WriteString("\nExample: 1")
	return b.String()
}

func orderSummary(p domain.Product) string {
	return fmt.Sprintf("New order: %s - %s", p.Name, p.DisplayPrice())
}

func richConfirmation(p domain.Product) string {
	return fmt.Sprintf(
		"✅ Order confirmed for *%s* at %s.\n\nTap the button below to review sample designs in our catalog.",
		p.Name, p.DisplayPrice(),
	)
}

func fallbackConfirmation(p domain.Product) string {
	return fmt.Sprintf(
		"✅ Order confirmed for *%s* at %s.\n\n"+
			"Before your designer contacts you, please review sample designs here:\n"+
			"%s\n\n"+
			"A designer will be with you shortly to discuss details and the deposit.",
		p.Name, p.DisplayPrice(), p.ReferenceLink,
	)
}

func renderOrders(lines []domain.OrderLine) string {
	if len(lines) == 0 {
		return msgNoOrders
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Recent orders (%d):\n", len(lines))
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s - %s (%s) - %s\n",
			i+1,
			l.Product.Name,
			l.Product.DisplayPrice(),
			l.Order.CustomerAddress,
			l.Order.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func paymentAck(payer string) string {
	return fmt.Sprintf("💰 Payment notice recorded. Thank you, %s!", payer)
}

func receiptPrinted(r domain.Receipt) string {
	return fmt.Sprintf("🧾 Receipt for %s printed.", r.Customer)
}
