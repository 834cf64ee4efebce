package application

import (
	"context"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// Action is a call-to-action button attached to an outbound message.
type Action struct {
	Label string
	URL   string
}

// MessagingGateway is the port for the outbound chat gateway. Addresses are in
// gateway form, e.g. "whatsapp:+254700000001".
type MessagingGateway interface {
	SendText(ctx context.Context, to, body string) error
	SendTextWithAction(ctx context.Context, to, body string, action Action) error
}

// ReceiptPrinter emits a receipt to an operational channel, never to chat.
type ReceiptPrinter interface {
	Print(ctx context.Context, receipt domain.Receipt) error
}
