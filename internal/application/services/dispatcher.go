package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

const catalogActionLabel = "Visit Catalog"

// Dispatcher sends operator handoffs and enriched customer confirmations.
// A nil gateway means outbound messaging is unconfigured.
type Dispatcher struct {
	gateway  application.MessagingGateway
	operator domain.Address
	logger   *slog.Logger
}

func NewDispatcher(gateway application.MessagingGateway, operator domain.Address, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		gateway:  gateway,
		operator: operator,
		logger:   logger,
	}
}

// Handoff notifies the operator. When the gateway is missing or the send
// fails the notice is written to the process log instead.
func (d *Dispatcher) Handoff(ctx context.Context, customer domain.Address, summary string) {
	notice := fmt.Sprintf("HANDOFF: user=%s - %s", customer, summary)

	if d.gateway == nil {
		d.logger.Warn("handoff logged, gateway unconfigured",
			"handoff", notice,
			"operator", d.operator,
		)
		return
	}

	if err := d.gateway.SendText(ctx, d.operator.ChannelAddress(), notice); err != nil {
		d.logger.Error("handoff send failed, logged instead",
			"handoff", notice,
			"operator", d.operator,
			"error", err,
		)
		return
	}

	d.logger.Info("handoff sent", "customer", customer, "operator", d.operator)
}

// ConfirmOrder tries the enriched confirmation with a catalog button. It
// reports whether the customer received it; on false the caller must reply
// with the plain confirmation itself.
func (d *Dispatcher) ConfirmOrder(ctx context.Context, to string, product domain.Product) bool {
	if d.gateway == nil {
		return false
	}

	action := application.Action{Label: catalogActionLabel, URL: product.ReferenceLink}
	if err := d.gateway.SendTextWithAction(ctx, to, richConfirmation(product), action); err != nil {
		d.logger.Warn("enriched confirmation failed, falling back to reply",
			"to", to,
			"product_id", product.ID,
			"error", err,
		)
		return false
	}

	return true
}
