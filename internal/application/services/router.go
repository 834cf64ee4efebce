package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// Router classifies each inbound message and runs exactly one intent. It
// holds no per-conversation state; the ledgers are the only shared state.
type Router struct {
	catalog           *domain.Catalog
	orders            domain.OrderLedger
	payments          domain.PaymentLedger
	dispatcher        *Dispatcher
	printer           application.ReceiptPrinter
	operator          domain.Address
	recentOrdersLimit int
	logger            *slog.Logger
	now               func() time.Time
}

func NewRouter(
	catalog *domain.Catalog,
	orders domain.OrderLedger,
	payments domain.PaymentLedger,
	dispatcher *Dispatcher,
	printer application.ReceiptPrinter,
	operator domain.Address,
	recentOrdersLimit int,
	logger *slog.Logger,
) *Router {
	return &Router{
		catalog:           catalog,
		orders:            orders,
		payments:          payments,
		dispatcher:        dispatcher,
		printer:           printer,
		operator:          operator,
		recentOrdersLimit: recentOrdersLimit,
		logger:            logger,
		now:               time.Now,
	}
}

// Handle always returns a reply. Errors are rendered as reply text and never
// reach the transport.
func (r *Router) Handle(ctx context.Context, msg InboundMessage) Reply {
	sender := domain.NormalizeAddress(msg.From)
	cmd := Classify(msg.Body, sender, r.operator, r.catalog)

	reply, err := r.dispatch(ctx, cmd, sender, msg)
	if err != nil {
		r.logError(cmd, sender, err)
		return textReply(application.ToReply(err))
	}

	r.logger.Debug("message handled", "intent", cmd.Intent.String(), "sender", sender, "empty_reply", reply.Empty())
	return reply
}

func (r *Router) dispatch(ctx context.Context, cmd Command, sender domain.Address, msg InboundMessage) (Reply, error) {
	switch cmd.Intent {
	case IntentMenu:
		return textReply(renderMenu(r.catalog)), nil

	case IntentOrderByID:
		product, err := r.catalog.Lookup(cmd.Arg)
		if err != nil {
			return Reply{}, application.NewInvalidProductError(err)
		}
		return r.placeOrder(ctx, sender, msg.From, product)

	case IntentOrderVerbose:
		if cmd.Arg == "" {
			return Reply{}, application.NewMissingArgumentError()
		}
		product, err := r.resolveProduct(cmd)
		if err != nil {
			return Reply{}, application.NewInvalidProductError(err)
		}
		return r.placeOrder(ctx, sender, msg.From, product)

	case IntentSupport:
		r.dispatcher.Handoff(ctx, sender, supportSummary)
		return textReply(msgSupportAck), nil

	case IntentListOrders:
		return r.listOrders(ctx)

	case IntentPaymentNotice:
		return r.capturePayment(ctx, msg.Body)

	case IntentReceipt:
		return r.printReceipt(ctx, sender)

	case IntentInvalidProduct:
		return Reply{}, application.NewInvalidProductError(domain.ErrProductNotFound)
	}

	return textReply(msgHelp), nil
}

// resolveProduct tries the token as an id, then the rest of the message as a
// display name, then the token as a display name.
func (r *Router) resolveProduct(cmd Command) (domain.Product, error) {
	if p, err := r.catalog.Lookup(cmd.Arg); err == nil {
		return p, nil
	}
	if p, err := r.catalog.LookupByName(cmd.Rest); err == nil {
		return p, nil
	}
	return r.catalog.LookupByName(cmd.Arg)
}

func (r *Router) placeOrder(ctx context.Context, sender domain.Address, rawFrom string, product domain.Product) (Reply, error) {
	order, err := domain.NewOrder(sender, product.ID)
	if err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	if err := r.orders.Append(ctx, order); err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	r.logger.Info("order placed",
		"order_id", order.ID,
		"customer", sender,
		"product_id", product.ID,
	)

	r.dispatcher.Handoff(ctx, sender, orderSummary(product))

	// The enriched send is the reply when it lands; sending both would
	// duplicate the confirmation.
	if r.dispatcher.ConfirmOrder(ctx, rawFrom, product) {
		return Reply{}, nil
	}

	return textReply(fallbackConfirmation(product)), nil
}

func (r *Router) listOrders(ctx context.Context) (Reply, error) {
	orders, err := r.orders.Recent(ctx, r.recentOrdersLimit)
	if err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	lines := make([]domain.OrderLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, domain.ResolveOrder(r.catalog, *o))
	}

	return textReply(renderOrders(lines)), nil
}

func (r *Router) capturePayment(ctx context.Context, body string) (Reply, error) {
	notice, err := domain.NewPaymentNotice(body)
	if err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	if err := r.payments.Append(ctx, notice); err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	r.logger.Info("payment notice captured", "payment_id", notice.ID, "payer", notice.PayerName)

	return textReply(paymentAck(notice.PayerName)), nil
}

func (r *Router) printReceipt(ctx context.Context, sender domain.Address) (Reply, error) {
	if !isOperator(sender, r.operator) {
		return Reply{}, application.NewUnauthorizedError()
	}

	notice, err := r.payments.MostRecent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNoticeNotFound) {
			return Reply{}, application.NewMissingPaymentError(err)
		}
		return Reply{}, application.NewInternalError(err)
	}

	order, err := r.orders.MostRecent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return Reply{}, application.NewMissingOrderError(err)
		}
		return Reply{}, application.NewInternalError(err)
	}

	receipt := domain.NewReceipt(*notice, domain.ResolveOrder(r.catalog, *order), r.now())
	if err := r.printer.Print(ctx, receipt); err != nil {
		return Reply{}, application.NewInternalError(err)
	}

	return textReply(receiptPrinted(receipt)), nil
}

func (r *Router) logError(cmd Command, sender domain.Address, err error) {
	attrs := []any{
		"intent", cmd.Intent.String(),
		"sender", sender,
		"code", application.ToErrorCode(err),
		"error", err,
	}

	switch application.CategorizeError(err) {
	case application.CategoryUserInput, application.CategoryMissingRecord:
		r.logger.Info("message rejected", attrs...)
	default:
		r.logger.Error("message failed", attrs...)
	}
}
