package messaging

import (
	"context"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application"
)

// TimeoutGateway bounds every send on the inner gateway. The inner call runs
// in its own goroutine because the REST client does not observe contexts.
//
// When the caller's context carries a deadline, a send gets at most half of
// the time left, so a request making several sends in a row always keeps
// time to write its own reply.
type TimeoutGateway struct {
	inner   application.MessagingGateway
	timeout time.Duration
}

// NewTimeoutGateway passes a nil inner gateway through unchanged.
func NewTimeoutGateway(inner application.MessagingGateway, timeout time.Duration) application.MessagingGateway {
	if inner == nil {
		return nil
	}
	return &TimeoutGateway{
		inner:   inner,
		timeout: timeout,
	}
}

func (g *TimeoutGateway) SendText(ctx context.Context, to, body string) error {
	return bounded(ctx, g.timeout, opSendText, to, func(ctx context.Context) error {
		return g.inner.SendText(ctx, to, body)
	})
}

func (g *TimeoutGateway) SendTextWithAction(ctx context.Context, to, body string, action application.Action) error {
	return bounded(ctx, g.timeout, opSendTextWithAction, to, func(ctx context.Context) error {
		return g.inner.SendTextWithAction(ctx, to, body, action)
	})
}

func bounded(ctx context.Context, timeout time.Duration, op, to string, send func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, sendBudget(ctx, timeout))
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- send(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return &application.GatewayError{Operation: op, To: to, Err: ctx.Err()}
	}
}

func sendBudget(ctx context.Context, timeout time.Duration) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return timeout
	}
	if half := time.Until(deadline) / 2; half < timeout {
		return half
	}
	return timeout
}
