// Package receipt emits rendered receipts to an operational sink.
package receipt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
)

// ConsolePrinter writes each receipt block to w. Writes are serialized so
// concurrent receipts never interleave.
type ConsolePrinter struct {
	mu     sync.Mutex
	w      io.Writer
	logger *slog.Logger
}

func NewConsolePrinter(w io.Writer, logger *slog.Logger) *ConsolePrinter {
	return &ConsolePrinter{w: w, logger: logger}
}

func (p *ConsolePrinter) Print(ctx context.Context, r domain.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	_, err := fmt.Fprintln(p.w, r.Render())
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}

	p.logger.Info("receipt printed",
		"customer", r.Customer,
		"item", r.Item,
		"total", domain.FormatPrice(r.Total),
	)
	return nil
}
