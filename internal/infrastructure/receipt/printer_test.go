package receipt_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services/testhelpers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/receipt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func sampleReceipt() domain.Receipt {
	price := decimal.NewFromInt(1500)
	return domain.Receipt{
		Customer: "John Doe",
		Item:     "Logo Design",
		Price:    price,
		Total:    price,
		IssuedAt: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestConsolePrinter_WritesRenderedBlock(t *testing.T) {
	var buf bytes.Buffer
	p := receipt.NewConsolePrinter(&buf, testhelpers.DiscardLogger())

	require.NoError(t, p.Print(context.Background(), sampleReceipt()))

	out := buf.String()
	assert.Contains(t, out, "RECEIPT")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Logo Design")
	assert.Contains(t, out, "KES 1500.00")
}

func TestConsolePrinter_WriteFailure(t *testing.T) {
	p := receipt.NewConsolePrinter(failingWriter{}, testhelpers.DiscardLogger())

	err := p.Print(context.Background(), sampleReceipt())

	assert.ErrorContains(t, err, "write receipt")
}

func TestConsolePrinter_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	p := receipt.NewConsolePrinter(&buf, testhelpers.DiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Print(ctx, sampleReceipt())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
