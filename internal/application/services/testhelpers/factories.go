package testhelpers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/stretchr/testify/require"
)

const (
	OperatorNumber = "+254700000009"
	CustomerNumber = "+254700000001"
	CustomerFrom   = "whatsapp:" + CustomerNumber
	OperatorFrom   = "whatsapp:" + OperatorNumber
)

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(domain.DefaultProducts())
	require.NoError(t, err)
	return catalog
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SampleNotice is an M-Pesa style notice whose payer is "John Doe".
const SampleNotice = "Lipa na mpesa. Payment of Ksh 1500 from John Doe on 2024-01-01 *334#"
