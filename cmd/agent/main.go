package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/config"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/domain"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/catalog"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/messaging"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/persistence/sqlite"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/infrastructure/receipt"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/interfaces/rest/middleware"
)

type ledgers struct {
	orders   domain.OrderLedger
	payments domain.PaymentLedger
	close    func()
}

func openLedgers(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*ledgers, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &ledgers{
			orders:   postgres.NewOrderRepository(db),
			payments: postgres.NewPaymentRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &ledgers{
			orders:   sqlite.NewOrderRepository(db),
			payments: sqlite.NewPaymentRepository(db),
			close:    db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting whatsapp agent",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"database", cfg.Database.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	store, err := openLedgers(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open ledgers", "error", err)
		os.Exit(1)
	}
	defer store.close()

	products, err := catalog.Load(cfg.Catalog, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	operator := domain.NormalizeAddress(cfg.Operator.Number)

	gateway := messaging.NewTwilioGateway(cfg.Twilio, logger)
	gateway = messaging.NewTimeoutGateway(gateway, cfg.Twilio.SendTimeout)

	dispatcher := services.NewDispatcher(gateway, operator, logger)
	printer := receipt.NewConsolePrinter(os.Stdout, logger)

	router := services.NewRouter(
		products,
		store.orders,
		store.payments,
		dispatcher,
		printer,
		operator,
		cfg.Ledger.RecentOrdersLimit,
		logger,
	)

	mux := http.NewServeMux()
	handlers.NewHandlers(router, logger).Register(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
