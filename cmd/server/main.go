package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fieldhouse/ledger/internal"
	"github.com/fieldhouse/ledger/internal/billing"
	"github.com/fieldhouse/ledger/internal/events"
	"github.com/fieldhouse/ledger/internal/handler"
	"github.com/fieldhouse/ledger/internal/handler/api"
	"github.com/fieldhouse/ledger/internal/handler/webhook"
	"github.com/fieldhouse/ledger/internal/repository"
	"github.com/fieldhouse/ledger/internal/service"
	"github.com/fieldhouse/ledger/internal/telemetry"
	"github.com/fieldhouse/ledger/internal/worker"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info().Msg("connecting to database")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	logger.Info().Msg("running database migrations")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Initialize pgx connection pool for the application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	store := repository.NewStore(pool)

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewBillingMetrics(registry)

	// Event publisher: NATS when configured, noop otherwise
	var publisher events.Publisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATS.URL, logger)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info().Str("url", cfg.NATS.URL).Msg("event publishing enabled")
	} else {
		publisher = events.NewNoopPublisher()
		logger.Warn().Msg("NATS_URL not set, event publishing disabled")
	}

	// Payment gateway
	var gateway billing.Gateway
	if cfg.Stripe.SecretKey != "" {
		gateway, err = billing.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
		if err != nil {
			return fmt.Errorf("failed to initialize stripe gateway: %w", err)
		}
	} else {
		gateway = billing.NewMockGateway()
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, using mock payment gateway")
	}

	// Initialize services
	catalog := service.NewPlanCatalog(store, logger)
	invoiceLedger := service.NewInvoiceLedger(store, metrics, logger)
	subscriptions := service.NewSubscriptionManager(store, catalog, invoiceLedger, publisher, metrics, logger)
	payments := service.NewPaymentProcessor(store, publisher, metrics, logger)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	billingHandler := api.NewBillingHandler(subscriptions, invoiceLedger, payments, gateway, logger)
	billingHandler.Register(e.Group("/api/billing"))

	stripeWebhook := webhook.NewStripeHandler(gateway, payments, metrics, logger)
	e.POST("/webhooks/stripe", stripeWebhook.HandleWebhook)

	// Maintenance worker: deferred cancellations and past-due flagging
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	maintenance := worker.New(store, publisher, metrics, worker.Config{}, logger)
	go func() {
		if err := maintenance.Start(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("maintenance worker exited")
		}
	}()

	// Start and wait for shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
