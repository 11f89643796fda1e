package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	wekeza "github.com/goliatone/go-wekeza"
	"github.com/goliatone/go-wekeza/adapters/gologger"
	"github.com/goliatone/go-wekeza/core"
	"github.com/goliatone/go-wekeza/webhooks"
)

const (
	envPort     = "WEBHOOK_PORT"
	envLogLevel = "WEKEZA_LOG_LEVEL"

	defaultPort  = "5000"
	webhookPath  = "/webhooks/wekeza"
	serviceName  = "wekeza-webhook-server"
	shutdownWait = 10 * time.Second
)

func main() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: gologger.ParseLevel(os.Getenv(envLogLevel)),
	}))
	provider := gologger.NewSlogProvider(base)
	logger := provider.GetLogger("wekeza.webhooks.server")

	client, err := wekeza.FromEnv(ctx, wekeza.WithLoggerProvider(provider))
	if err != nil {
		logger.Error("client setup failed", "error", core.Describe(err))
		return 1
	}
	handler, err := newMux(client, logger)
	if err != nil {
		logger.Error("webhook server setup failed", "error", err)
		return 1
	}

	port := strings.TrimSpace(os.Getenv(envPort))
	if port == "" {
		port = defaultPort
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("webhook server listening", "port", port, "endpoint", webhookPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("webhook server stopped", "error", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("webhook server shutdown failed", "error", err)
			return 1
		}
		logger.Info("webhook server stopped")
	}
	return 0
}

// newMux serves signed deliveries on webhookPath and a health check.
func newMux(client *wekeza.Client, logger glog.Logger) (http.Handler, error) {
	logger = glog.Ensure(logger)
	receiver := client.WebhookHandler(eventHandlers(logger))
	if receiver == nil {
		return nil, errors.New("webhooks: WEKEZA_WEBHOOK_SECRET is required")
	}

	mux := http.NewServeMux()
	mux.Handle(webhookPath, receiver)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})
	return mux, nil
}

func eventHandlers(logger glog.Logger) webhooks.HandlerTable {
	return webhooks.HandlerTable{
		webhooks.EventTransactionPosted: webhooks.TransactionHandler(func(ctx context.Context, data webhooks.TransactionEventData) error {
			logger.WithContext(ctx).Info("transaction posted",
				"id", data.ID,
				"amount", data.Amount.String(),
				"currency", data.Currency,
			)
			return nil
		}),
		webhooks.EventPaymentCompleted: webhooks.PaymentHandler(func(ctx context.Context, data webhooks.PaymentEventData) error {
			logger.WithContext(ctx).Info("payment completed", "id", data.ID, "status", data.Status)
			return nil
		}),
		webhooks.EventPaymentFailed: webhooks.PaymentHandler(func(ctx context.Context, data webhooks.PaymentEventData) error {
			reason := data.FailureReason
			if reason == "" {
				reason = "Unknown"
			}
			logger.WithContext(ctx).Warn("payment failed", "id", data.ID, "reason", reason)
			return nil
		}),
		webhooks.EventAccountBalanceLow: webhooks.BalanceLowHandler(func(ctx context.Context, data webhooks.BalanceLowEventData) error {
			logger.WithContext(ctx).Warn("low balance alert",
				"account_id", data.AccountID,
				"balance", data.CurrentBalance.String(),
			)
			return nil
		}),
	}
}
