package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
	"github.com/iampritesh07/luxsoft-challenge/internal/config"
	httpapi "github.com/iampritesh07/luxsoft-challenge/internal/httpapi/v1"
	"github.com/iampritesh07/luxsoft-challenge/internal/notification"
	"github.com/iampritesh07/luxsoft-challenge/internal/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// Logger (slog to stdout). Level via LOG_LEVEL; format via LOG_FORMAT (json|text, default json)
	logger := buildLogger(cfg)
	slog.SetDefault(logger)

	store := memory.New()
	if cfg.DevSeed {
		seed := []bank.Account{
			{ID: "1", Balance: decimal.NewFromInt(1000)},
			{ID: "2", Balance: decimal.NewFromInt(500)},
		}
		for _, a := range seed {
			store.SeedAccount(a)
		}
		logDevSeed(logger, seed)
		printDevSeedBanner(seed)
	}

	notifier := notification.New(logger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(store, notifier, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("accounts service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
}

// logDevSeed emits structured logs with the seeded account ids
func logDevSeed(l *slog.Logger, accs []bank.Account) {
	ids := make([]string, 0, len(accs))
	for _, a := range accs {
		ids = append(ids, a.ID)
	}
	l.Info("DEV seed (memory)", "account_ids", ids)
}

// printDevSeedBanner prints a simple banner to stdout for easy copy/paste of IDs
func printDevSeedBanner(accs []bank.Account) {
	fmt.Println("==================== DEV SEED ====================")
	for _, a := range accs {
		fmt.Printf("account_id: %s balance: %s\n", a.ID, a.Balance.String())
	}
	fmt.Println("==================================================")
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
