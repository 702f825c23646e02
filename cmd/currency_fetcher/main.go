package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/langowen/cnbrates/deploy/config"
	fetcherApp "github.com/langowen/cnbrates/internal/currency_fetcher/app"
)

func main() {
	cfg := config.NewConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fetcherApp.NewApp(cfg).Start(ctx); err != nil {
		log.Fatalln("Failed to run fetcher", "error", err)
	}

	slog.Info("fetcher stopped")
}
