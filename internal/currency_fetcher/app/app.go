package app

import (
	"context"
	"log/slog"

	"github.com/langowen/cnbrates/deploy/config"
	apiApp "github.com/langowen/cnbrates/internal/api_service/app"
	"github.com/langowen/cnbrates/internal/api_service/service"
	"github.com/langowen/cnbrates/internal/currency_fetcher/fetcher"
	"github.com/pkg/errors"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Start polls the rate source until ctx is done.
func (a *App) Start(ctx context.Context) error {
	const op = "fetcherApp.Start"

	apiApp.InitLogger(a.cfg.Log.Level)
	slog.Info("Logger initialized")

	slog.With("config", a.cfg.Redacted()).Info("starting application")

	var notifier service.Notifier
	if n := apiApp.InitNotifier(ctx, a.cfg); n != nil {
		defer n.Close()
		notifier = n
	}

	rateService, err := apiApp.NewRateService(a.cfg, nil, notifier)
	if err != nil {
		return errors.Wrap(err, op)
	}
	slog.Info("Service initialized")

	slog.Info("starting fetcher", "interval", a.cfg.Fetcher.Interval)

	err = fetcher.NewFetcher(rateService, a.cfg.Fetcher.Interval).StartFetcher(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
