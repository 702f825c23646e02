package fetcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/pkg/errors"
)

// RatesService is satisfied by service.Service, which also publishes the
// fetch event.
type RatesService interface {
	ExchangeRates(ctx context.Context, currencies []entities.Currency) ([]entities.ExchangeRate, error)
}

// Fetcher polls the latest rates of every supported currency on a fixed
// interval.
type Fetcher struct {
	service  RatesService
	interval time.Duration
}

func NewFetcher(service RatesService, interval time.Duration) *Fetcher {
	return &Fetcher{
		service:  service,
		interval: interval,
	}
}

// StartFetcher fetches once right away and then on every tick until ctx is
// done. Failed fetches are logged and the loop goes on.
func (f *Fetcher) StartFetcher(ctx context.Context) error {
	const op = "fetcher.StartFetcher"

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.fetchRates(ctx)

	for {
		select {
		case <-ticker.C:
			f.fetchRates(ctx)

		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), op)
		}
	}
}

func (f *Fetcher) fetchRates(ctx context.Context) {
	const op = "fetcher.fetchRates"

	rates, err := f.service.ExchangeRates(ctx, nil)
	if err != nil {
		slog.Error("Could not retrieve exchange rates", "op", op, "error", err)
		return
	}

	if len(rates) == 0 {
		slog.Warn("No exchange rates were retrieved.", "op", op)
		return
	}

	slog.Info("Exchange rates updated", "op", op, "count", len(rates))
	for _, rate := range rates {
		slog.Debug(rate.String(), "op", op)
	}
}
