package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/langowen/cnbrates/deploy/config"
	"github.com/langowen/cnbrates/internal/api_service/app"
	"github.com/langowen/cnbrates/internal/entities"
)

type options struct {
	date       string
	compare    string
	currencies string
}

type rateService interface {
	ExchangeRates(ctx context.Context, currencies []entities.Currency) ([]entities.ExchangeRate, error)
	ExchangeRatesOnDay(ctx context.Context, currencies []entities.Currency, day entities.Day) ([]entities.ExchangeRate, error)
	CompareExchangeRates(ctx context.Context, currencies []entities.Currency, first, second entities.Day) ([]entities.ExchangeRateDifference, error)
	SupportedCurrencies() entities.SupportedCurrencies
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg := config.NewConfig()
	app.InitLogger(cfg.Log.Level)

	svc, err := app.NewRateService(cfg, nil, nil)
	if err != nil {
		slog.Error("Failed to initialize service rate", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, svc, opts, time.Now()); err != nil {
		slog.Error("Could not retrieve exchange rates", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("rates_cli", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.date, "date", "", "rates for a day, yyyy-MM-dd (default latest)")
	fs.StringVar(&opts.compare, "compare", "", "compare two days, first,second as yyyy-MM-dd")
	fs.StringVar(&opts.currencies, "currencies", "", "comma separated codes (default all supported)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.date != "" && opts.compare != "" {
		err := fmt.Errorf("-date and -compare are mutually exclusive")
		fmt.Fprintln(output, err)
		return options{}, err
	}

	return opts, nil
}

func run(ctx context.Context, svc rateService, opts options, now time.Time) error {
	currencies, err := entities.ParseCurrencies(config.Split(opts.currencies))
	if err != nil {
		return err
	}

	switch {
	case opts.compare != "":
		first, second, err := parseCompare(opts.compare, now)
		if err != nil {
			return err
		}

		slog.Info("Comparing exchange rates...", "first", first.String(), "second", second.String())

		diffs, err := svc.CompareExchangeRates(ctx, currencies, first, second)
		if err != nil {
			return err
		}
		report(diffs, "differences")

	case opts.date != "":
		day, err := entities.ParseDay(opts.date, now)
		if err != nil {
			return err
		}

		slog.Info("Getting exchange rates...", "day", day.String())

		rates, err := svc.ExchangeRatesOnDay(ctx, currencies, day)
		if err != nil {
			return err
		}
		report(rates, "exchange rates")

	default:
		slog.Info("Getting latest exchange rates...")

		rates, err := svc.ExchangeRates(ctx, currencies)
		if err != nil {
			return err
		}
		report(rates, "exchange rates")
	}

	return nil
}

func parseCompare(value string, now time.Time) (entities.Day, entities.Day, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return entities.Day{}, entities.Day{}, fmt.Errorf("-compare expects two dates separated by a comma, got %q", value)
	}

	first, err := entities.ParseDay(parts[0], now)
	if err != nil {
		return entities.Day{}, entities.Day{}, err
	}

	second, err := entities.ParseDay(parts[1], now)
	if err != nil {
		return entities.Day{}, entities.Day{}, err
	}

	return first, second, nil
}

func report[T fmt.Stringer](results []T, what string) {
	if len(results) == 0 {
		slog.Warn("No exchange rates were retrieved.")
		return
	}

	slog.Info(fmt.Sprintf("Successfully retrieved %d %s:", len(results), what))
	for _, r := range results {
		slog.Info(r.String())
	}
}
