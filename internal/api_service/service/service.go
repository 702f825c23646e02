package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/langowen/cnbrates/internal/currency_fetcher/processor"
	"github.com/langowen/cnbrates/internal/entities"
	"github.com/pkg/errors"
)

// Service answers rate queries for the supported currencies. It neither
// validates dates nor recovers from source failures.
type Service struct {
	source     RateSource
	notifier   Notifier
	processor  *processor.Processor
	comparator *processor.Comparator
	currencies entities.SupportedCurrencies
	now        func() time.Time
}

// NewService wires the pipeline. notifier may be nil.
func NewService(source RateSource, notifier Notifier, currencies entities.SupportedCurrencies, observer processor.Observer) (*Service, error) {
	const op = "service.NewService"

	if source == nil {
		return nil, errors.Errorf("%s: rate source is required", op)
	}

	return &Service{
		source:     source,
		notifier:   notifier,
		processor:  processor.NewProcessor(currencies.Base(), observer),
		comparator: processor.NewComparator(currencies.Base(), observer),
		currencies: currencies,
		now:        time.Now,
	}, nil
}

func (s *Service) SupportedCurrencies() entities.SupportedCurrencies {
	return s.currencies
}

// ExchangeRates returns the latest rates. An empty currencies means the whole
// supported set.
func (s *Service) ExchangeRates(ctx context.Context, currencies []entities.Currency) ([]entities.ExchangeRate, error) {
	return s.ExchangeRatesOnDay(ctx, currencies, entities.Latest())
}

// ExchangeRatesOnDay expects day to be validated by the caller.
func (s *Service) ExchangeRatesOnDay(ctx context.Context, currencies []entities.Currency, day entities.Day) ([]entities.ExchangeRate, error) {
	raw, err := s.fetch(ctx, day)
	if err != nil {
		return nil, err
	}

	return s.processor.Process(s.requested(currencies), raw), nil
}

// CompareExchangeRates fails when either day can not be fetched.
func (s *Service) CompareExchangeRates(ctx context.Context, currencies []entities.Currency, first, second entities.Day) ([]entities.ExchangeRateDifference, error) {
	rawFirst, err := s.fetch(ctx, first)
	if err != nil {
		return nil, err
	}

	rawSecond, err := s.fetch(ctx, second)
	if err != nil {
		return nil, err
	}

	return s.comparator.Compare(s.requested(currencies), rawFirst, rawSecond), nil
}

func (s *Service) requested(currencies []entities.Currency) []entities.Currency {
	if len(currencies) == 0 {
		return s.currencies.All()
	}
	return currencies
}

func (s *Service) fetch(ctx context.Context, day entities.Day) ([]*entities.RawRate, error) {
	const op = "service.fetch"

	raw, err := s.source.DailyRates(ctx, day)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		event := entities.FetchEvent{
			Day:       day.String(),
			Records:   len(raw),
			FetchedAt: s.now().UTC(),
		}
		if err := s.notifier.PublishFetched(ctx, event); err != nil {
			slog.Warn("Failed to publish fetch event", "op", op, "day", day.String(), "error", err)
		}
	}

	return raw, nil
}
