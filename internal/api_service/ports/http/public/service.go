package public

import (
	"context"

	"github.com/langowen/cnbrates/internal/entities"
)

type Service interface {
	ExchangeRates(ctx context.Context, currencies []entities.Currency) ([]entities.ExchangeRate, error)
	ExchangeRatesOnDay(ctx context.Context, currencies []entities.Currency, day entities.Day) ([]entities.ExchangeRate, error)
	CompareExchangeRates(ctx context.Context, currencies []entities.Currency, first, second entities.Day) ([]entities.ExchangeRateDifference, error)
	SupportedCurrencies() entities.SupportedCurrencies
}
