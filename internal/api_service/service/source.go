package service

import (
	"context"

	"github.com/langowen/cnbrates/internal/entities"
)

//go:generate mockgen -source=source.go -destination=mock_source_test.go -package=service

// RateSource returns the raw records of one daily document. Errors are
// *entities.SourceError.
type RateSource interface {
	DailyRates(ctx context.Context, day entities.Day) ([]*entities.RawRate, error)
}

// Notifier is told about every successful fetch.
type Notifier interface {
	PublishFetched(ctx context.Context, event entities.FetchEvent) error
}
