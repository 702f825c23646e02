package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeService struct {
	calls      []string
	days       []entities.Day
	currencies []entities.Currency
	err        error
}

func (f *fakeService) ExchangeRates(_ context.Context, currencies []entities.Currency) ([]entities.ExchangeRate, error) {
	f.calls = append(f.calls, "latest")
	f.currencies = currencies
	return nil, f.err
}

func (f *fakeService) ExchangeRatesOnDay(_ context.Context, currencies []entities.Currency, day entities.Day) ([]entities.ExchangeRate, error) {
	f.calls = append(f.calls, "day")
	f.currencies = currencies
	f.days = append(f.days, day)
	return nil, f.err
}

func (f *fakeService) CompareExchangeRates(_ context.Context, currencies []entities.Currency, first, second entities.Day) ([]entities.ExchangeRateDifference, error) {
	f.calls = append(f.calls, "compare")
	f.currencies = currencies
	f.days = append(f.days, first, second)
	return nil, f.err
}

func (f *fakeService) SupportedCurrencies() entities.SupportedCurrencies {
	return entities.SupportedCurrencies{}
}

func TestRun_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		opts      options
		wantCall  string
		wantDays  []string
		wantCodes int
	}{
		{name: "latest", opts: options{}, wantCall: "latest"},
		{name: "day", opts: options{date: "2024-03-01", currencies: "USD,EUR"}, wantCall: "day", wantDays: []string{"2024-03-01"}, wantCodes: 2},
		{name: "compare", opts: options{compare: "2024-03-01,2024-03-14"}, wantCall: "compare", wantDays: []string{"2024-03-01", "2024-03-14"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}

			require.NoError(t, run(context.Background(), svc, tt.opts, now))

			assert.Equal(t, []string{tt.wantCall}, svc.calls)
			assert.Len(t, svc.currencies, tt.wantCodes)

			days := make([]string, 0, len(svc.days))
			for _, d := range svc.days {
				days = append(days, d.String())
			}
			if tt.wantDays == nil {
				assert.Empty(t, days)
			} else {
				assert.Equal(t, tt.wantDays, days)
			}
		})
	}
}

func TestRun_InvalidInputNeverReachesService(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want error
	}{
		{name: "future date", opts: options{date: "2024-03-16"}, want: entities.ErrFutureDate},
		{name: "bad date", opts: options{date: "15/03/2024"}, want: entities.ErrInvalidDate},
		{name: "bad compare date", opts: options{compare: "2024-03-01,"}, want: entities.ErrEmptyDate},
		{name: "bad currency", opts: options{currencies: "USD,E"}, want: entities.ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}

			err := run(context.Background(), svc, tt.opts, now)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, svc.calls)
		})
	}
}

func TestRun_SourceErrorReturned(t *testing.T) {
	svc := &fakeService{err: entities.NewSourceError(entities.SourceTimeout, context.DeadlineExceeded)}

	err := run(context.Background(), svc, options{}, now)

	assert.ErrorIs(t, err, entities.ErrSourceTimeout)
}

func TestParseCompare(t *testing.T) {
	first, second, err := parseCompare("2024-03-01, 2024-03-14", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", first.String())
	assert.Equal(t, "2024-03-14", second.String())

	_, _, err = parseCompare("2024-03-01", now)
	assert.Error(t, err)

	_, _, err = parseCompare("2024-03-01,2024-03-02,2024-03-03", now)
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-date", "2024-03-01", "-currencies", "USD"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{date: "2024-03-01", currencies: "USD"}, opts)

	_, err = parseFlags([]string{"-date", "2024-03-01", "-compare", "2024-03-01,2024-03-02"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-unknown"}, io.Discard)
	assert.Error(t, err)
}
