package processor

import (
	"log/slog"

	"github.com/langowen/cnbrates/internal/entities"
)

// Processor turns raw daily records into per-unit exchange rates against the
// base currency.
type Processor struct {
	base     entities.Currency
	observer Observer
}

func NewProcessor(base entities.Currency, observer Observer) *Processor {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Processor{
		base:     base,
		observer: observer,
	}
}

// Process keeps the input order and does not merge repeated codes. Bad
// records are dropped, never returned as errors.
func (p *Processor) Process(requested []entities.Currency, raw []*entities.RawRate) []entities.ExchangeRate {
	const op = "processor.Process"

	rates := make([]entities.ExchangeRate, 0, len(requested))
	if len(raw) == 0 {
		return rates
	}

	codes := make(map[string]entities.Currency, len(requested))
	for _, c := range requested {
		codes[c.Code()] = c
	}

	for _, r := range raw {
		if r == nil {
			slog.Debug("Skipped null exchange rate record", "op", op)
			p.observer.RecordSkipped(SkipNil)
			continue
		}

		target, ok := codes[r.CurrencyCode]
		if !ok {
			continue
		}

		if r.CurrencyCode == p.base.Code() {
			slog.Info("Skipped exchange rate for base currency", "op", op, "currency", r.CurrencyCode)
			p.observer.RecordSkipped(SkipBase)
			continue
		}

		if !isValid(r) {
			slog.Warn("Skipped invalid exchange rate",
				"op", op,
				"currency", r.CurrencyCode,
				"amount", r.Amount,
				"rate", r.Rate.String(),
			)
			p.observer.RecordSkipped(SkipInvalid)
			continue
		}

		rates = append(rates, entities.NewExchangeRate(p.base, target, normalize(r)))
	}

	return rates
}
