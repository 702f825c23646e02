package processor

import (
	"log/slog"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Comparator computes how the per-unit rate of each requested currency moved
// between two daily documents.
type Comparator struct {
	base     entities.Currency
	observer Observer
}

func NewComparator(base entities.Currency, observer Observer) *Comparator {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Comparator{
		base:     base,
		observer: observer,
	}
}

// Compare follows the order of requested. Only the first record of a code is
// used on each side. A currency missing or invalid on either side is left out.
func (c *Comparator) Compare(requested []entities.Currency, first, second []*entities.RawRate) []entities.ExchangeRateDifference {
	const op = "processor.Compare"

	diffs := make([]entities.ExchangeRateDifference, 0, len(requested))
	if len(first) == 0 || len(second) == 0 {
		return diffs
	}

	seen := make(map[entities.Currency]struct{}, len(requested))

	for _, currency := range requested {
		if _, ok := seen[currency]; ok {
			continue
		}
		seen[currency] = struct{}{}

		if currency == c.base {
			continue
		}

		a, b := findFirst(first, currency.Code()), findFirst(second, currency.Code())
		if a == nil || b == nil {
			slog.Debug("Skipped comparison, currency missing on one date",
				"op", op,
				"currency", currency.Code(),
				"first_found", a != nil,
				"second_found", b != nil,
			)
			c.observer.RecordSkipped(SkipMissing)
			continue
		}

		if !isValid(a) || !isValid(b) {
			slog.Warn("Skipped comparison, invalid exchange rate", "op", op, "currency", currency.Code())
			c.observer.RecordSkipped(SkipInvalid)
			continue
		}

		diffs = append(diffs, difference(c.base, currency, normalize(a), normalize(b)))
	}

	return diffs
}

func difference(base, target entities.Currency, firstValue, secondValue decimal.Decimal) entities.ExchangeRateDifference {
	diff := secondValue.Sub(firstValue)

	percentage := decimal.Zero
	if !firstValue.IsZero() {
		percentage = diff.Div(firstValue).Mul(hundred).Round(2)
	}

	return entities.ExchangeRateDifference{
		Source:               base,
		Target:               target,
		FirstDateRate:        firstValue,
		SecondDateRate:       secondValue,
		Difference:           diff,
		PercentageDifference: percentage,
	}
}

func findFirst(raw []*entities.RawRate, code string) *entities.RawRate {
	for _, r := range raw {
		if r != nil && r.CurrencyCode == code {
			return r
		}
	}
	return nil
}
