package processor

import (
	"strings"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/shopspring/decimal"
)

// Skip reasons reported to the Observer.
const (
	SkipNil     = "nil"
	SkipBase    = "base"
	SkipInvalid = "invalid"
	SkipMissing = "missing"
)

// Observer is told about every record dropped on the way.
type Observer interface {
	RecordSkipped(reason string)
}

type nopObserver struct{}

func (nopObserver) RecordSkipped(string) {}

func isValid(r *entities.RawRate) bool {
	return strings.TrimSpace(r.CurrencyCode) != "" &&
		r.Rate.IsPositive() &&
		r.Amount > 0
}

// normalize returns the price of a single unit.
func normalize(r *entities.RawRate) decimal.Decimal {
	if r.Amount > 1 {
		return r.Rate.Div(decimal.NewFromInt(int64(r.Amount)))
	}
	return r.Rate
}
