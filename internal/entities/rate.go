package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the price of one unit of Target expressed in Source.
type ExchangeRate struct {
	Source Currency        `json:"source"`
	Target Currency        `json:"target"`
	Value  decimal.Decimal `json:"value"`
}

func NewExchangeRate(source, target Currency, value decimal.Decimal) ExchangeRate {
	return ExchangeRate{
		Source: source,
		Target: target,
		Value:  value,
	}
}

func (r ExchangeRate) String() string {
	return fmt.Sprintf("%s/%s=%s", r.Source, r.Target, r.Value)
}

// ExchangeRateDifference compares the per-unit rate of Target between two days.
type ExchangeRateDifference struct {
	Source               Currency        `json:"source"`
	Target               Currency        `json:"target"`
	FirstDateRate        decimal.Decimal `json:"first_date_rate"`
	SecondDateRate       decimal.Decimal `json:"second_date_rate"`
	Difference           decimal.Decimal `json:"difference"`
	PercentageDifference decimal.Decimal `json:"percentage_difference"`
}

func (d ExchangeRateDifference) String() string {
	sign := ""
	if !d.PercentageDifference.IsNegative() {
		sign = "+"
	}
	return fmt.Sprintf("%s/%s - %s -> %s = %s | %s%s%%",
		d.Source, d.Target,
		d.FirstDateRate, d.SecondDateRate,
		d.Difference, sign, d.PercentageDifference.StringFixed(2),
	)
}
