package entities

import "github.com/shopspring/decimal"

// RawRate is one unvalidated record of the daily rates document.
// Amount units of CurrencyCode cost Rate in the base currency.
type RawRate struct {
	ValidFor     string          `json:"validFor"`
	Order        int             `json:"order"`
	Country      string          `json:"country"`
	CurrencyName string          `json:"currency"`
	Amount       int             `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
}
