package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRate_String(t *testing.T) {
	r := NewExchangeRate(MustCurrency("CZK"), MustCurrency("USD"), decimal.RequireFromString("22.5"))
	assert.Equal(t, "CZK/USD=22.5", r.String())
}

func TestExchangeRateDifference_String(t *testing.T) {
	d := ExchangeRateDifference{
		Source:               MustCurrency("CZK"),
		Target:               MustCurrency("USD"),
		FirstDateRate:        decimal.NewFromInt(20),
		SecondDateRate:       decimal.NewFromInt(22),
		Difference:           decimal.NewFromInt(2),
		PercentageDifference: decimal.NewFromInt(10),
	}
	assert.Equal(t, "CZK/USD - 20 -> 22 = 2 | +10.00%", d.String())

	d.Difference = decimal.NewFromInt(-2)
	d.PercentageDifference = decimal.RequireFromString("-9.09")
	assert.Equal(t, "CZK/USD - 20 -> 22 = -2 | -9.09%", d.String())
}

func TestExchangeRate_JSON(t *testing.T) {
	r := NewExchangeRate(MustCurrency("CZK"), MustCurrency("EUR"), decimal.NewFromInt(25))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"CZK","target":"EUR","value":"25"}`, string(b))
}
