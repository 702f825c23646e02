package processor

import (
	"testing"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComparator_Compare(t *testing.T) {
	c := NewComparator(czk, nil)

	got := c.Compare(currencies("USD"),
		[]*entities.RawRate{raw("USD", "20", 1)},
		[]*entities.RawRate{raw("USD", "22", 1)},
	)

	require.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, czk, d.Source)
	assert.Equal(t, "USD", d.Target.Code())
	assert.True(t, dec("20").Equal(d.FirstDateRate))
	assert.True(t, dec("22").Equal(d.SecondDateRate))
	assert.True(t, dec("2").Equal(d.Difference))
	assert.Equal(t, "10.00", d.PercentageDifference.StringFixed(2))
}

func TestComparator_NormalizesAndRounds(t *testing.T) {
	c := NewComparator(czk, nil)

	got := c.Compare(currencies("JPY"),
		[]*entities.RawRate{raw("JPY", "15", 100)},
		[]*entities.RawRate{raw("JPY", "16", 100)},
	)

	require.Len(t, got, 1)
	assert.True(t, dec("0.15").Equal(got[0].FirstDateRate))
	assert.True(t, dec("0.16").Equal(got[0].SecondDateRate))
	assert.True(t, dec("0.01").Equal(got[0].Difference))
	// 0.01 / 0.15 * 100 = 6.666...
	assert.True(t, dec("6.67").Equal(got[0].PercentageDifference))
}

func TestComparator_FollowsRequestedOrder(t *testing.T) {
	c := NewComparator(czk, nil)

	first := []*entities.RawRate{raw("USD", "20", 1), raw("EUR", "25", 1), raw("JPY", "15", 100)}
	second := []*entities.RawRate{raw("JPY", "15", 100), raw("EUR", "24", 1), raw("USD", "21", 1)}

	got := c.Compare(currencies("JPY", "USD", "EUR"), first, second)

	require.Len(t, got, 3)
	assert.Equal(t, "JPY", got[0].Target.Code())
	assert.Equal(t, "USD", got[1].Target.Code())
	assert.Equal(t, "EUR", got[2].Target.Code())
	assert.True(t, got[0].PercentageDifference.IsZero())
}

func TestComparator_SkipsBaseMissingAndInvalid(t *testing.T) {
	obs := countingObserver{}
	c := NewComparator(czk, obs)

	first := []*entities.RawRate{raw("CZK", "1", 1), raw("USD", "20", 1), raw("EUR", "25", 1), raw("GBP", "-1", 1)}
	second := []*entities.RawRate{raw("CZK", "1", 1), raw("USD", "22", 1), raw("GBP", "28", 1)}

	got := c.Compare(currencies("CZK", "USD", "EUR", "GBP"), first, second)

	require.Len(t, got, 1)
	assert.Equal(t, "USD", got[0].Target.Code())
	assert.Equal(t, countingObserver{SkipMissing: 1, SkipInvalid: 1}, obs)
}

func TestComparator_FirstMatchWins(t *testing.T) {
	c := NewComparator(czk, nil)

	got := c.Compare(currencies("USD"),
		[]*entities.RawRate{nil, raw("USD", "20", 1), raw("USD", "30", 1)},
		[]*entities.RawRate{raw("USD", "22", 1), raw("USD", "10", 1)},
	)

	require.Len(t, got, 1)
	assert.True(t, dec("2").Equal(got[0].Difference))
}

func TestComparator_EmptySide(t *testing.T) {
	c := NewComparator(czk, nil)
	some := []*entities.RawRate{raw("USD", "20", 1)}

	assert.Empty(t, c.Compare(currencies("USD"), nil, some))
	assert.Empty(t, c.Compare(currencies("USD"), some, []*entities.RawRate{}))
	assert.NotNil(t, c.Compare(currencies("USD"), nil, nil))
}

func TestComparator_SignIsAntisymmetric(t *testing.T) {
	c := NewComparator(czk, nil)

	pairs := [][2]*entities.RawRate{
		{raw("USD", "20", 1), raw("USD", "22", 1)},
		{raw("EUR", "25.5", 1), raw("EUR", "24.1", 1)},
		{raw("JPY", "15.3", 100), raw("JPY", "14.9", 100)},
	}

	for _, p := range pairs {
		requested := currencies(p[0].CurrencyCode)
		forward := c.Compare(requested, []*entities.RawRate{p[0]}, []*entities.RawRate{p[1]})
		backward := c.Compare(requested, []*entities.RawRate{p[1]}, []*entities.RawRate{p[0]})

		require.Len(t, forward, 1)
		require.Len(t, backward, 1)
		assert.True(t, forward[0].Difference.Neg().Equal(backward[0].Difference))
		assert.Equal(t, forward[0].PercentageDifference.Sign(), -backward[0].PercentageDifference.Sign())
	}
}

func TestDifference_ZeroFirstRate(t *testing.T) {
	d := difference(czk, entities.MustCurrency("USD"), decimal.Zero, dec("5"))

	assert.True(t, d.PercentageDifference.IsZero())
	assert.True(t, dec("5").Equal(d.Difference))
}
