package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ n int }

func (f fixedRand) IntN(int) int { return f.n }

func TestOddsAllowList(t *testing.T) {
	for _, v := range []string{"2.00", "3.00", "4.00", "2", "3.0"} {
		_, err := OddsFromString(v)
		assert.NoError(t, err, "odds %s", v)
	}
	for _, v := range []string{"1.50", "2.50", "5.00", "0", "-2.00"} {
		_, err := OddsFromString(v)
		assert.Equal(t, KindUnsupportedOdds, KindOf(err), "odds %s", v)
	}
}

func TestOddsPayout(t *testing.T) {
	odds, err := NewOdds(decimal.RequireFromString("3.00"))
	require.NoError(t, err)

	stake, _ := MoneyFromString("EUR", "12.34")
	payout := odds.Payout(stake)
	assert.Equal(t, "37.02 EUR", payout.String())
}

func TestRandomOddsCoversAllowList(t *testing.T) {
	assert.True(t, RandomOdds(fixedRand{0}).Equal(mustOdds("2.00")))
	assert.True(t, RandomOdds(fixedRand{1}).Equal(mustOdds("3.00")))
	assert.True(t, RandomOdds(fixedRand{2}).Equal(mustOdds("4.00")))
}
