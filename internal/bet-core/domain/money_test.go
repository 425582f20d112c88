package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyRoundsHalfToEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.00"},
		{"1.015", "1.02"},
		{"1.235", "1.24"},
		{"1.245", "1.24"},
		{"10.999", "11.00"},
		{"0.004", "0.00"},
	}
	for _, c := range cases {
		m, err := MoneyFromString("EUR", c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, m.Amount.StringFixed(2), "input %s", c.in)
	}
}

func TestMoneyFromStringRejectsGarbage(t *testing.T) {
	_, err := MoneyFromString("EUR", "abc")
	require.Error(t, err)
}

func TestNewStakeMustBePositive(t *testing.T) {
	_, err := NewStake("EUR", decimal.Zero)
	assert.Equal(t, KindInvalidStake, KindOf(err))

	_, err = NewStake("EUR", decimal.RequireFromString("-5"))
	assert.Equal(t, KindInvalidStake, KindOf(err))

	stake, err := NewStake("EUR", decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.Equal(t, "0.01 EUR", stake.String())
}

func TestMoneyAddSubtract(t *testing.T) {
	a, _ := MoneyFromString("EUR", "100.00")
	b, _ := MoneyFromString("EUR", "12.34")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "112.34 EUR", sum.String())

	diff, err := sum.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equal(a))
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	eur, _ := MoneyFromString("EUR", "10.00")
	usd, _ := MoneyFromString("USD", "10.00")

	_, err := eur.Add(usd)
	assert.Equal(t, KindCurrencyMismatch, KindOf(err))

	_, err = eur.Subtract(usd)
	assert.Equal(t, KindCurrencyMismatch, KindOf(err))

	assert.False(t, eur.CanCover(usd))
}

func TestMoneyCanCover(t *testing.T) {
	balance, _ := MoneyFromString("EUR", "100.00")
	exact, _ := MoneyFromString("EUR", "100.00")
	more, _ := MoneyFromString("EUR", "100.01")

	assert.True(t, balance.CanCover(exact))
	assert.False(t, balance.CanCover(more))
}
