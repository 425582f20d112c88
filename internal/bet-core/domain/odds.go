package domain

import (
	"github.com/shopspring/decimal"
)

// Odds é o multiplicador de prêmio de uma seleção.
// Somente os valores 2.00, 3.00 e 4.00 são aceitos.
type Odds struct {
	value decimal.Decimal
}

var allowedOdds = []decimal.Decimal{
	decimal.RequireFromString("2.00"),
	decimal.RequireFromString("3.00"),
	decimal.RequireFromString("4.00"),
}

func NewOdds(value decimal.Decimal) (Odds, error) {
	normalized := value.RoundBank(moneyScale)
	for _, allowed := range allowedOdds {
		if normalized.Equal(allowed) {
			return Odds{value: normalized}, nil
		}
	}
	return Odds{}, Errorf(KindUnsupportedOdds, "unsupported odds %s (allowed: 2.00, 3.00, 4.00)", normalized)
}

func OddsFromString(value string) (Odds, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Odds{}, Errorf(KindUnsupportedOdds, "unsupported odds %q", value)
	}
	return NewOdds(d)
}

func (o Odds) Decimal() decimal.Decimal {
	return o.value
}

// Payout calcula o prêmio de um stake: stake * odds, moeda herdada do stake.
func (o Odds) Payout(stake Money) Money {
	return stake.Multiply(o.value)
}

func (o Odds) Equal(other Odds) bool {
	return o.value.Equal(other.value)
}

func mustOdds(value string) Odds {
	o, err := OddsFromString(value)
	if err != nil {
		panic(err)
	}
	return o
}

// Rand abstrai a fonte de aleatoriedade (injetável p/ testes determinísticos).
type Rand interface {
	IntN(n int) int
}

// RandomOdds sorteia uma das odds permitidas.
func RandomOdds(r Rand) Odds {
	switch r.IntN(3) {
	case 0:
		return mustOdds("2.00")
	case 1:
		return mustOdds("3.00")
	default:
		return mustOdds("4.00")
	}
}
