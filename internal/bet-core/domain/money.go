package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money representa um valor monetário com 2 casas decimais.
// Arredondamento bancário (half-even) na construção e após cada operação.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(currency string, amount decimal.Decimal) Money {
	return Money{Amount: amount.RoundBank(moneyScale), Currency: currency}
}

func MoneyFromString(currency, amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return NewMoney(currency, d), nil
}

// NewStake valida que o valor apostado é estritamente positivo.
func NewStake(currency string, amount decimal.Decimal) (Money, error) {
	if amount.Sign() <= 0 {
		return Money{}, Errorf(KindInvalidStake, "stake must be > 0, got %s", amount)
	}
	return NewMoney(currency, amount), nil
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.Currency, m.Amount.Add(other.Amount)), nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.Currency, m.Amount.Sub(other.Amount)), nil
}

func (m Money) Multiply(factor decimal.Decimal) Money {
	return NewMoney(m.Currency, m.Amount.Mul(factor))
}

// CanCover diz se este saldo cobre o valor dado (mesma moeda e montante suficiente).
func (m Money) CanCover(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Cmp(other.Amount) >= 0
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) String() string {
	return m.Amount.StringFixed(moneyScale) + " " + m.Currency
}

func (m Money) requireSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return Errorf(KindCurrencyMismatch, "currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return nil
}
