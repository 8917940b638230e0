package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	RON Currency = "RON"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

func (c Currency) Supported() bool {
	return c == RON || c == EUR || c == USD
}

type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func New(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

func FromInt(amount int64, currency Currency) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: currency}
}

// Display renders the amount in the currency's minor units, e.g. "lei100.00".
func (m Money) Display() string {
	c := gomoney.GetCurrency(string(m.Currency))
	units := m.Amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return gomoney.New(units, string(m.Currency)).Display()
}
