package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PairError struct {
	From Currency
	To   Currency
}

func (pe *PairError) Error() string {
	return fmt.Sprintf("no conversion rate from %s to %s", pe.From, pe.To)
}

type pair struct {
	from Currency
	to   Currency
}

// rates are directional and independently defined, they are not exact reciprocals.
var rates = map[pair]decimal.Decimal{
	{RON, EUR}: decimal.NewFromFloat(0.2),
	{EUR, RON}: decimal.NewFromFloat(4.98),
	{RON, USD}: decimal.NewFromFloat(0.22),
	{USD, RON}: decimal.NewFromFloat(4.57),
	{EUR, USD}: decimal.NewFromFloat(1.09),
	{USD, EUR}: decimal.NewFromFloat(0.92),
}

func Convert(m Money, target Currency) (Money, error) {
	if m.Currency == target {
		return m, nil
	}

	rate, ok := rates[pair{from: m.Currency, to: target}]
	if !ok {
		return Money{}, &PairError{From: m.Currency, To: target}
	}

	return Money{Amount: m.Amount.Mul(rate), Currency: target}, nil
}
