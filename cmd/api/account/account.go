package account

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/DavidArdelean7/ledger-api/cmd/api/ledger"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
)

var ErrNotFound = errors.New("specified account does not exist")

type FundsError struct {
	Balance money.Money
}

func (fe *FundsError) Error() string {
	return fmt.Sprintf("insufficient balance: %s %s", fe.Balance.Amount, fe.Balance.Currency)
}

type Kind string

const (
	Checking Kind = "CHECKING"
	Savings  Kind = "SAVINGS"
)

type Frequency string

const (
	Monthly   Frequency = "MONTHLY"
	Quarterly Frequency = "QUARTERLY"
)

// Account is a tagged union over the two variants: Card is set for
// checking accounts, the interest fields for savings accounts. The
// balance currency is fixed at creation.
type Account struct {
	ID           string               `json:"id"`
	Kind         Kind                 `json:"kind"`
	Balance      money.Money          `json:"balance"`
	Transactions []ledger.Transaction `json:"transactions"`

	Card *Card `json:"card,omitempty"`

	InterestRate        decimal.Decimal `json:"interestRate,omitempty"`
	Frequency           Frequency       `json:"frequency,omitempty"`
	LastInterestApplied time.Time       `json:"lastInterestApplied,omitempty"`
}

func NewChecking(id string, balance money.Money, card *Card) *Account {
	return &Account{
		ID:      id,
		Kind:    Checking,
		Balance: balance,
		Card:    card,
	}
}

func NewSavings(id string, balance money.Money, rate decimal.Decimal, frequency Frequency, lastApplied time.Time) *Account {
	return &Account{
		ID:                  id,
		Kind:                Savings,
		Balance:             balance,
		InterestRate:        rate,
		Frequency:           frequency,
		LastInterestApplied: lastApplied,
	}
}

func (a *Account) Debit(m money.Money) {
	a.Balance.Amount = a.Balance.Amount.Sub(m.Amount)
}

func (a *Account) Credit(m money.Money) {
	a.Balance.Amount = a.Balance.Amount.Add(m.Amount)
}

func (a *Account) Append(tx ledger.Transaction) {
	a.Transactions = append(a.Transactions, tx)
}
