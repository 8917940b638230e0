package ledger

import (
	"time"

	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
)

// Transaction is immutable once appended to an account history. A
// cross-currency transfer produces two records sharing one id, each
// carrying the owning account's own-currency amount.
type Transaction struct {
	ID        string      `json:"id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Amount    money.Money `json:"amount"`
	Timestamp time.Time   `json:"timestamp"`
}

func (t Transaction) IsWithdrawal() bool {
	return t.From == t.To
}
