package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card is created at seed time and read-only to the engines; only an
// administrative process mutates it.
type Card struct {
	Number                int64           `json:"number"`
	HolderName            string          `json:"holderName"`
	CVV                   int             `json:"-"`
	PIN                   int             `json:"-"`
	IssueDate             time.Time       `json:"issueDate"`
	ExpirationDate        time.Time       `json:"expirationDate"`
	Contactless           bool            `json:"contactless"`
	Active                bool            `json:"active"`
	DailyTransactionLimit decimal.Decimal `json:"dailyTransactionLimit"`
	DailyWithdrawalLimit  decimal.Decimal `json:"dailyWithdrawalLimit"`
}

func (c *Card) Usable(now time.Time) bool {
	return c.Active && !c.ExpirationDate.Before(now)
}
