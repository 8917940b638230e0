package consumer

import (
	"github.com/shopspring/decimal"

	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
)

type TransferMessage struct {
	FromID   string          `json:"from"`
	ToID     string          `json:"to"`
	Amount   decimal.Decimal `json:"amount"`
	Currency money.Currency  `json:"currency"`
	AuthCode int             `json:"authCode"`
}

type WithdrawMessage struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  money.Currency  `json:"currency"`
	AuthCode  int             `json:"authCode"`
}
