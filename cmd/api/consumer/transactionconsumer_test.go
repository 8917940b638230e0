package consumer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

var testDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type fixedClock struct {
	t time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.t
}

func testCard(cvv, pin int) *account.Card {
	return &account.Card{
		Number:                1234567890123456,
		HolderName:            "John Doe",
		CVV:                   cvv,
		PIN:                   pin,
		IssueDate:             testDate.AddDate(-2, 0, 0),
		ExpirationDate:        testDate.AddDate(5, 0, 0),
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(10000),
		DailyWithdrawalLimit:  decimal.NewFromInt(5000),
	}
}

func newTestManager() *transaction.Manager {
	st := store.NewAccountStore()
	st.Add("checking-a", account.NewChecking("checking-a", money.FromInt(100, money.RON), testCard(123, 1234)))
	st.Add("checking-b", account.NewChecking("checking-b", money.FromInt(300, money.RON), testCard(456, 2345)))

	return transaction.NewManager(st, &fixedClock{t: testDate})
}

func TestHandleTransfer(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	d := amqp.Delivery{Body: []byte(`{"from":"checking-a","to":"checking-b","amount":100,"currency":"RON","authCode":123}`)}

	err := tc.handleTransfer(d, m)
	assert.NoError(t, err)

	from, err := m.CheckFunds("checking-a")
	assert.NoError(t, err)
	assert.True(t, from.Amount.IsZero())

	to, err := m.CheckFunds("checking-b")
	assert.NoError(t, err)
	assert.True(t, to.Amount.Equal(decimal.NewFromInt(400)))
}

func TestHandleTransferInvalidPayload(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	err := tc.handleTransfer(amqp.Delivery{Body: []byte(`not-json`)}, m)
	assert.EqualError(t, err, "invalid message payload, unable to parse")
}

func TestHandleTransferNegativeAmount(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	d := amqp.Delivery{Body: []byte(`{"from":"checking-a","to":"checking-b","amount":-5,"currency":"RON","authCode":123}`)}

	err := tc.handleTransfer(d, m)
	assert.EqualError(t, err, "transfer amount can't be negative")

	balance, err := m.CheckFunds("checking-a")
	assert.NoError(t, err)
	assert.True(t, balance.Amount.Equal(decimal.NewFromInt(100)))
}

func TestHandleTransferRejected(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	d := amqp.Delivery{Body: []byte(`{"from":"checking-a","to":"checking-b","amount":150,"currency":"RON","authCode":123}`)}

	err := tc.handleTransfer(d, m)

	var fe *account.FundsError
	assert.ErrorAs(t, err, &fe)
}

func TestHandleWithdraw(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	d := amqp.Delivery{Body: []byte(`{"accountId":"checking-b","amount":200,"currency":"RON","authCode":2345}`)}

	err := tc.handleWithdraw(d, m)
	assert.NoError(t, err)

	balance, err := m.CheckFunds("checking-b")
	assert.NoError(t, err)
	assert.True(t, balance.Amount.Equal(decimal.NewFromInt(100)))
}

func TestHandleWithdrawIncorrectPin(t *testing.T) {
	m := newTestManager()
	tc := TransactionConsumer{Concurrency: 1}

	d := amqp.Delivery{Body: []byte(`{"accountId":"checking-b","amount":50,"currency":"RON","authCode":999}`)}

	err := tc.handleWithdraw(d, m)
	assert.ErrorIs(t, err, transaction.ErrIncorrectPIN)
}
