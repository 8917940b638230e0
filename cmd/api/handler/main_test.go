package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/cmd/api/savings"
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

func testCard(cvv, pin int, txLimit, wLimit int64) *account.Card {
	return &account.Card{
		Number:                1234567890123456,
		HolderName:            "John Doe",
		CVV:                   cvv,
		PIN:                   pin,
		IssueDate:             testDate.AddDate(-2, 0, 0),
		ExpirationDate:        testDate.AddDate(5, 0, 0),
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(txLimit),
		DailyWithdrawalLimit:  decimal.NewFromInt(wLimit),
	}
}

// newTestApp builds an application over a fresh in-memory store with a
// nil cache and a nil notifier, so handler tests need no redis or mq.
func newTestApp() *Application {
	st := store.NewAccountStore()

	st.Add("checking-a", account.NewChecking("checking-a", money.FromInt(100, money.RON), testCard(123, 1234, 10000, 5000)))
	st.Add("checking-b", account.NewChecking("checking-b", money.FromInt(300, money.RON), testCard(456, 2345, 7000, 3000)))
	st.Add("checking-d", account.NewChecking("checking-d", money.FromInt(1000, money.EUR), testCard(101, 4567, 8000, 4000)))
	st.Add("checking-f", account.NewChecking("checking-f", money.FromInt(1000, money.RON), testCard(421, 6789, 900, 500)))
	st.Add("savings-a", account.NewSavings("savings-a", money.FromInt(1000, money.RON),
		decimal.NewFromFloat(0.04), account.Monthly, testDate))

	cl := &fixedClock{t: testDate}
	tm := transaction.NewManager(st, cl)
	sm := savings.NewManager(st, cl)

	return NewApplication(st, tm, sm, nil, nil)
}
