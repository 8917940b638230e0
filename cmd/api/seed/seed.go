package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/internal/clock"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

var (
	card1 = &account.Card{
		Number:                1234567890123456,
		HolderName:            "John Doe",
		CVV:                   123,
		PIN:                   1234,
		IssueDate:             date(2021, 1, 1),
		ExpirationDate:        date(2031, 12, 31),
		Contactless:           true,
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(10000),
		DailyWithdrawalLimit:  decimal.NewFromInt(5000),
	}

	card2 = &account.Card{
		Number:                2345678901234567,
		HolderName:            "Jane Smith",
		CVV:                   456,
		PIN:                   2345,
		IssueDate:             date(2022, 2, 15),
		ExpirationDate:        date(2032, 11, 30),
		Contactless:           false,
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(7000),
		DailyWithdrawalLimit:  decimal.NewFromInt(3000),
	}

	card3 = &account.Card{
		Number:                3456789012345678,
		HolderName:            "Alex Johnson",
		CVV:                   789,
		PIN:                   3456,
		IssueDate:             date(2023, 3, 20),
		ExpirationDate:        date(2033, 10, 30),
		Contactless:           true,
		Active:                false,
		DailyTransactionLimit: decimal.NewFromInt(5000),
		DailyWithdrawalLimit:  decimal.NewFromInt(2000),
	}

	card4 = &account.Card{
		Number:                4567890123456789,
		HolderName:            "Chris Lee",
		CVV:                   101,
		PIN:                   4567,
		IssueDate:             date(2020, 4, 25),
		ExpirationDate:        date(2030, 9, 25),
		Contactless:           true,
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(8000),
		DailyWithdrawalLimit:  decimal.NewFromInt(4000),
	}

	// deliberately expired
	card5 = &account.Card{
		Number:                5678901234567890,
		HolderName:            "Jack Black",
		CVV:                   232,
		PIN:                   5678,
		IssueDate:             date(2019, 5, 29),
		ExpirationDate:        date(2023, 2, 20),
		Contactless:           false,
		Active:                false,
		DailyTransactionLimit: decimal.NewFromInt(1000),
		DailyWithdrawalLimit:  decimal.NewFromInt(500),
	}

	// low limits, used to exercise the daily caps
	card6 = &account.Card{
		Number:                6789012345678901,
		HolderName:            "Jim Bill",
		CVV:                   421,
		PIN:                   6789,
		IssueDate:             date(2012, 5, 3),
		ExpirationDate:        date(2030, 2, 25),
		Contactless:           false,
		Active:                true,
		DailyTransactionLimit: decimal.NewFromInt(900),
		DailyWithdrawalLimit:  decimal.NewFromInt(500),
	}
)

// Accounts builds the seed set: two savings accounts and six checking
// accounts, each checking account exclusively owning one card.
func Accounts(now time.Time) []*account.Account {
	return []*account.Account{
		account.NewSavings(uuid.NewString(), money.FromInt(1000, money.RON),
			decimal.NewFromFloat(0.04), account.Monthly, now),
		account.NewSavings(uuid.NewString(), money.FromInt(2000, money.RON),
			decimal.NewFromFloat(0.05), account.Quarterly, now),
		account.NewChecking(uuid.NewString(), money.FromInt(100, money.RON), card1),
		account.NewChecking(uuid.NewString(), money.FromInt(300, money.RON), card2),
		account.NewChecking(uuid.NewString(), money.FromInt(5000, money.RON), card3),
		account.NewChecking(uuid.NewString(), money.FromInt(1000, money.EUR), card4),
		account.NewChecking(uuid.NewString(), money.FromInt(500, money.EUR), card5),
		account.NewChecking(uuid.NewString(), money.FromInt(1000, money.RON), card6),
	}
}

func Run(st *store.AccountStore, cl clock.Clock) {
	log.Info("seeding accounts")

	for _, acc := range Accounts(cl.Now()) {
		st.Add(acc.ID, acc)
		log.Infof("seeded %s account %s with balance %s %s",
			acc.Kind, acc.ID, acc.Balance.Amount, acc.Balance.Currency)
	}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
