package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/ledger"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/internal/clock"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

type Operation int

const (
	Transfer Operation = iota
	Withdraw
)

func (o Operation) String() string {
	return [...]string{"transfer", "withdraw"}[o]
}

// Manager validates and executes transfers and withdrawals. Every
// public operation holds the store lock for its full span and either
// commits completely or leaves no observable side effects.
type Manager struct {
	store *store.AccountStore
	clock clock.Clock
}

func NewManager(st *store.AccountStore, cl clock.Clock) *Manager {
	return &Manager{store: st, clock: cl}
}

// Transfer moves value from one account to another, converting into
// each side's own currency. It returns one record for a same-currency
// transfer and two records sharing one id for a cross-currency one.
func (m *Manager) Transfer(fromID, toID string, value money.Money, authCode int) ([]ledger.Transaction, error) {
	m.store.Lock()
	defer m.store.Unlock()

	fromAccount, ok := m.store.Get(fromID)
	if !ok {
		return nil, errors.Wrapf(account.ErrNotFound, "from account %s", fromID)
	}
	toAccount, ok := m.store.Get(toID)
	if !ok {
		return nil, errors.Wrapf(account.ErrNotFound, "to account %s", toID)
	}

	// savings accounts may only ever be a transfer destination
	if fromAccount.Kind == account.Savings &&
		(toAccount.Kind == account.Checking || toAccount.Kind == account.Savings) {
		return nil, ErrForbiddenTransaction
	}

	amountFrom, err := money.Convert(value, fromAccount.Balance.Currency)
	if err != nil {
		return nil, err
	}

	if err = m.checkCard(fromAccount, toAccount, Transfer, amountFrom, authCode); err != nil {
		return nil, err
	}

	if fromAccount.Balance.Amount.Sub(amountFrom.Amount).IsNegative() {
		return nil, &account.FundsError{Balance: fromAccount.Balance}
	}

	crossCurrency := toAccount.Balance.Currency != fromAccount.Balance.Currency

	// resolve the credit side before touching any state, so a missing
	// rate cannot leave a half-applied transfer
	amountTo := amountFrom
	if crossCurrency {
		if amountTo, err = money.Convert(value, toAccount.Balance.Currency); err != nil {
			return nil, err
		}
	}

	now := m.clock.Now()
	out := ledger.Transaction{
		ID:        uuid.NewString(),
		From:      fromID,
		To:        toID,
		Amount:    amountFrom,
		Timestamp: now,
	}

	fromAccount.Debit(amountFrom)
	fromAccount.Append(out)
	toAccount.Credit(amountTo)

	if crossCurrency {
		in := out
		in.Amount = amountTo
		toAccount.Append(in)
		return []ledger.Transaction{out, in}, nil
	}

	toAccount.Append(out)
	return []ledger.Transaction{out}, nil
}

// Withdraw debits the account and records a self-referential
// transaction. Withdrawals never convert currency.
func (m *Manager) Withdraw(accountID string, amount money.Money, authCode int) (ledger.Transaction, error) {
	m.store.Lock()
	defer m.store.Unlock()

	acc, ok := m.store.Get(accountID)
	if !ok {
		return ledger.Transaction{}, errors.Wrapf(account.ErrNotFound, "account %s", accountID)
	}

	if amount.Currency != acc.Balance.Currency {
		return ledger.Transaction{}, ErrCurrencyMismatch
	}

	// unlike transfer, the balance is checked before card authorization
	if acc.Balance.Amount.Sub(amount.Amount).IsNegative() {
		return ledger.Transaction{}, &account.FundsError{Balance: acc.Balance}
	}

	if err := m.checkCard(acc, nil, Withdraw, amount, authCode); err != nil {
		return ledger.Transaction{}, err
	}

	tx := ledger.Transaction{
		ID:        uuid.NewString(),
		From:      accountID,
		To:        accountID,
		Amount:    amount,
		Timestamp: m.clock.Now(),
	}

	acc.Debit(amount)
	acc.Append(tx)

	return tx, nil
}

func (m *Manager) CheckFunds(accountID string) (money.Money, error) {
	m.store.Lock()
	defer m.store.Unlock()

	acc, ok := m.store.Get(accountID)
	if !ok {
		return money.Money{}, errors.Wrapf(account.ErrNotFound, "account %s", accountID)
	}

	return acc.Balance, nil
}

func (m *Manager) RetrieveTransactions(accountID string) ([]ledger.Transaction, error) {
	m.store.Lock()
	defer m.store.Unlock()

	acc, ok := m.store.Get(accountID)
	if !ok {
		return nil, errors.Wrapf(account.ErrNotFound, "account %s", accountID)
	}

	// callers must never alias the append-only history
	return append([]ledger.Transaction(nil), acc.Transactions...), nil
}

func (m *Manager) checkCard(fromAccount, toAccount *account.Account, op Operation, value money.Money, authCode int) error {
	if fromAccount.Kind != account.Checking || fromAccount.Card == nil {
		return nil
	}

	now := m.clock.Now()
	card := fromAccount.Card

	if !card.Usable(now) {
		return ErrCardInactiveOrExpired
	}
	if op == Transfer && toAccount.Kind == account.Checking &&
		toAccount.Card != nil && !toAccount.Card.Usable(now) {
		return ErrCardInactiveOrExpired
	}

	if op == Transfer && authCode != card.CVV {
		return ErrIncorrectCVV
	}
	if op == Withdraw && authCode != card.PIN {
		return ErrIncorrectPIN
	}

	transfersToday := dailyTotal(fromAccount, now, false)
	if transfersToday.Add(value.Amount).Cmp(card.DailyTransactionLimit) > 0 {
		return ErrDailyTransactionLimitExceeded
	}

	if op == Withdraw {
		withdrawalsToday := dailyTotal(fromAccount, now, true)
		if withdrawalsToday.Add(value.Amount).Cmp(card.DailyWithdrawalLimit) > 0 {
			return ErrDailyWithdrawalLimitExceeded
		}
	}

	return nil
}

// dailyTotal sums the account's records on the current calendar day.
// The transaction-limit sum counts every record, received transfers
// included; withdrawalsOnly narrows to self-referential records.
func dailyTotal(acc *account.Account, now time.Time, withdrawalsOnly bool) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range acc.Transactions {
		if !clock.SameDay(tx.Timestamp, now) {
			continue
		}
		if withdrawalsOnly && !tx.IsWithdrawal() {
			continue
		}
		total = total.Add(tx.Amount.Amount)
	}
	return total
}
