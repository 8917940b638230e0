package savings

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

var testDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type fixedClock struct {
	t time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.t
}

func newTestManager(start time.Time) (*Manager, *store.AccountStore) {
	st := store.NewAccountStore()
	return NewManager(st, &fixedClock{t: start}), st
}

func addSavings(st *store.AccountStore, id string, balance int64, rate float64,
	frequency account.Frequency, lastApplied time.Time) *account.Account {
	acc := account.NewSavings(id, money.FromInt(balance, money.RON),
		decimal.NewFromFloat(rate), frequency, lastApplied)
	st.Add(id, acc)
	return acc
}

func TestPassTimeMonthly(t *testing.T) {
	m, st := newTestManager(testDate)
	acc := addSavings(st, "savings-a", 1000, 0.04, account.Monthly, testDate)

	systemDate, err := m.PassTime()

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC), systemDate)
	assert.True(t, acc.Balance.Amount.Equal(decimal.NewFromInt(1040)),
		"balance expected 1040, got %s", acc.Balance.Amount)
	assert.Equal(t, systemDate, acc.LastInterestApplied)
}

func TestPassTimeMonthlyCompounds(t *testing.T) {
	m, st := newTestManager(testDate)
	acc := addSavings(st, "savings-a", 1000, 0.04, account.Monthly, testDate)

	expected := decimal.NewFromInt(1000)
	for i := 0; i < 3; i++ {
		_, err := m.PassTime()
		assert.NoError(t, err)

		expected = expected.Add(expected.Mul(decimal.NewFromFloat(0.04)))
		assert.True(t, acc.Balance.Amount.Equal(expected),
			"tick %d: balance expected %s, got %s", i+1, expected, acc.Balance.Amount)
	}
}

func TestPassTimeQuarterly(t *testing.T) {
	m, st := newTestManager(testDate)
	acc := addSavings(st, "savings-b", 2000, 0.05, account.Quarterly, testDate)

	for i := 0; i < 2; i++ {
		_, err := m.PassTime()
		assert.NoError(t, err)
		assert.True(t, acc.Balance.Amount.Equal(decimal.NewFromInt(2000)),
			"tick %d: balance changed before the quarter was due", i+1)
	}

	_, err := m.PassTime()

	assert.NoError(t, err)
	assert.True(t, acc.Balance.Amount.Equal(decimal.NewFromInt(2100)),
		"balance expected 2100, got %s", acc.Balance.Amount)
}

func TestPassTimeMonthEndClamping(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	m, st := newTestManager(jan31)
	acc := addSavings(st, "savings-a", 1000, 0.04, account.Monthly, jan31)

	// Jan 31 + 1 month clamps to Feb 29 on both the system date and the
	// due date, so the day-of-month match still holds
	systemDate, err := m.PassTime()

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), systemDate)
	assert.True(t, acc.Balance.Amount.Equal(decimal.NewFromInt(1040)),
		"balance expected 1040, got %s", acc.Balance.Amount)
}

func TestPassTimeSkipsCheckingAccounts(t *testing.T) {
	m, st := newTestManager(testDate)
	checking := account.NewChecking("checking-a", money.FromInt(100, money.RON), nil)
	st.Add(checking.ID, checking)

	before := *checking

	_, err := m.PassTime()

	assert.NoError(t, err)
	if diff := cmp.Diff(before, *checking); diff != "" {
		t.Errorf("pass time mutated a checking account:\n%v", diff)
	}
}

func TestPassTimeUnconfiguredFrequency(t *testing.T) {
	m, st := newTestManager(testDate)
	broken := addSavings(st, "savings-x", 500, 0.02, account.Frequency("WEEKLY"), testDate)
	monthly := addSavings(st, "savings-a", 1000, 0.04, account.Monthly, testDate)

	systemDate := m.SystemDate()

	_, err := m.PassTime()

	var freqErr *FrequencyError
	if !errors.As(err, &freqErr) {
		t.Fatalf("expected FrequencyError, got: %v", err)
	}
	assert.Equal(t, account.Frequency("WEEKLY"), freqErr.Frequency)
	assert.EqualError(t, err, `no capitalization interval configured for frequency "WEEKLY"`)

	// the whole tick is rolled off: no interest anywhere, clock unmoved
	assert.True(t, broken.Balance.Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, monthly.Balance.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, systemDate, m.SystemDate())
}

func TestSystemDateAdvancesOneMonthPerTick(t *testing.T) {
	m, _ := newTestManager(testDate)

	assert.Equal(t, testDate, m.SystemDate())

	_, err := m.PassTime()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC), m.SystemDate())

	_, err = m.PassTime()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC), m.SystemDate())
}
