package savings

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/internal/clock"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

type FrequencyError struct {
	Frequency account.Frequency
}

func (fe *FrequencyError) Error() string {
	return fmt.Sprintf("no capitalization interval configured for frequency %q", fe.Frequency)
}

var capitalizationInterval = map[account.Frequency]int{
	account.Monthly:   1,
	account.Quarterly: 3,
}

// Manager drives the virtual calendar. The system date starts at the
// injected clock's current time and moves only through PassTime.
type Manager struct {
	store      *store.AccountStore
	systemDate time.Time
}

func NewManager(st *store.AccountStore, cl clock.Clock) *Manager {
	return &Manager{store: st, systemDate: cl.Now()}
}

func (m *Manager) SystemDate() time.Time {
	m.store.Lock()
	defer m.store.Unlock()

	return m.systemDate
}

// PassTime advances the virtual calendar by one month and compounds
// interest on every savings account whose due date lands exactly on
// the new system date. An unmapped frequency fails the whole tick
// before any account is touched.
func (m *Manager) PassTime() (time.Time, error) {
	m.store.Lock()
	defer m.store.Unlock()

	next := clock.AddMonths(m.systemDate, 1)

	var due []*account.Account
	for _, acc := range m.store.GetAll() {
		if acc.Kind != account.Savings {
			continue
		}

		interval, ok := capitalizationInterval[acc.Frequency]
		if !ok {
			return m.systemDate, &FrequencyError{Frequency: acc.Frequency}
		}

		if clock.SameDay(clock.AddMonths(acc.LastInterestApplied, interval), next) {
			due = append(due, acc)
		}
	}

	for _, acc := range due {
		interest := acc.Balance.Amount.Mul(acc.InterestRate)
		acc.Balance.Amount = acc.Balance.Amount.Add(interest)
		acc.LastInterestApplied = next

		log.Infof("capitalized interest for account %s, new balance is %s %s",
			acc.ID, acc.Balance.Amount, acc.Balance.Currency)
	}

	m.systemDate = next
	return next, nil
}
