package store

import (
	"sync"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
)

// AccountStore is the keyed in-memory repository shared by both
// engines. The embedded mutex is the global ordering lock: engines
// hold it for the full span of an operation (read, validate, mutate,
// append), which also covers the map itself.
type AccountStore struct {
	sync.Mutex
	accounts map[string]*account.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*account.Account),
	}
}

// Add inserts the account, overwriting any existing entry for the id.
func (s *AccountStore) Add(id string, acc *account.Account) {
	s.accounts[id] = acc
}

func (s *AccountStore) Get(id string) (*account.Account, bool) {
	acc, ok := s.accounts[id]
	return acc, ok
}

func (s *AccountStore) Exist(id string) bool {
	_, ok := s.accounts[id]
	return ok
}

func (s *AccountStore) GetAll() []*account.Account {
	accounts := make([]*account.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		accounts = append(accounts, acc)
	}
	return accounts
}
