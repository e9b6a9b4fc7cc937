// Package memory provides the in-memory account store backing the service.
package memory

import (
	"context"
	"sync"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
	"github.com/iampritesh07/luxsoft-challenge/internal/errs"
)

// Store is an in-memory implementation of the account repository used by the
// services. It is guarded by an RWMutex for concurrent reads/writes and is the
// single owner of all account state: readers receive value copies, never a
// reference into the map.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]bank.Account
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		accounts: make(map[string]bank.Account),
	}
}

// SeedAccount inserts an account unconditionally, for local dev/tests.
func (s *Store) SeedAccount(a bank.Account) { s.mu.Lock(); s.accounts[a.ID] = a; s.mu.Unlock() }

// CreateAccount inserts a new account. If the id already exists the insert is
// rejected with DuplicateAccountError and the stored account is untouched;
// two racing creates for one id resolve to exactly one winner.
func (s *Store) CreateAccount(_ context.Context, a bank.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; ok {
		return &errs.DuplicateAccountError{ID: a.ID}
	}
	s.accounts[a.ID] = a
	return nil
}

// GetAccount returns the account for id and whether it exists. Absence is a
// signal, not an error.
func (s *Store) GetAccount(_ context.Context, id string) (bank.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok, nil
}

// UpdateAccount overwrites the stored account identified by a.ID. It assumes
// the id exists; callers create accounts through CreateAccount first.
func (s *Store) UpdateAccount(_ context.Context, a bank.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
	return nil
}

// AllAccounts returns a point-in-time snapshot of every stored account, in
// no particular order. Callers get value copies, not internal state.
func (s *Store) AllAccounts(_ context.Context) ([]bank.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bank.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	return out, nil
}

// ClearAccounts empties the store. Used for test isolation; callers must
// serialize it against in-flight transfers themselves.
func (s *Store) ClearAccounts() {
	s.mu.Lock()
	s.accounts = make(map[string]bank.Account)
	s.mu.Unlock()
}
