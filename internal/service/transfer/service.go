// Package transfer implements the transfer engine: all-or-nothing moves of a
// positive amount between two accounts, serialized by a single engine-wide
// lock.
package transfer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
	"github.com/iampritesh07/luxsoft-challenge/internal/errs"
)

// Store defines the account operations the engine needs. Every balance
// mutation is routed through UpdateAccount so the store stays the single
// source of truth.
type Store interface {
	GetAccount(ctx context.Context, id string) (bank.Account, bool, error)
	UpdateAccount(ctx context.Context, a bank.Account) error
}

// Notifier receives fire-and-forget notifications of completed transfer legs.
// It is not awaited for a result and a failing notifier never rolls back a
// committed transfer.
type Notifier interface {
	NotifyAboutTransfer(account bank.Account, message string)
}

// Service executes transfers against the store.
type Service interface {
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bank.Transfer, error)
}

type service struct {
	store    Store
	notifier Notifier
	// mu serializes every transfer in the system, not just those sharing an
	// account. Correctness over throughput; see Transfer.
	mu sync.Mutex
}

func New(store Store, notifier Notifier) Service {
	return &service{store: store, notifier: notifier}
}

// Transfer moves amount from the account fromID to the account toID as one
// atomic unit. The balance check runs against live account state inside the
// critical section, so two concurrent transfers can never both pass a check
// drawn from stale data. On any failure no balance changes; on success the
// source is debited and the destination credited by exactly amount, both
// persisted before the lock is released.
func (s *service) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bank.Transfer, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return bank.Transfer{}, errs.ErrInvalidAmount
	}
	if fromID == toID {
		return bank.Transfer{}, errs.ErrSameAccount
	}

	if _, ok, err := s.store.GetAccount(ctx, fromID); err != nil {
		return bank.Transfer{}, err
	} else if !ok {
		return bank.Transfer{}, &errs.AccountNotFoundError{ID: fromID}
	}
	if _, ok, err := s.store.GetAccount(ctx, toID); err != nil {
		return bank.Transfer{}, err
	} else if !ok {
		return bank.Transfer{}, &errs.AccountNotFoundError{ID: toID}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-read both accounts now that we hold the lock; the pre-lock reads
	// only establish existence.
	from, _, err := s.store.GetAccount(ctx, fromID)
	if err != nil {
		return bank.Transfer{}, err
	}
	to, _, err := s.store.GetAccount(ctx, toID)
	if err != nil {
		return bank.Transfer{}, err
	}

	if from.Balance.LessThan(amount) {
		return bank.Transfer{}, &errs.InsufficientBalanceError{ID: fromID}
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	if err := s.store.UpdateAccount(ctx, from); err != nil {
		return bank.Transfer{}, err
	}
	if err := s.store.UpdateAccount(ctx, to); err != nil {
		return bank.Transfer{}, err
	}

	s.notifier.NotifyAboutTransfer(from, "Transferred "+amount.String()+" to account "+toID)
	s.notifier.NotifyAboutTransfer(to, "Received "+amount.String()+" from account "+fromID)

	return bank.Transfer{
		ID:            uuid.New(),
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
