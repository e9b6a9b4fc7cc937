// Package account implements account lifecycle rules: ids are caller-supplied
// and immutable, creation is create-once, and accounts are never individually
// deleted.
package account

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
	"github.com/iampritesh07/luxsoft-challenge/internal/errs"
)

// Repo defines read operations needed by the service.
type Repo interface {
	GetAccount(ctx context.Context, id string) (bank.Account, bool, error)
	AllAccounts(ctx context.Context) ([]bank.Account, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	CreateAccount(ctx context.Context, a bank.Account) error
}

// Service exposes creation and retrieval of accounts.
type Service interface {
	Create(ctx context.Context, id string, balance decimal.Decimal) (bank.Account, error)
	Get(ctx context.Context, id string) (bank.Account, bool, error)
	List(ctx context.Context) ([]bank.Account, error)
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

// Create registers a new account with the given opening balance. The balance
// is accepted as-is, including negative values; only transfers enforce
// non-negativity of the source account.
func (s *service) Create(ctx context.Context, id string, balance decimal.Decimal) (bank.Account, error) {
	if strings.TrimSpace(id) == "" {
		return bank.Account{}, errs.ErrInvalid
	}
	a := bank.Account{ID: id, Balance: balance}
	if err := s.writer.CreateAccount(ctx, a); err != nil {
		return bank.Account{}, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id string) (bank.Account, bool, error) {
	if id == "" {
		return bank.Account{}, false, errs.ErrInvalid
	}
	return s.repo.GetAccount(ctx, id)
}

func (s *service) List(ctx context.Context) ([]bank.Account, error) {
	return s.repo.AllAccounts(ctx)
}
