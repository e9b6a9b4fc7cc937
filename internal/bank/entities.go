// Package bank defines the domain entities of the accounts service.
package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a monetary account held in the ledger.
// The ID is caller-supplied and immutable after creation; the balance uses
// exact decimal arithmetic so transfers never accumulate rounding drift.
type Account struct {
	ID      string
	Balance decimal.Decimal
}

// Transfer records one completed movement of funds between two accounts.
type Transfer struct {
	ID            uuid.UUID
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CreatedAt     time.Time
}
