package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrInvalidAmount indicates a transfer amount that is not strictly positive.
	ErrInvalidAmount = errors.New("transfer amount must be positive")
	// ErrSameAccount indicates a transfer where source and destination match.
	ErrSameAccount = errors.New("transfer must be between two different accounts")
	// ErrInvalid is used for malformed caller input (empty ids etc.).
	ErrInvalid = errors.New("invalid")
)

// DuplicateAccountError reports a create for an id that already exists.
type DuplicateAccountError struct {
	ID string
}

func (e *DuplicateAccountError) Error() string {
	return "account id " + e.ID + " already exists"
}

// AccountNotFoundError reports an operation against an unknown account id.
type AccountNotFoundError struct {
	ID string
}

func (e *AccountNotFoundError) Error() string {
	return "account " + e.ID + " not found"
}

// InsufficientBalanceError reports a source account that lacks funds at
// check time.
type InsufficientBalanceError struct {
	ID string
}

func (e *InsufficientBalanceError) Error() string {
	return "insufficient balance in account " + e.ID
}
