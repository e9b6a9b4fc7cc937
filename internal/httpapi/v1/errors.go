package v1

import (
	"errors"
	"net/http"

	"github.com/iampritesh07/luxsoft-challenge/internal/errs"
)

func badRequest(w http.ResponseWriter, msg string) {
	envelope(w, http.StatusBadRequest, nil, msg)
}

// writeDomainErr maps core error kinds to the user-facing status and message.
// Anything unrecognized is answered as a distinct unexpected-error category,
// never folded into the domain kinds.
func writeDomainErr(w http.ResponseWriter, err error) {
	var dup *errs.DuplicateAccountError
	var nf *errs.AccountNotFoundError
	var insuf *errs.InsufficientBalanceError
	switch {
	case errors.As(err, &dup):
		badRequest(w, "Account id "+dup.ID+" already exists")
	case errors.As(err, &nf):
		badRequest(w, "Account number "+nf.ID+" not found")
	case errors.As(err, &insuf):
		badRequest(w, "Insufficient balance in "+insuf.ID+" account")
	case errors.Is(err, errs.ErrInvalidAmount):
		badRequest(w, "Transfer amount must be positive")
	case errors.Is(err, errs.ErrSameAccount):
		badRequest(w, "Transfer must be between two different accounts")
	case errors.Is(err, errs.ErrInvalid):
		badRequest(w, "Please check the input arguments")
	default:
		envelope(w, http.StatusInternalServerError, nil, "An unexpected error occurred")
	}
}
