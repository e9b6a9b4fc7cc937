package v1

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

// postAccount handles POST /v1/accounts.
func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyCreateAccount).(createAccountRequest)
	if !ok {
		badRequest(w, "Request body is missing.")
		return
	}
	s.log.Info("creating account", "account_id", req.AccountID)
	if _, err := s.accountSvc.Create(r.Context(), req.AccountID, *req.Balance); err != nil {
		writeDomainErr(w, err)
		return
	}
	envelope(w, http.StatusCreated, nil, "Account created successfully")
}

// getAccount handles GET /v1/accounts/{accountId}.
func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "accountId")
	s.log.Info("retrieving account", "account_id", id)
	a, found, err := s.accountSvc.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if !found {
		envelope(w, http.StatusNotFound, nil, "Account number "+id+" not found")
		return
	}
	envelope(w, http.StatusOK, toAccountResponse(a), "Account retrieved successfully")
}

// listAccounts handles GET /v1/accounts/getAllAccounts.
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	s.log.Info("retrieving all accounts")
	accounts, err := s.accountSvc.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	envelope(w, http.StatusOK, out, "Accounts retrieved successfully")
}
