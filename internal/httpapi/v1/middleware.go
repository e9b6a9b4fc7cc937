package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type ctxKey string

const ctxKeyCreateAccount ctxKey = "validatedCreateAccount"
const ctxKeyTransfer ctxKey = "validatedTransfer"

// validateCreateAccount parses and validates the POST /v1/accounts body and
// stores the validated request struct in the request context for the handler.
func (s *Server) validateCreateAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req createAccountRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				if errors.Is(err, io.EOF) {
					badRequest(w, "Request body is missing.")
					return
				}
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.AccountID == "" {
				badRequest(w, "accountId missing")
				return
			}
			if req.Balance == nil {
				badRequest(w, "balance missing")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyCreateAccount, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateTransfer parses and validates the POST /v1/accounts/transfer body.
// The amount-positivity check is repeated by the engine; rejecting early here
// keeps malformed requests out of the core, matching the original controller.
func (s *Server) validateTransfer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req transferRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				if errors.Is(err, io.EOF) {
					badRequest(w, "Request body is missing.")
					return
				}
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.AccountFromID == "" {
				badRequest(w, "accountFromId missing")
				return
			}
			if req.AccountToID == "" {
				badRequest(w, "accountToId missing")
				return
			}
			if req.Amount == nil || !req.Amount.IsPositive() {
				badRequest(w, "Transfer amount must be positive")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyTransfer, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
