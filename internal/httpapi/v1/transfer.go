package v1

import (
	"net/http"
	"time"
)

// postTransfer handles POST /v1/accounts/transfer.
func (s *Server) postTransfer(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyTransfer).(transferRequest)
	if !ok {
		badRequest(w, "Request body is missing.")
		return
	}
	s.log.Info("executing transfer",
		"from_account_id", req.AccountFromID,
		"to_account_id", req.AccountToID,
		"amount", req.Amount.String(),
	)
	tr, err := s.transferSvc.Transfer(r.Context(), req.AccountFromID, req.AccountToID, *req.Amount)
	if err != nil {
		transfersTotal.WithLabelValues("failure").Inc()
		writeDomainErr(w, err)
		return
	}
	transfersTotal.WithLabelValues("success").Inc()
	resp := transferResponse{
		TransferID:    tr.ID.String(),
		AccountFromID: tr.FromAccountID,
		AccountToID:   tr.ToAccountID,
		Amount:        tr.Amount.String(),
		CreatedAt:     tr.CreatedAt.Format(time.RFC3339),
	}
	envelope(w, http.StatusOK, resp, "Transfer successful")
}
