package v1

import (
	"github.com/shopspring/decimal"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
)

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Data       any    `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

type createAccountRequest struct {
	AccountID string           `json:"accountId"`
	Balance   *decimal.Decimal `json:"balance"`
}

type transferRequest struct {
	AccountFromID string           `json:"accountFromId"`
	AccountToID   string           `json:"accountToId"`
	Amount        *decimal.Decimal `json:"amount"`
}

type accountResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

func toAccountResponse(a bank.Account) accountResponse {
	return accountResponse{AccountID: a.ID, Balance: a.Balance.String()}
}

type transferResponse struct {
	TransferID    string `json:"transferId"`
	AccountFromID string `json:"accountFromId"`
	AccountToID   string `json:"accountToId"`
	Amount        string `json:"amount"`
	CreatedAt     string `json:"createdAt"`
}
