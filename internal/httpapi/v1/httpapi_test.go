package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
	"github.com/iampritesh07/luxsoft-challenge/internal/notification"
	"github.com/iampritesh07/luxsoft-challenge/internal/storage/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type envelopeResp struct {
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
}

type acctResp struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

func setup(t *testing.T) (*memory.Store, http.Handler) {
	t.Helper()
	store := memory.New()
	store.SeedAccount(bank.Account{ID: "1", Balance: decimal.NewFromInt(1000)})
	store.SeedAccount(bank.Account{ID: "2", Balance: decimal.NewFromInt(500)})
	logger := testLogger()
	h := New(store, notification.New(logger), logger).Handler()
	return store, h
}

func postJSON(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, envelopeResp) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelopeResp
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v: %s", err, rec.Body.String())
	}
	return rec, env
}

func getJSON(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelopeResp) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelopeResp
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v: %s", err, rec.Body.String())
	}
	return rec, env
}

func TestCreateAccount(t *testing.T) {
	_, h := setup(t)

	rec, env := postJSON(t, h, "/v1/accounts", `{"accountId": "3", "balance": 250.75}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Message != "Account created successfully" || env.StatusCode != 201 {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	rec, env = getJSON(t, h, "/v1/accounts/3")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var a acctResp
	if err := json.Unmarshal(env.Data, &a); err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if a.AccountID != "3" || a.Balance != "250.75" {
		t.Fatalf("unexpected account: %+v", a)
	}
}

func TestCreateAccount_Duplicate(t *testing.T) {
	_, h := setup(t)

	rec, env := postJSON(t, h, "/v1/accounts", `{"accountId": "1", "balance": 50}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Message != "Account id 1 already exists" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	// the first account keeps its balance
	_, env = getJSON(t, h, "/v1/accounts/1")
	var a acctResp
	_ = json.Unmarshal(env.Data, &a)
	if a.Balance != "1000" {
		t.Fatalf("first balance changed: %q", a.Balance)
	}
}

func TestCreateAccount_Validation(t *testing.T) {
	_, h := setup(t)

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"empty body", ``, "Request body is missing."},
		{"missing accountId", `{"balance": 10}`, "accountId missing"},
		{"missing balance", `{"accountId": "9"}`, "balance missing"},
	}
	for _, tc := range cases {
		rec, env := postJSON(t, h, "/v1/accounts", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rec.Code)
		}
		if env.Message != tc.msg {
			t.Fatalf("%s: message = %q, want %q", tc.name, env.Message, tc.msg)
		}
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	_, h := setup(t)

	rec, env := getJSON(t, h, "/v1/accounts/99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Message != "Account number 99 not found" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestGetAllAccounts(t *testing.T) {
	_, h := setup(t)

	rec, env := getJSON(t, h, "/v1/accounts/getAllAccounts")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.Message != "Accounts retrieved successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	var accounts []acctResp
	if err := json.Unmarshal(env.Data, &accounts); err != nil {
		t.Fatalf("decode accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
}

func TestTransfer_Successful(t *testing.T) {
	store, h := setup(t)

	rec, env := postJSON(t, h, "/v1/accounts/transfer",
		`{"accountFromId": "1", "accountToId": "2", "amount": 100}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Message != "Transfer successful" || env.StatusCode != 200 {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	from, _, _ := store.GetAccount(context.Background(), "1")
	to, _, _ := store.GetAccount(context.Background(), "2")
	if !from.Balance.Equal(decimal.NewFromInt(900)) || !to.Balance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("balances = %s / %s, want 900 / 600", from.Balance, to.Balance)
	}
}

func TestTransfer_Failures(t *testing.T) {
	_, h := setup(t)

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"insufficient", `{"accountFromId": "1", "accountToId": "2", "amount": 2000}`, "Insufficient balance in 1 account"},
		{"negative", `{"accountFromId": "1", "accountToId": "2", "amount": -50}`, "Transfer amount must be positive"},
		{"zero", `{"accountFromId": "1", "accountToId": "2", "amount": 0}`, "Transfer amount must be positive"},
		{"from missing", `{"accountFromId": "99", "accountToId": "2", "amount": 200}`, "Account number 99 not found"},
		{"to missing", `{"accountFromId": "1", "accountToId": "898", "amount": 200}`, "Account number 898 not found"},
		{"same account", `{"accountFromId": "1", "accountToId": "1", "amount": 50}`, "Transfer must be between two different accounts"},
		{"missing field", `{"accountFromId": "1", "amount": 50.0}`, "accountToId missing"},
	}
	for _, tc := range cases {
		rec, env := postJSON(t, h, "/v1/accounts/transfer", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tc.name, rec.Code, rec.Body.String())
		}
		if env.Message != tc.msg {
			t.Fatalf("%s: message = %q, want %q", tc.name, env.Message, tc.msg)
		}
	}
}

func TestTransfer_FailureLeavesBalancesUnchanged(t *testing.T) {
	store, h := setup(t)

	if rec, _ := postJSON(t, h, "/v1/accounts/transfer",
		`{"accountFromId": "1", "accountToId": "2", "amount": 100}`); rec.Code != http.StatusOK {
		t.Fatalf("setup transfer failed: %d", rec.Code)
	}
	if rec, _ := postJSON(t, h, "/v1/accounts/transfer",
		`{"accountFromId": "1", "accountToId": "2", "amount": 2000}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected insufficient-balance 400, got %d", rec.Code)
	}

	from, _, _ := store.GetAccount(context.Background(), "1")
	to, _, _ := store.GetAccount(context.Background(), "2")
	if !from.Balance.Equal(decimal.NewFromInt(900)) || !to.Balance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("balances = %s / %s, want 900 / 600 unchanged", from.Balance, to.Balance)
	}
}

func TestTransfer_Concurrent(t *testing.T) {
	store, h := setup(t)

	const n = 10
	body := `{"accountFromId": "1", "accountToId": "2", "amount": 10}`

	var wg sync.WaitGroup
	codes := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/v1/accounts/transfer", bytes.NewReader([]byte(body)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		if code != http.StatusOK {
			t.Fatalf("concurrent transfer returned %d", code)
		}
	}
	from, _, _ := store.GetAccount(context.Background(), "1")
	to, _, _ := store.GetAccount(context.Background(), "2")
	if !from.Balance.Equal(decimal.NewFromInt(900)) || !to.Balance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("balances = %s / %s, want 900 / 600", from.Balance, to.Balance)
	}
}

func TestUnsupportedMediaType(t *testing.T) {
	_, h := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/accounts", bytes.NewReader([]byte(`accountId=1`)))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, h := setup(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
