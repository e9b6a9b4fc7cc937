// Package v1 wires the HTTP surface of the accounts service.
// It keeps handlers thin, delegating business rules to the service layer.
package v1

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iampritesh07/luxsoft-challenge/internal/service/account"
	"github.com/iampritesh07/luxsoft-challenge/internal/service/transfer"
)

// Store aggregates the persistence operations the API needs. The in-memory
// store satisfies all of them.
type Store interface {
	account.Repo
	account.Writer
	transfer.Store
}

// Server wires handlers and middleware using Chi.
type Server struct {
	accountSvc  account.Service
	transferSvc transfer.Service
	log         *slog.Logger
	rt          *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by basic request/response logging and panic recovery.
func New(store Store, notifier transfer.Notifier, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		accountSvc:  account.New(store, store),
		transferSvc: transfer.New(store, notifier),
		log:         logger,
		rt:          r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route
// middleware. Paths match the original service surface, including the
// static getAllAccounts segment.
func (s *Server) routes() {
	s.rt.With(s.validateCreateAccount()).Post("/v1/accounts", s.postAccount)
	s.rt.Get("/v1/accounts/getAllAccounts", s.listAccounts)
	s.rt.Get("/v1/accounts/{accountId}", s.getAccount)
	s.rt.With(s.validateTransfer()).Post("/v1/accounts/transfer", s.postTransfer)
	// Ops (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
}
