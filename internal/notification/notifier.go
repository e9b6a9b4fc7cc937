// Package notification carries the best-effort side channel for completed
// transfer legs. Delivery is not part of the consistency contract: a failed
// or slow notification never affects the committed balance change.
package notification

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/iampritesh07/luxsoft-challenge/internal/bank"
)

// Service logs each transfer leg. It stands in for a real delivery channel
// (email, push) and keeps the engine's notify calls cheap.
type Service struct {
	log *slog.Logger
}

// New constructs a log-backed notifier.
func New(logger *slog.Logger) *Service {
	return &Service{log: logger}
}

// NotifyAboutTransfer records one leg of a completed transfer for the given
// account holder.
func (s *Service) NotifyAboutTransfer(account bank.Account, message string) {
	s.log.Info("transfer notification",
		"notification_id", uuid.New().String(),
		"account_id", account.ID,
		"message", message,
	)
}
