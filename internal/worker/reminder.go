package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/config"
)

// ReminderWorker nudges users who have not parked today. Purely read-only;
// delivery goes through the Notifier.
type ReminderWorker struct {
	store    Store
	notifier Notifier
	clock    clock.Clock
	interval time.Duration
}

func NewReminderWorker(store Store, notifier Notifier, clk clock.Clock, cfg config.Config) *ReminderWorker {
	return &ReminderWorker{
		store:    store,
		notifier: notifier,
		clock:    clk,
		interval: cfg.Worker.ReminderInterval,
	}
}

func (w *ReminderWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("reminder worker started", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.remind(ctx)
		}
	}
}

func (w *ReminderWorker) remind(ctx context.Context) {
	now := w.clock.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	contacts, err := w.store.FindUsersWithoutBookingSince(ctx, startOfDay)
	if err != nil {
		slog.Error("reminder query failed", "error", err.Error())
		return
	}

	for _, contact := range contacts {
		recipient := contact.Username
		if contact.Email != nil {
			recipient = *contact.Email
		}
		n := Notification{
			Recipient: recipient,
			Subject:   "Parking reminder",
			Body:      fmt.Sprintf("Hi %s, you have not booked a parking spot today.", contact.Username),
		}
		if err := w.notifier.Notify(ctx, n); err != nil {
			slog.Warn("reminder delivery failed", "user_id", contact.UserID, "error", err.Error())
		}
	}

	slog.Info("reminder pass completed", "recipients", len(contacts))
}
