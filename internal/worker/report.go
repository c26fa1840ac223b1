package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/config"
)

// ReportWorker sends each user a summary of the previous calendar month.
type ReportWorker struct {
	store    Store
	notifier Notifier
	clock    clock.Clock
	interval time.Duration
}

func NewReportWorker(store Store, notifier Notifier, clk clock.Clock, cfg config.Config) *ReportWorker {
	return &ReportWorker{
		store:    store,
		notifier: notifier,
		clock:    clk,
		interval: cfg.Worker.MonthlyReportInterval,
	}
}

func (w *ReportWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("report worker started", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("report worker stopped")
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *ReportWorker) report(ctx context.Context) {
	now := w.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	activity, err := w.store.CollectMonthlyActivity(ctx, prevMonthStart, monthStart)
	if err != nil {
		slog.Error("monthly report query failed", "error", err.Error())
		return
	}

	month := prevMonthStart.Format("January 2006")
	for _, row := range activity {
		recipient := row.Username
		if row.Email != nil {
			recipient = *row.Email
		}
		n := Notification{
			Recipient: recipient,
			Subject:   fmt.Sprintf("Parking report for %s", month),
			Body:      formatReportBody(row, month),
		}
		if err := w.notifier.Notify(ctx, n); err != nil {
			slog.Warn("report delivery failed", "user_id", row.UserID, "error", err.Error())
		}
	}

	slog.Info("monthly report pass completed", "month", month, "recipients", len(activity))
}

func formatReportBody(row MonthlyActivityRow, month string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, here is your parking summary for %s.\n", row.Username, month)
	fmt.Fprintf(&b, "Reservations completed: %d\n", row.ReservationCount)
	fmt.Fprintf(&b, "Total spent: %.2f\n", float64(row.TotalCostCents)/100)
	return b.String()
}
