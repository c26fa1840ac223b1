package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"parkhub/internal/infra"
	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"
)

// ExportWorker drains the export job queue. Each pending job becomes one CSV
// file with the requesting user's full reservation history. Claims go through
// FOR UPDATE SKIP LOCKED, so multiple workers never fight over a job.
type ExportWorker struct {
	uow      shared.UnitOfWork
	store    Store
	notifier Notifier
	dir      string
	interval time.Duration
}

func NewExportWorker(uow shared.UnitOfWork, store Store, notifier Notifier, cfg config.Config) *ExportWorker {
	return &ExportWorker{
		uow:      uow,
		store:    store,
		notifier: notifier,
		dir:      cfg.Worker.ExportDir,
		interval: cfg.Worker.ExportPollInterval,
	}
}

func (w *ExportWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("export worker started", "interval", w.interval, "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			slog.Info("export worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain processes jobs until the queue is empty, so a burst of requests does
// not wait one poll interval per job.
func (w *ExportWorker) drain(ctx context.Context) {
	for {
		processed, err := w.processOne(ctx)
		if err != nil {
			slog.Error("export job failed", "error", err.Error())
			return
		}
		if !processed {
			return
		}
	}
}

func (w *ExportWorker) processOne(ctx context.Context) (bool, error) {
	var job *shared.ExportJobSnapshot

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.ExportJobs().ClaimNextPending(ctx)
		if err != nil {
			return err
		}
		job = claimed
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to claim export job")
	}

	filePath, exportErr := w.writeCSV(ctx, job)

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if exportErr != nil {
			return tx.ExportJobs().MarkFailed(ctx, job.ID)
		}
		return tx.ExportJobs().MarkDone(ctx, job.ID, filePath)
	})
	if err != nil {
		return false, errs.Wrap(err, "failed to finalize export job")
	}
	if exportErr != nil {
		slog.Warn("export job marked failed", "job_id", job.ID, "error", exportErr.Error())
		return true, nil
	}

	notification := Notification{
		Recipient: job.UserID.String(),
		Subject:   "Your reservation export is ready",
		Body:      fmt.Sprintf("Export %s has completed and is available at %s.", job.ID, filePath),
	}
	if err := w.notifier.Notify(ctx, notification); err != nil {
		// the export itself succeeded; a lost notification is not worth failing the job
		slog.Warn("export notification failed", "job_id", job.ID, "error", err.Error())
	}

	slog.Info("export job completed", "job_id", job.ID, "file", filePath)
	return true, nil
}

func (w *ExportWorker) writeCSV(ctx context.Context, job *shared.ExportJobSnapshot) (string, error) {
	rows, err := w.store.FindExportRowsByUser(ctx, job.UserID)
	if err != nil {
		return "", errs.Wrap(err, "failed to read reservations for export")
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create export directory")
	}

	filePath := filepath.Join(w.dir, fmt.Sprintf("reservations-%s.csv", job.ID))
	f, err := os.Create(filePath)
	if err != nil {
		return "", errs.Wrap(err, "failed to create export file")
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{"reservation_id", "lot", "spot_number", "started_at", "ended_at", "cost_cents", "status"}
	if err := cw.Write(header); err != nil {
		return "", errs.Wrap(err, "failed to write export header")
	}

	for _, row := range rows {
		endedAt := ""
		if row.EndedAt != nil {
			endedAt = row.EndedAt.Format(time.RFC3339)
		}
		cost := ""
		if row.CostCents != nil {
			cost = strconv.FormatInt(*row.CostCents, 10)
		}
		record := []string{
			row.ReservationID.String(),
			row.LotName,
			strconv.FormatInt(int64(row.SpotNumber), 10),
			row.StartedAt.Format(time.RFC3339),
			endedAt,
			cost,
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return "", errs.Wrap(err, "failed to write export record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", errs.Wrap(err, "failed to flush export file")
	}
	return filePath, nil
}
