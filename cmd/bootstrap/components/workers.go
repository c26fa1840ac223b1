package components

import (
	"context"
	"log/slog"

	"parkhub/internal/pkg/config"
	"parkhub/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("workers",
	fx.Provide(
		fx.Annotate(
			worker.NewSlogNotifier,
			fx.As(new(worker.Notifier)),
		),
		worker.NewExportWorker,
		worker.NewReminderWorker,
		worker.NewReportWorker,
	),
	fx.Invoke(startWorkers),
)

type runner interface {
	Run(ctx context.Context)
}

func startWorkers(
	lc fx.Lifecycle,
	cfg config.Config,
	export *worker.ExportWorker,
	reminder *worker.ReminderWorker,
	report *worker.ReportWorker,
) {
	if !cfg.Worker.WorkersEnabled {
		slog.Info("background workers disabled")
		return
	}

	workerCtx, cancel := context.WithCancel(context.Background())
	runners := []runner{export, reminder, report}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, r := range runners {
				go r.Run(workerCtx)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
