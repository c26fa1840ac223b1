package components

import (
	"parkhub/internal/infra/db"
	"parkhub/internal/infra/readstore"
	"parkhub/internal/infra/uow"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"
	"parkhub/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityStore)),
		),
		fx.Annotate(
			readstore.NewLotReadStore,
			fx.As(new(queries.LotStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsStore)),
		),
		fx.Annotate(
			readstore.NewExportJobReadStore,
			fx.As(new(queries.ExportJobStore)),
		),
		fx.Annotate(
			readstore.NewWorkerReadStore,
			fx.As(new(worker.Store)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
