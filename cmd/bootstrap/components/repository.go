package components

import (
	"table-booking/internal/infra/db"
	"table-booking/internal/infra/readstore"
	"table-booking/internal/infra/repository"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Table inventory: the concrete repository is also needed by the
		// startup seed, so the write-port view is a separate provider.
		repository.NewTableRepository,
		func(r *repository.TableRepository) commands.TableRepository { return r },
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewReservationReadStore(dbtx db.DBTX, cfg config.Config) *readstore.ReservationReadStore {
	return readstore.NewReservationReadStore(dbtx, cfg.Booking.SeatingDuration())
}
