package components

import (
	"log/slog"
	"time"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBookingCommands,
		NewBookingQueries,
	),
)

func NewBookingCommands(
	tableRepo commands.TableRepository,
	reservationRepo commands.ReservationRepository,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.BookingCommands {
	return commands.NewBookingCommands(tableRepo, reservationRepo, cfg.Booking.SeatingDuration(), clk, logger)
}

func NewBookingQueries(store queries.ReservationReadStore, loc *time.Location) queries.BookingQueries {
	return queries.NewBookingQueries(store, loc)
}
