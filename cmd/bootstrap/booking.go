package bootstrap

import (
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewBookingLocation,
		NewOperatingWindow,
	),
)

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewOperatingWindow(cfg config.Config) (schedule.Window, error) {
	open, err := schedule.ParseTimeOfDay(cfg.Booking.OpenTime)
	if err != nil {
		return schedule.Window{}, err
	}
	closing, err := schedule.ParseTimeOfDay(cfg.Booking.CloseTime)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.NewWindow(open, closing, cfg.Booking.SeatingDuration())
}
