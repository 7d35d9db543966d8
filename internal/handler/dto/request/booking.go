package request

import (
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/usecase/commands"

	"table-booking/internal/pkg/errs"
)

// CreateBookingForm is the booking form as submitted: free-text name, a
// calendar date, a time-of-day picked from the generated slots, and the
// party size.
type CreateBookingForm struct {
	Name      string `form:"name" binding:"required"`
	Date      string `form:"date" binding:"required"`
	Time      string `form:"time" binding:"required"`
	PartySize int    `form:"party_size" binding:"required,min=1,max=6"`
}

// ToParams combines date and time-of-day into one instant in the
// restaurant's configured timezone.
func (f CreateBookingForm) ToParams(loc *time.Location) (commands.CreateReservationParams, error) {
	day, err := time.ParseInLocation("2006-01-02", f.Date, loc)
	if err != nil {
		return commands.CreateReservationParams{}, errs.Wrap(err, "invalid reservation date")
	}

	tod, err := schedule.ParseTimeOfDay(f.Time)
	if err != nil {
		return commands.CreateReservationParams{}, errs.Wrap(err, "invalid reservation time")
	}

	return commands.CreateReservationParams{
		GuestName: f.Name,
		StartsAt:  tod.At(day.Year(), day.Month(), day.Day(), loc),
		PartySize: f.PartySize,
	}, nil
}
