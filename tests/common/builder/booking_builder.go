//go:build unit || e2e

package builder

import (
	"net/url"
	"strconv"
	"time"

	domreservation "table-booking/internal/domain/reservation"
	domtable "table-booking/internal/domain/table"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const seatingMinutes = 90

type BookingBuilder struct {
	ID         uuid.UUID
	GuestName  string
	Date       string
	Time       string
	PartySize  int
	TableID    int32
	TableSeats int
	Status     string
	Location   *time.Location
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	loc, _ := time.LoadLocation("America/New_York")
	return &BookingBuilder{
		ID:         uuid.New(),
		GuestName:  "Alice",
		Date:       "2026-05-20",
		Time:       "18:00",
		PartySize:  3,
		TableID:    3,
		TableSeats: 4,
		Status:     string(domreservation.StatusConfirmed),
		Location:   loc,
		CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, loc),
	}
}

// StartsAt combines the builder's date and time into one instant in its
// timezone, the same way the form binding does.
func (b *BookingBuilder) StartsAt() time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, b.Location)
	return t
}

func (b *BookingBuilder) EndsAt() time.Time {
	return b.StartsAt().Add(seatingMinutes * time.Minute)
}

// Build methods

func (b *BookingBuilder) BuildDomain() (*domreservation.Reservation, error) {
	name, err := domreservation.NewGuestName(b.GuestName)
	if err != nil {
		return nil, err
	}
	size, err := domreservation.NewPartySize(b.PartySize)
	if err != nil {
		return nil, err
	}
	window, err := domreservation.NewSeatingWindow(b.StartsAt(), seatingMinutes*time.Minute)
	if err != nil {
		return nil, err
	}
	assigned, err := domtable.New(domtable.ID(b.TableID), b.TableSeats)
	if err != nil {
		return nil, err
	}
	return domreservation.New(name, window, size, assigned, b.CreatedAt)
}

func (b *BookingBuilder) BuildForm() reqdto.CreateBookingForm {
	return reqdto.CreateBookingForm{
		Name:      b.GuestName,
		Date:      b.Date,
		Time:      b.Time,
		PartySize: b.PartySize,
	}
}

func (b *BookingBuilder) BuildFormValues() url.Values {
	return url.Values{
		"name":       {b.GuestName},
		"date":       {b.Date},
		"time":       {b.Time},
		"party_size": {strconv.Itoa(b.PartySize)},
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		GuestName: b.GuestName,
		StartsAt:  b.StartsAt(),
		PartySize: b.PartySize,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		GuestName:  b.GuestName,
		StartsAt:   b.StartsAt(),
		EndsAt:     b.EndsAt(),
		PartySize:  b.PartySize,
		TableID:    b.TableID,
		TableSeats: b.TableSeats,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildAdminRow() *queries.AdminReservationRow {
	start := b.StartsAt().In(b.Location)
	end := b.EndsAt().In(b.Location)
	return &queries.AdminReservationRow{
		ID:        b.ID,
		GuestName: b.GuestName,
		Date:      start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		EndTime:   end.Format("15:04"),
		PartySize: b.PartySize,
		TableID:   b.TableID,
	}
}

// Fluent builder methods

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithPartySize(size int) *BookingBuilder {
	b.PartySize = size
	return b
}

func (b *BookingBuilder) WithTable(id int32, seats int) *BookingBuilder {
	b.TableID = id
	b.TableSeats = seats
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = string(domreservation.StatusCancelled)
	return b
}
