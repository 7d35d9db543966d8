package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// ReservationView is the raw confirmed-reservation row joined with its
// table's capacity.
type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	GuestName  string    `json:"guest_name"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	PartySize  int       `json:"party_size"`
	TableID    int32     `json:"table_id"`
	TableSeats int       `json:"table_seats"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminReservationRow carries the display fields the admin list derives from
// a reservation: calendar date, start time and the computed end time.
type AdminReservationRow struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guest_name"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	PartySize int       `json:"party_size"`
	TableID   int32     `json:"table_id"`
}
