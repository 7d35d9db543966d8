package reservation

import (
	"time"

	"table-booking/internal/domain/table"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTableTooSmall    = errs.New("table does not seat the whole party")
	ErrAlreadyCancelled = errs.New("reservation is already cancelled")
)

// Reservation is immutable after creation except for the one legal status
// transition, confirmed -> cancelled.
type Reservation struct {
	id        uuid.UUID
	guestName GuestName
	window    SeatingWindow
	partySize PartySize
	tableID   table.ID
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New confirms a reservation against a table already selected by the
// availability check. The capacity invariant is revalidated here so a
// miswired caller cannot seat a party at a table that is too small.
func New(name GuestName, window SeatingWindow, partySize PartySize, assigned table.Table, now time.Time) (*Reservation, error) {
	if !assigned.Fits(partySize.Int()) {
		return nil, ErrTableTooSmall
	}

	return &Reservation{
		id:        uuid.New(),
		guestName: name,
		window:    window,
		partySize: partySize,
		tableID:   assigned.ID(),
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Reservation) ID() uuid.UUID {
	return r.id
}

func (r *Reservation) GuestName() GuestName {
	return r.guestName
}

func (r *Reservation) Window() SeatingWindow {
	return r.window
}

func (r *Reservation) PartySize() PartySize {
	return r.partySize
}

func (r *Reservation) TableID() table.ID {
	return r.tableID
}

func (r *Reservation) Status() Status {
	return r.status
}

func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reservation) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}
