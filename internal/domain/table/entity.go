package table

import (
	"table-booking/internal/pkg/errs"
)

var (
	ErrInvalidID    = errs.New("table id must be positive")
	ErrInvalidSeats = errs.New("table seats must be positive")
)

// ID identifies a table in the fixed dining-room inventory. The inventory is
// seeded once at startup and never mutated, so small integer ids are stable.
type ID int32

type Table struct {
	id    ID
	seats int
}

func New(id ID, seats int) (Table, error) {
	if id <= 0 {
		return Table{}, ErrInvalidID
	}
	if seats <= 0 {
		return Table{}, ErrInvalidSeats
	}
	return Table{id: id, seats: seats}, nil
}

func (t Table) ID() ID {
	return t.id
}

func (t Table) Seats() int {
	return t.seats
}

func (t Table) Fits(partySize int) bool {
	return t.seats >= partySize
}
