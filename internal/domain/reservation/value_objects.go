package reservation

import (
	"strings"
	"time"

	"table-booking/internal/pkg/errs"
)

var (
	ErrEmptyGuestName   = errs.New("guest name must not be empty")
	ErrInvalidPartySize = errs.New("party size must be between 1 and 6")
	ErrInvalidWindow    = errs.New("seating window must have a start and a positive duration")
)

const (
	MinPartySize = 1
	MaxPartySize = 6
)

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestName{}, ErrEmptyGuestName
	}
	return GuestName{value: trimmed}, nil
}

func (n GuestName) String() string {
	return n.value
}

type PartySize struct {
	value int
}

func NewPartySize(value int) (PartySize, error) {
	if value < MinPartySize || value > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: value}, nil
}

func (p PartySize) Int() int {
	return p.value
}

// SeatingWindow is the half-open occupancy interval [start, start+duration)
// during which a confirmed reservation holds its table.
type SeatingWindow struct {
	start    time.Time
	duration time.Duration
}

func NewSeatingWindow(start time.Time, duration time.Duration) (SeatingWindow, error) {
	if start.IsZero() || duration <= 0 {
		return SeatingWindow{}, ErrInvalidWindow
	}
	return SeatingWindow{start: start, duration: duration}, nil
}

func (w SeatingWindow) Start() time.Time {
	return w.start
}

func (w SeatingWindow) End() time.Time {
	return w.start.Add(w.duration)
}

func (w SeatingWindow) Duration() time.Duration {
	return w.duration
}

// Covers reports whether an instant falls inside the window. All bookings sit
// on the same fixed seating grid, so two reservations collide exactly when
// one window covers the other's start. This start-anchored rule is the
// contract with the repository's overlap query; keep them in sync.
func (w SeatingWindow) Covers(instant time.Time) bool {
	return !instant.Before(w.start) && instant.Before(w.End())
}

func (w SeatingWindow) Overlaps(other SeatingWindow) bool {
	return w.Covers(other.start)
}
