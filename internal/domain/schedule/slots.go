// Package schedule produces the advisory seating grid: the candidate start
// times offered on the booking form. A listed slot is not an availability
// claim; every table may already be booked for it.
package schedule

import (
	"fmt"
	"time"

	"table-booking/internal/pkg/errs"
)

var (
	ErrInvalidTimeOfDay = errs.New("time of day must be HH:MM")
	ErrInvalidOperating = errs.New("operating window must close after it opens")
	ErrInvalidSeating   = errs.New("seating duration must be positive")
)

type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, errs.Mark(err, ErrInvalidTimeOfDay)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) minutes() int {
	return t.hour*60 + t.minute
}

func (t TimeOfDay) add(d time.Duration) TimeOfDay {
	total := t.minutes() + int(d.Minutes())
	return TimeOfDay{hour: total / 60, minute: total % 60}
}

// At anchors the time of day on a calendar date in the given location.
func (t TimeOfDay) At(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.hour, t.minute, 0, 0, loc)
}

// Window is the daily operating window plus the fixed seating duration.
type Window struct {
	open    TimeOfDay
	close   TimeOfDay
	seating time.Duration
}

func NewWindow(open, close TimeOfDay, seating time.Duration) (Window, error) {
	if close.minutes() <= open.minutes() {
		return Window{}, ErrInvalidOperating
	}
	if seating <= 0 {
		return Window{}, ErrInvalidSeating
	}
	return Window{open: open, close: close, seating: seating}, nil
}

func (w Window) Open() TimeOfDay {
	return w.open
}

func (w Window) Close() TimeOfDay {
	return w.close
}

func (w Window) Seating() time.Duration {
	return w.seating
}

// Slot is one candidate start time: a machine-readable value for the form
// and a human-readable "start – end" label.
type Slot struct {
	Value string
	Label string
}

// Slots walks the window at seating-duration increments, keeping every start
// whose seating would still finish by closing time. The slice is rebuilt on
// each call, so callers may range over it as often as they like.
func (w Window) Slots() []Slot {
	var slots []Slot
	for start := w.open; start.minutes()+int(w.seating.Minutes()) <= w.close.minutes(); start = start.add(w.seating) {
		end := start.add(w.seating)
		slots = append(slots, Slot{
			Value: start.String(),
			Label: start.String() + " – " + end.String(),
		})
	}
	return slots
}
