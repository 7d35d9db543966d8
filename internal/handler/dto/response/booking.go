package response

import (
	"time"

	"table-booking/internal/domain/schedule"
	"table-booking/internal/usecase/queries"
)

type SlotOption struct {
	Value string
	Label string
}

func FromSlots(slots []schedule.Slot) []SlotOption {
	options := make([]SlotOption, len(slots))
	for i, s := range slots {
		options[i] = SlotOption{Value: s.Value, Label: s.Label}
	}
	return options
}

// ConfirmationView is the confirmation page model, with all times already
// formatted in the restaurant's timezone.
type ConfirmationView struct {
	ID         string
	GuestName  string
	Date       string
	StartTime  string
	EndTime    string
	PartySize  int
	TableID    int32
	TableSeats int
	Status     string
}

func FromReservationView(v *queries.ReservationView, loc *time.Location) *ConfirmationView {
	start := v.StartsAt.In(loc)
	end := v.EndsAt.In(loc)
	return &ConfirmationView{
		ID:         v.ID.String(),
		GuestName:  v.GuestName,
		Date:       start.Format("2006-01-02"),
		StartTime:  start.Format("15:04"),
		EndTime:    end.Format("15:04"),
		PartySize:  v.PartySize,
		TableID:    v.TableID,
		TableSeats: v.TableSeats,
		Status:     v.Status,
	}
}

type AdminListRow struct {
	ID        string
	GuestName string
	Date      string
	StartTime string
	EndTime   string
	PartySize int
	TableID   int32
}

func FromAdminRow(row *queries.AdminReservationRow) *AdminListRow {
	return &AdminListRow{
		ID:        row.ID.String(),
		GuestName: row.GuestName,
		Date:      row.Date,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		PartySize: row.PartySize,
		TableID:   row.TableID,
	}
}
