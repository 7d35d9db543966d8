package queries

import (
	"context"
	"time"

	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindConfirmedByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListConfirmed(ctx context.Context) ([]*ReservationView, error)
}

type BookingQueries interface {
	// GetConfirmed fetches a reservation for the confirmation view. A
	// cancelled reservation is reported as not found on purpose.
	GetConfirmed(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListConfirmed(ctx context.Context) ([]*AdminReservationRow, error)
}

type bookingQueriesImpl struct {
	store ReservationReadStore
	loc   *time.Location
}

func NewBookingQueries(store ReservationReadStore, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		loc:   loc,
	}
}

func (q *bookingQueriesImpl) GetConfirmed(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindConfirmedByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListConfirmed(ctx context.Context) ([]*AdminReservationRow, error) {
	views, err := q.store.ListConfirmed(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	rows := make([]*AdminReservationRow, len(views))
	for i, v := range views {
		rows[i] = q.toAdminRow(v)
	}
	return rows, nil
}

func (q *bookingQueriesImpl) toAdminRow(v *ReservationView) *AdminReservationRow {
	start := v.StartsAt.In(q.loc)
	end := v.EndsAt.In(q.loc)
	return &AdminReservationRow{
		ID:        v.ID,
		GuestName: v.GuestName,
		Date:      start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		EndTime:   end.Format("15:04"),
		PartySize: v.PartySize,
		TableID:   v.TableID,
	}
}
