package readstore

import (
	"context"
	"errors"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra"
	"table-booking/internal/infra/db"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const confirmedViewSQL = `
SELECT r.id, r.guest_name, r.starts_at, r.party_size, r.table_id, t.seats, r.status, r.created_at
FROM reservations r
JOIN tables t ON t.id = r.table_id
WHERE r.status = $1`

type ReservationReadStore struct {
	db      db.DBTX
	seating time.Duration
}

func NewReservationReadStore(db db.DBTX, seating time.Duration) *ReservationReadStore {
	return &ReservationReadStore{
		db:      db,
		seating: seating,
	}
}

func (s *ReservationReadStore) FindConfirmedByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, confirmedViewSQL+` AND r.id = $2`,
		reservation.StatusConfirmed.String(), id)

	view, err := s.scanView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("confirmed reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (s *ReservationReadStore) ListConfirmed(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, confirmedViewSQL+` ORDER BY r.starts_at`,
		reservation.StatusConfirmed.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := s.scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read confirmed reservations", err)
	}

	return views, nil
}

func (s *ReservationReadStore) scanView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.GuestName,
		&view.StartsAt,
		&view.PartySize,
		&view.TableID,
		&view.TableSeats,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.EndsAt = view.StartsAt.Add(s.seating)
	return &view, nil
}
