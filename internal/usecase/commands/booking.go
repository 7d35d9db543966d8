package commands

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/table"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type TableRepository interface {
	FindAll(ctx context.Context) ([]table.Table, error)
}

type ReservationRepository interface {
	// CreateIfFree persists the reservation only if its table has no
	// confirmed reservation overlapping the seating window. A lost race
	// surfaces as a KindConflict/KindDuplicateKey repository error.
	CreateIfFree(ctx context.Context, res *reservation.Reservation) error
	OccupiedTableIDs(ctx context.Context, window reservation.SeatingWindow) (map[table.ID]struct{}, error)
	CancelConfirmed(ctx context.Context, id uuid.UUID) error
}

type CreateReservationParams struct {
	GuestName string
	StartsAt  time.Time
	PartySize int
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	Table         table.Table
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	seatingDuration time.Duration
	clock           clock.Clock
	logger          *slog.Logger
}

func NewBookingCommands(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	seatingDuration time.Duration,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		seatingDuration: seatingDuration,
		clock:           clock,
		logger:          logger,
	}
}

// CreateReservation assigns the best-fitting free table and persists the
// reservation. Selection and insert are two steps with no lock spanning
// them, so the insert itself is conditional; when a concurrent booking takes
// the chosen table first, the next best-fit candidate is tried. The retry is
// bounded by the candidate list, which never exceeds the inventory size.
func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	name, err := reservation.NewGuestName(params.GuestName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	partySize, err := reservation.NewPartySize(params.PartySize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	window, err := reservation.NewSeatingWindow(params.StartsAt, b.seatingDuration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	candidates, err := b.findCandidates(ctx, window, partySize)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errs.ErrNoAvailability
	}

	for _, candidate := range candidates {
		res, err := reservation.New(name, window, partySize, candidate, b.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		err = b.reservationRepo.CreateIfFree(ctx, res)
		if err == nil {
			return &CreateReservationResult{
				ReservationID: res.ID(),
				Table:         candidate,
			}, nil
		}
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race for this table; fall through to the next fit.
			b.logger.Warn("table taken concurrently, retrying next candidate",
				"table_id", int32(candidate.ID()),
				"starts_at", window.Start())
			continue
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	return nil, errs.ErrNoAvailability
}

func (b *bookingCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	err := b.reservationRepo.CancelConfirmed(ctx, id)
	if err != nil {
		// Already cancelled and never existed are deliberately the same
		// outcome for callers.
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

func (b *bookingCommandsImpl) findCandidates(
	ctx context.Context,
	window reservation.SeatingWindow,
	partySize reservation.PartySize,
) ([]table.Table, error) {
	inventory, err := b.tableRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	occupied, err := b.reservationRepo.OccupiedTableIDs(ctx, window)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	return table.BestFit(inventory, occupied, partySize.Int()), nil
}
