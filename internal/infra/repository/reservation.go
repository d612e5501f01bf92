package repository

import (
	"context"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO reservations (id, room_id, guest_id, check_in_date, check_out_date, status, total_cents, method_hint)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		res.ID(), res.RoomID(), res.GuestID(),
		res.Period().CheckIn(), res.Period().CheckOut(),
		res.Status().String(), res.Total().Cents(), res.MethodHint(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, room_id, guest_id, check_in_date, check_out_date, status, total_cents, method_hint, created_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`,
		id,
	)

	var (
		resID      uuid.UUID
		roomID     uuid.UUID
		guestID    uuid.UUID
		checkIn    time.Time
		checkOut   time.Time
		status     string
		totalCents int64
		methodHint *string
		createdAt  time.Time
	)
	if err := row.Scan(&resID, &roomID, &guestID, &checkIn, &checkOut, &status, &totalCents, &methodHint, &createdAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	period, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid stay period", err)
	}
	total, err := reservation.NewMoney(totalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has a negative total", err)
	}

	return reservation.ReconstructReservation(
		resID, roomID, guestID, period,
		reservation.Status(status), total, methodHint, createdAt,
	), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found for status update", nil, infra.KindNotFound)
	}
	return nil
}

// The SQL condition mirrors reservation.StayPeriod.Overlaps: half-open
// ranges clash when each starts before the other ends.
func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND status IN ('confirmed', 'checked_in')
			  AND check_in_date < $3
			  AND check_out_date > $2
		)`,
		roomID, period.CheckIn(), period.CheckOut(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) HasBlockingStayEndingAfter(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND status IN ('confirmed', 'checked_in')
			  AND check_out_date > $2
		)`,
		roomID, date,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active stays for room", err)
	}
	return exists, nil
}
