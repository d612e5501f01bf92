package shared

import (
	"context"
	"time"

	"hotelier/internal/domain/guest"
	"hotelier/internal/domain/payment"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"

	"github.com/google/uuid"
)

// UnitOfWork is the transactional boundary of every command. Within runs
// fn inside a single transaction and retries serialization failures; the
// repositories handed out by Tx all share that transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	// FindByNumberForUpdate locks the room row. Holding that lock for the
	// duration of the transaction is what serializes overlapping
	// createReservation calls per room without a global lock.
	FindByNumberForUpdate(ctx context.Context, number string) (*room.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status room.Status) error
}

type GuestRepository interface {
	// UpsertByPhone returns the existing guest's id when the phone number
	// is already registered, updating name/email in place.
	UpsertByPhone(ctx context.Context, g *guest.Guest) (uuid.UUID, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	// HasBlockingOverlap applies the stay-overlap predicate against the
	// room's confirmed/checked_in reservations.
	HasBlockingOverlap(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (bool, error)
	// HasBlockingStayEndingAfter guards maintenance toggling: true when an
	// active reservation still covers date or any later date.
	HasBlockingStayEndingAfter(ctx context.Context, roomID uuid.UUID, date time.Time) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)
}
