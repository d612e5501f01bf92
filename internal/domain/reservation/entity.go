package reservation

import (
	"time"

	"github.com/google/uuid"
)

// RoomSpec carries the room attributes the reservation rules need, so this
// package does not depend on the room package directly.
type RoomSpec struct {
	ID            uuid.UUID
	Number        string
	NightlyRate   Money
	InMaintenance bool
}

type Reservation struct {
	id         uuid.UUID
	roomID     uuid.UUID
	guestID    uuid.UUID
	period     StayPeriod
	status     Status
	total      Money
	methodHint *string
	createdAt  time.Time
}

// NewReservation prices the stay off the room's current nightly rate and
// freezes the total; later rate changes never touch existing reservations.
// Availability is the caller's concern and must be checked in the same
// transaction that persists the result.
func NewReservation(room RoomSpec, guestID uuid.UUID, period StayPeriod, methodHint *string) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		roomID:     room.ID,
		guestID:    guestID,
		period:     period,
		status:     StatusConfirmed,
		total:      room.NightlyRate.MultiplyNights(period.Nights()),
		methodHint: methodHint,
	}
}

func ReconstructReservation(
	id, roomID, guestID uuid.UUID,
	period StayPeriod,
	status Status,
	total Money,
	methodHint *string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomID:     roomID,
		guestID:    guestID,
		period:     period,
		status:     status,
		total:      total,
		methodHint: methodHint,
		createdAt:  createdAt,
	}
}

func (r *Reservation) CheckIn() error {
	return r.transitionTo(StatusCheckedIn)
}

func (r *Reservation) CheckOut() error {
	return r.transitionTo(StatusCheckedOut)
}

func (r *Reservation) Cancel() error {
	return r.transitionTo(StatusCancelled)
}

func (r *Reservation) transitionTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsBlocking() bool {
	return r.status.IsBlocking()
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) GuestID() uuid.UUID   { return r.guestID }
func (r *Reservation) Period() StayPeriod   { return r.period }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Total() Money         { return r.total }
func (r *Reservation) MethodHint() *string  { return r.methodHint }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
