package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod  = errors.New("unknown payment method")
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
)

// Payment is written exactly once per checked-out reservation and never
// mutated afterward. The duplicate guard lives on the reservation key.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amountCents   int64
	method        Method
	status        Status
	paidAt        time.Time
}

func NewPayment(reservationID uuid.UUID, amountCents int64, method Method) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amountCents:   amountCents,
		method:        method,
		status:        StatusRecorded,
	}, nil
}

func ReconstructPayment(id, reservationID uuid.UUID, amountCents int64, method Method, status Status, paidAt time.Time) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amountCents:   amountCents,
		method:        method,
		status:        status,
		paidAt:        paidAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) AmountCents() int64       { return p.amountCents }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) PaidAt() time.Time        { return p.paidAt }
