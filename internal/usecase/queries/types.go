package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	PriceCents int64     `json:"price_cents"`
	Capacity   int       `json:"capacity"`
	Amenities  []string  `json:"amenities"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomStatusSummary struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	GuestPhone   string    `json:"guest_phone"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Nights       int       `json:"nights"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	MethodHint   *string   `json:"method_hint,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paid_at"`
}

type GuestView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationFilter narrows List results; nil fields match everything.
type ReservationFilter struct {
	Status     *string
	RoomNumber *string
}
