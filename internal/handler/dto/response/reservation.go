package response

import (
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	GuestID      uuid.UUID `json:"guestId"`
	GuestName    string    `json:"guestName"`
	GuestPhone   string    `json:"guestPhone"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Nights       int       `json:"nights"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"totalCents"`
	MethodHint   *string   `json:"methodHint,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CheckOutResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Payment     *PaymentResponse     `json:"payment"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		RoomID:       rm.RoomID,
		RoomNumber:   rm.RoomNumber,
		GuestID:      rm.GuestID,
		GuestName:    rm.GuestName,
		GuestPhone:   rm.GuestPhone,
		CheckInDate:  rm.CheckInDate.Format(reservation.DateLayout),
		CheckOutDate: rm.CheckOutDate.Format(reservation.DateLayout),
		Nights:       rm.Nights,
		Status:       rm.Status,
		TotalCents:   rm.TotalCents,
		MethodHint:   rm.MethodHint,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromReservationView(v))
	}
	return resp
}
