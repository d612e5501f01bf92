package request

import (
	"strings"

	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomNumber string    `json:"room_number" binding:"required"`
	GuestID    uuid.UUID `json:"guest_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	MethodHint *string   `json:"method_hint,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomNumber: r.RoomNumber,
		GuestID:    r.GuestID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		MethodHint: trimmedOrNil(r.MethodHint),
	}
}

type CheckOutRequest struct {
	Method *string `json:"method,omitempty"`
}

func (r CheckOutRequest) GetMethod() *string {
	return trimmedOrNil(r.Method)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
