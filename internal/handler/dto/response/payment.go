package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	AmountCents   int64     `json:"amountCents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paidAt"`
}

func FromPaymentView(pm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            pm.ID,
		ReservationID: pm.ReservationID,
		AmountCents:   pm.AmountCents,
		Method:        pm.Method,
		Status:        pm.Status,
		PaidAt:        pm.PaidAt,
	}
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	resp := make([]*PaymentResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromPaymentView(v))
	}
	return resp
}
