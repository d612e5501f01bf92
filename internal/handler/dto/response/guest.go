package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromGuestView(gm *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:        gm.ID,
		Name:      gm.Name,
		Phone:     gm.Phone,
		Email:     gm.Email,
		CreatedAt: gm.CreatedAt,
	}
}

func FromGuestViews(views []*queries.GuestView) []*GuestResponse {
	resp := make([]*GuestResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromGuestView(v))
	}
	return resp
}
