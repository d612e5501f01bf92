package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	PriceCents int64     `json:"priceCents"`
	Capacity   int       `json:"capacity"`
	Amenities  []string  `json:"amenities"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RoomStatusSummaryResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:         rm.ID,
		Number:     rm.Number,
		Type:       rm.Type,
		PriceCents: rm.PriceCents,
		Capacity:   rm.Capacity,
		Amenities:  rm.Amenities,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resp := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromRoomView(v))
	}
	return resp
}

func FromRoomStatusSummary(s *queries.RoomStatusSummary) *RoomStatusSummaryResponse {
	return &RoomStatusSummaryResponse{
		Total:       s.Total,
		Available:   s.Available,
		Occupied:    s.Occupied,
		Maintenance: s.Maintenance,
	}
}
