package request

import (
	"hotelier/internal/usecase/commands"
)

type AddRoomRequest struct {
	Number     string   `json:"number" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	PriceCents int64    `json:"price_cents"`
	Capacity   int      `json:"capacity" binding:"required"`
	Amenities  []string `json:"amenities"`
}

func (r AddRoomRequest) ToParams() commands.AddRoomParams {
	return commands.AddRoomParams{
		Number:     r.Number,
		Type:       r.Type,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
		Amenities:  r.Amenities,
	}
}

type SetMaintenanceRequest struct {
	InMaintenance *bool `json:"in_maintenance" binding:"required"`
}
