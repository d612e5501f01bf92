//go:build unit || e2e

package builder

import (
	"time"

	domroom "hotelier/internal/domain/room"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Number     string
	Type       string
	PriceCents int64
	Capacity   int
	Amenities  []string
	Status     string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:     "201",
		Type:       "double",
		PriceCents: 12000,
		Capacity:   2,
		Amenities:  []string{"WiFi", "TV"},
		Status:     "available",
	}
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithType(roomType string) *RoomBuilder {
	b.Type = roomType
	return b
}

func (b *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	b.PriceCents = cents
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithAmenities(amenities ...string) *RoomBuilder {
	b.Amenities = amenities
	return b
}

func (b *RoomBuilder) WithStatus(status string) *RoomBuilder {
	b.Status = status
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Number, domroom.Type(b.Type), b.PriceCents, b.Capacity, b.Amenities)
}

func (b *RoomBuilder) BuildParams() commands.AddRoomParams {
	return commands.AddRoomParams{
		Number:     b.Number,
		Type:       b.Type,
		PriceCents: b.PriceCents,
		Capacity:   b.Capacity,
		Amenities:  b.Amenities,
	}
}

func (b *RoomBuilder) BuildAddRequestDTO() reqdto.AddRoomRequest {
	return reqdto.AddRoomRequest{
		Number:     b.Number,
		Type:       b.Type,
		PriceCents: b.PriceCents,
		Capacity:   b.Capacity,
		Amenities:  b.Amenities,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:         uuid.New(),
		Number:     b.Number,
		Type:       b.Type,
		PriceCents: b.PriceCents,
		Capacity:   b.Capacity,
		Amenities:  b.Amenities,
		Status:     b.Status,
		CreatedAt:  time.Now(),
	}
}
