package room

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber     = errors.New("room number is required")
	ErrInvalidType     = errors.New("unknown room type")
	ErrNegativePrice   = errors.New("price per night cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

type Room struct {
	id         uuid.UUID
	number     string
	roomType   Type
	priceCents int64
	capacity   int
	amenities  []string
	status     Status
}

// NewRoom validates the registry invariants. New rooms always start
// available; occupancy and maintenance are driven by later operations.
func NewRoom(number string, roomType Type, priceCents int64, capacity int, amenities []string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Room{
		id:         uuid.New(),
		number:     number,
		roomType:   roomType,
		priceCents: priceCents,
		capacity:   capacity,
		amenities:  normalizeAmenities(amenities),
		status:     StatusAvailable,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number string, roomType Type, priceCents int64, capacity int, amenities []string, status Status) *Room {
	return &Room{
		id:         id,
		number:     number,
		roomType:   roomType,
		priceCents: priceCents,
		capacity:   capacity,
		amenities:  amenities,
		status:     status,
	}
}

// amenities are an unordered set; store them deduplicated and sorted so
// persistence and comparisons are stable.
func normalizeAmenities(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) Number() string      { return r.number }
func (r *Room) RoomType() Type      { return r.roomType }
func (r *Room) PriceCents() int64   { return r.priceCents }
func (r *Room) Capacity() int       { return r.capacity }
func (r *Room) Amenities() []string { return r.amenities }
func (r *Room) Status() Status      { return r.status }
