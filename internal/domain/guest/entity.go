package guest

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("guest name is required")
	ErrEmptyPhone = errors.New("guest phone number is required")
)

// Guest records are append-mostly. The phone number is the unique key a
// returning guest is recognized by; registration is an upsert on it.
type Guest struct {
	id    uuid.UUID
	name  string
	phone string
	email *string
}

func NewGuest(name, phone string, email *string) (*Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}
	return &Guest{
		id:    uuid.New(),
		name:  name,
		phone: phone,
		email: email,
	}, nil
}

func ReconstructGuest(id uuid.UUID, name, phone string, email *string) *Guest {
	return &Guest{id: id, name: name, phone: phone, email: email}
}

func (g *Guest) ID() uuid.UUID  { return g.id }
func (g *Guest) Name() string   { return g.name }
func (g *Guest) Phone() string  { return g.phone }
func (g *Guest) Email() *string { return g.email }
