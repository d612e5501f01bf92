//go:build unit || e2e

package builder

import (
	"time"

	domguest "hotelier/internal/domain/guest"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	Name  string
	Phone string
	Email *string
}

func NewGuestBuilder() *GuestBuilder {
	email := "alice@example.com"
	return &GuestBuilder{
		Name:  "Alice Smith",
		Phone: "555-0101",
		Email: &email,
	}
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.Phone = phone
	return b
}

func (b *GuestBuilder) WithEmail(email *string) *GuestBuilder {
	b.Email = email
	return b
}

func (b *GuestBuilder) BuildDomain() (*domguest.Guest, error) {
	return domguest.NewGuest(b.Name, b.Phone, b.Email)
}

func (b *GuestBuilder) BuildParams() commands.RegisterGuestParams {
	return commands.RegisterGuestParams{
		Name:  b.Name,
		Phone: b.Phone,
		Email: b.Email,
	}
}

func (b *GuestBuilder) BuildRegisterRequestDTO() reqdto.RegisterGuestRequest {
	return reqdto.RegisterGuestRequest{
		Name:  b.Name,
		Phone: b.Phone,
		Email: b.Email,
	}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{
		ID:        uuid.New(),
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		CreatedAt: time.Now(),
	}
}
