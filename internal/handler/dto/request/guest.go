package request

import (
	"hotelier/internal/usecase/commands"
)

type RegisterGuestRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone string  `json:"phone" binding:"required"`
	Email *string `json:"email,omitempty"`
}

func (r RegisterGuestRequest) ToParams() commands.RegisterGuestParams {
	return commands.RegisterGuestParams{
		Name:  r.Name,
		Phone: r.Phone,
		Email: trimmedOrNil(r.Email),
	}
}
