//go:build unit || e2e

package builder

import (
	"time"

	domres "hotelier/internal/domain/reservation"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID      uuid.UUID
	RoomNumber  string
	NightlyRate int64
	GuestID     uuid.UUID
	CheckIn     string
	CheckOut    string
	Status      string
	MethodHint  *string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		RoomID:      uuid.New(),
		RoomNumber:  "201",
		NightlyRate: 15000,
		GuestID:     uuid.New(),
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-04",
		Status:      "confirmed",
	}
}

func (b *ReservationBuilder) WithRoomNumber(number string) *ReservationBuilder {
	b.RoomNumber = number
	return b
}

func (b *ReservationBuilder) WithNightlyRate(cents int64) *ReservationBuilder {
	b.NightlyRate = cents
	return b
}

func (b *ReservationBuilder) WithGuestID(id uuid.UUID) *ReservationBuilder {
	b.GuestID = id
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithMethodHint(hint string) *ReservationBuilder {
	b.MethodHint = &hint
	return b
}

func (b *ReservationBuilder) BuildPeriod() (domres.StayPeriod, error) {
	return domres.ParseStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	period, err := b.BuildPeriod()
	if err != nil {
		return nil, err
	}
	rate, err := domres.NewMoney(b.NightlyRate)
	if err != nil {
		return nil, err
	}
	res := domres.NewReservation(domres.RoomSpec{
		ID:          b.RoomID,
		Number:      b.RoomNumber,
		NightlyRate: rate,
	}, b.GuestID, period, b.MethodHint)
	if b.Status == "confirmed" {
		return res, nil
	}
	period2, _ := b.BuildPeriod()
	return domres.ReconstructReservation(
		res.ID(), b.RoomID, b.GuestID, period2,
		domres.Status(b.Status), res.Total(), b.MethodHint, time.Now(),
	), nil
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomNumber: b.RoomNumber,
		GuestID:    b.GuestID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		MethodHint: b.MethodHint,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomNumber: b.RoomNumber,
		GuestID:    b.GuestID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		MethodHint: b.MethodHint,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	period, _ := b.BuildPeriod()
	return &queries.ReservationView{
		ID:           uuid.New(),
		RoomID:       b.RoomID,
		RoomNumber:   b.RoomNumber,
		GuestID:      b.GuestID,
		GuestName:    "Alice Smith",
		GuestPhone:   "555-0101",
		CheckInDate:  period.CheckIn(),
		CheckOutDate: period.CheckOut(),
		Nights:       period.Nights(),
		Status:       b.Status,
		TotalCents:   b.NightlyRate * int64(period.Nights()),
		MethodHint:   b.MethodHint,
		CreatedAt:    time.Now(),
	}
}
