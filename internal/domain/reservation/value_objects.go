package reservation

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidPeriod     = errors.New("check-out date must be after check-in date")
	ErrUnparsableDate    = errors.New("date must be formatted as YYYY-MM-DD")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// StayPeriod is the half-open interval [check-in, check-out) over calendar
// dates. Both ends are normalized to UTC midnight; there is no time-of-day
// component. A same-day turnover (one guest's check-out on another's
// check-in date) does not overlap.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.ParseInLocation(DateLayout, checkIn, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrUnparsableDate
	}
	out, err := time.ParseInLocation(DateLayout, checkOut, time.UTC)
	if err != nil {
		return StayPeriod{}, ErrUnparsableDate
	}
	return NewStayPeriod(in, out)
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Overlaps is the single conflict predicate used everywhere a booking
// clash is decided: A.in < B.out && B.in < A.out.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// Nights is the integer day count of the half-open range.
func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// EndsAfter reports whether the stay still covers date or any later date.
func (p StayPeriod) EndsAfter(date time.Time) bool {
	return p.checkOut.After(truncateToDate(date))
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(DateLayout), p.checkOut.Format(DateLayout))
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Money is an integer count of cents. Monetary values never touch floats
// outside of display formatting.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
