package errs

import "errors"

// Sentinel errors shared by the command and query usecase layers.
// Handlers map these to HTTP statuses; infra never returns them directly.
var (
	// Room errors
	ErrInvalidRoom   = errors.New("invalid room parameters")
	ErrDuplicateRoom = errors.New("room number already exists")
	ErrRoomNotFound  = errors.New("room not found")

	// Guest errors
	ErrInvalidGuest  = errors.New("invalid guest parameters")
	ErrGuestNotFound = errors.New("guest not found")

	// Reservation errors
	ErrInvalidStayPeriod   = errors.New("invalid stay period")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomUnavailable     = errors.New("room unavailable for the requested dates")
	ErrInvalidTransition   = errors.New("invalid lifecycle transition")

	// Payment errors
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrDuplicatePayment     = errors.New("payment already recorded for this reservation")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
