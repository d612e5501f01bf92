package reservation

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocking statuses occupy their date range for availability purposes.
func (s Status) IsBlocking() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle:
// confirmed -> checked_in -> checked_out, cancelled only from confirmed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// BlockingStatuses is the active-reservation set used by conflict queries.
func BlockingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCheckedIn}
}
