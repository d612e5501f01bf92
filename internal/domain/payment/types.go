package payment

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodOnline Method = "online"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodOnline:
		return true
	default:
		return false
	}
}

// Status has a single variant: payment recording is bookkeeping at
// check-out, not settlement, so failure and retry states do not exist.
type Status string

const StatusRecorded Status = "recorded"

func (s Status) String() string {
	return string(s)
}
