package room

// Type is open-ended on the wire but validated against the known set at
// entry points. Adding a tier means adding a constant here.
type Type string

const (
	TypeSingle       Type = "single"
	TypeDouble       Type = "double"
	TypeSuite        Type = "suite"
	TypePresidential Type = "presidential"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypePresidential:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}
