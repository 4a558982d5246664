package booking

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// Status of a reservation. The lifecycle moves strictly forward except for
// cancellation, which is only reachable from Booking.
type Status string

const (
	StatusBooking    Status = "booking"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooking, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// legalTransitions is the single source of truth for the lifecycle; handlers
// and usecases must consult it instead of re-deriving the rules per button.
var legalTransitions = map[Status][]Status{
	StatusBooking:    {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrTransitionNotAllowed for any move outside the
// lifecycle table.
func ValidateTransition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}
	if !from.CanTransitionTo(to) {
		return ErrTransitionNotAllowed
	}
	return nil
}

// CanCancel and CanEdit back the conditional actions on the reservation list;
// both are closed once the guest has checked in.
func (s Status) CanCancel() bool {
	return s.CanTransitionTo(StatusCancelled)
}

func (s Status) CanEdit() bool {
	return s == StatusBooking
}
