package booking

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrGuestUnresolved      = errors.New("guest has not been resolved")
	ErrMissingDates         = errors.New("arrival and departure dates are required")
	ErrInvalidStayPeriod    = errors.New("departure must be after arrival")
	ErrNoRoomsSelected      = errors.New("at least one room must be selected")
	ErrInvalidGuestCount    = errors.New("number of guests must be positive")
	ErrOccupancyExceeded    = errors.New("number of guests exceeds selected room capacity")
	ErrDraftAlreadyInFlight = errors.New("reservation submission already in progress")
)

// Draft is a reservation under composition. It carries everything needed to
// submit, but submission only proceeds once Validate passes.
type Draft struct {
	id        uuid.UUID
	guestID   int64
	stay      StayPeriod
	selection RoomSelection
	numGuests int
}

func NewDraft(guestID int64, stay StayPeriod, selection RoomSelection, numGuests int) *Draft {
	return &Draft{
		id:        uuid.New(),
		guestID:   guestID,
		stay:      stay,
		selection: selection,
		numGuests: numGuests,
	}
}

func (d *Draft) ID() uuid.UUID            { return d.id }
func (d *Draft) GuestID() int64           { return d.guestID }
func (d *Draft) Stay() StayPeriod         { return d.stay }
func (d *Draft) Selection() RoomSelection { return d.selection }
func (d *Draft) NumGuests() int           { return d.numGuests }

// Validate checks every submission invariant and reports the first failure.
// Order matters: identity before dates before rooms before capacity, matching
// the order a clerk fills the form.
func (d *Draft) Validate() error {
	if d.guestID <= 0 {
		return ErrGuestUnresolved
	}
	if !d.stay.IsComplete() {
		return ErrMissingDates
	}
	if !d.stay.IsOrdered() {
		return ErrInvalidStayPeriod
	}
	if d.selection.Len() == 0 {
		return ErrNoRoomsSelected
	}
	if d.numGuests <= 0 {
		return ErrInvalidGuestCount
	}
	if d.numGuests > d.selection.TotalMaxOccupancy() {
		return ErrOccupancyExceeded
	}
	return nil
}

// TotalEstimate prices the draft as currently composed.
func (d *Draft) TotalEstimate() float64 {
	return TotalEstimate(d.stay, d.selection)
}
