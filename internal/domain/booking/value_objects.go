package booking

import (
	"sort"
	"time"
)

const millisPerNight = 24 * 60 * 60 * 1000

// StayPeriod holds the intended arrival and departure instants of a draft.
// Either side may still be unset while the clerk is filling the form; pricing
// then evaluates to zero instead of failing.
type StayPeriod struct {
	arrival   time.Time
	departure time.Time
}

func NewStayPeriod(arrival, departure time.Time) StayPeriod {
	return StayPeriod{arrival: arrival, departure: departure}
}

func (p StayPeriod) Arrival() time.Time   { return p.arrival }
func (p StayPeriod) Departure() time.Time { return p.departure }

func (p StayPeriod) IsComplete() bool {
	return !p.arrival.IsZero() && !p.departure.IsZero()
}

// IsOrdered reports whether departure is strictly after arrival.
func (p StayPeriod) IsOrdered() bool {
	return p.IsComplete() && p.departure.After(p.arrival)
}

// Nights is ceil((departure - arrival) in ms / 86,400,000), floored at zero
// for incomplete, same-day or inverted input. Partial nights bill as whole
// nights.
func (p StayPeriod) Nights() int {
	if !p.IsOrdered() {
		return 0
	}
	ms := p.departure.Sub(p.arrival).Milliseconds()
	return int((ms + millisPerNight - 1) / millisPerNight)
}

// RoomPick is the slice of room state a clerk selects from the availability
// list. Rate and occupancy are copied at selection time so the draft keeps
// pricing even if the room later drops out of the filtered view.
type RoomPick struct {
	RoomID       int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
	NightlyRate  float64
	MaxOccupancy int
}

// RoomSelection is a set of picked rooms keyed by room id. Toggling is pure
// set membership; refetching availability never shrinks the selection.
type RoomSelection struct {
	picks map[int64]RoomPick
}

func NewRoomSelection() RoomSelection {
	return RoomSelection{picks: make(map[int64]RoomPick)}
}

// Toggle adds the pick when absent and removes it when present, returning
// true when the room ends up selected.
func (s RoomSelection) Toggle(pick RoomPick) bool {
	if _, ok := s.picks[pick.RoomID]; ok {
		delete(s.picks, pick.RoomID)
		return false
	}
	s.picks[pick.RoomID] = pick
	return true
}

func (s RoomSelection) Contains(roomID int64) bool {
	_, ok := s.picks[roomID]
	return ok
}

func (s RoomSelection) Len() int {
	return len(s.picks)
}

// Rooms returns the picks ordered by room id for deterministic payloads.
func (s RoomSelection) Rooms() []RoomPick {
	picks := make([]RoomPick, 0, len(s.picks))
	for _, p := range s.picks {
		picks = append(picks, p)
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].RoomID < picks[j].RoomID })
	return picks
}

func (s RoomSelection) TotalNightlyRate() float64 {
	var total float64
	for _, p := range s.picks {
		total += p.NightlyRate
	}
	return total
}

func (s RoomSelection) TotalMaxOccupancy() int {
	var total int
	for _, p := range s.picks {
		total += p.MaxOccupancy
	}
	return total
}

// TotalEstimate prices the stay: nights × sum of nightly rates, zero when the
// period is not yet computable or nothing is selected.
func TotalEstimate(period StayPeriod, selection RoomSelection) float64 {
	return float64(period.Nights()) * selection.TotalNightlyRate()
}
