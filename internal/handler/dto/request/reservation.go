package request

import (
	"time"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/domain/guest"
)

// SelectedRoom carries the room state captured at selection time. Rate and
// occupancy travel with the pick so pricing stays stable even if the room
// drops out of a later availability refetch.
type SelectedRoom struct {
	RoomID        int64   `json:"roomId" binding:"required"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeID    int64   `json:"roomTypeId" binding:"required"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxOccupancy  int     `json:"maxOccupancy"`
}

type SubmitReservationRequest struct {
	GuestID       int64          `json:"guestId" binding:"required"`
	IDType        string         `json:"idType" binding:"required"`
	IDNumber      string         `json:"idNumber" binding:"required"`
	ArrivalDate   time.Time      `json:"arrivalDate"`
	DepartureDate time.Time      `json:"departureDate"`
	NumGuests     int            `json:"numGuests"`
	Rooms         []SelectedRoom `json:"rooms"`
}

// ToDomain rebuilds the draft aggregate from the submitted form state.
func (r SubmitReservationRequest) ToDomain() (*booking.Draft, guest.Identity, error) {
	identity, err := guest.NewIdentity(guest.IDType(r.IDType), r.IDNumber)
	if err != nil {
		return nil, guest.Identity{}, err
	}

	// The rooms array is a plain list; a repeated id must not toggle the
	// pick back off.
	selection := booking.NewRoomSelection()
	for _, room := range r.Rooms {
		if selection.Contains(room.RoomID) {
			continue
		}
		selection.Toggle(booking.RoomPick{
			RoomID:       room.RoomID,
			RoomNumber:   room.RoomNumber,
			RoomTypeID:   room.RoomTypeID,
			RoomTypeName: room.RoomTypeName,
			NightlyRate:  room.PricePerNight,
			MaxOccupancy: room.MaxOccupancy,
		})
	}

	stay := booking.NewStayPeriod(r.ArrivalDate, r.DepartureDate)
	draft := booking.NewDraft(r.GuestID, stay, selection, r.NumGuests)
	return draft, identity, nil
}

type ListReservationsQuery struct {
	GuestName string `form:"guestName"`
	Status    string `form:"status"`
}
