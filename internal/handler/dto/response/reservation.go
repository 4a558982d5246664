package response

import (
	"time"

	"hotel-front-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationRoomResponse struct {
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeID    int64   `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
}

type ReservationResponse struct {
	ReservationID  int64                     `json:"reservationId"`
	Guest          GuestResponse             `json:"guest"`
	ArrivalDate    time.Time                 `json:"arrivalDate"`
	DepartureDate  time.Time                 `json:"departureDate"`
	Nights         int                       `json:"nights"`
	NumGuests      int                       `json:"numGuests"`
	TotalEstimated float64                   `json:"totalEstimated"`
	Status         string                    `json:"status"`
	Rooms          []ReservationRoomResponse `json:"rooms"`
	CanCheckIn     bool                      `json:"canCheckIn"`
	CanCheckOut    bool                      `json:"canCheckOut"`
	CanCancel      bool                      `json:"canCancel"`
	CanEdit        bool                      `json:"canEdit"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, view := range views {
		resp[i] = FromReservationView(view)
	}
	return resp
}
