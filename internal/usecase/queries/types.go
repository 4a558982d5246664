package queries

import (
	"time"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/infra/hotelapi"
)

// Read models (DTO for read side)
type RoomView struct {
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeID    int64   `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxOccupancy  int     `json:"maxOccupancy"`
}

type RoomTypeView struct {
	RoomTypeID int64   `json:"roomTypeId"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"basePrice"`
}

type GuestView struct {
	GuestID  int64  `json:"guestId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`
}

type ReservationRoomView struct {
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeID    int64   `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
}

type ReservationView struct {
	ReservationID  int64                 `json:"reservationId"`
	Guest          GuestView             `json:"guest"`
	ArrivalDate    time.Time             `json:"arrivalDate"`
	DepartureDate  time.Time             `json:"departureDate"`
	Nights         int                   `json:"nights"`
	NumGuests      int                   `json:"numGuests"`
	TotalEstimated float64               `json:"totalEstimated"`
	Status         string                `json:"status"`
	Rooms          []ReservationRoomView `json:"rooms"`
	CanCheckIn     bool                  `json:"canCheckIn"`
	CanCheckOut    bool                  `json:"canCheckOut"`
	CanCancel      bool                  `json:"canCancel"`
	CanEdit        bool                  `json:"canEdit"`
}

type ServiceItemView struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type DashboardView struct {
	Stats              map[string]any   `json:"stats"`
	RecentReservations []map[string]any `json:"recentReservations"`
}

// NormalizeStatus maps the upstream's creation status onto the lifecycle the
// front desk tracks. Freshly created reservations arrive as "confirmed".
func NormalizeStatus(s string) booking.Status {
	if s == hotelapi.StatusConfirmed || s == "" {
		return booking.StatusBooking
	}
	return booking.Status(s)
}

// ToReservationView maps an upstream reservation onto the read model,
// deriving nights and the action flags from the lifecycle table. Dates that
// fail to parse stay zero; the pricing laws then yield zero nights instead of
// an error on display.
func ToReservationView(r hotelapi.Reservation, loc *time.Location) *ReservationView {
	arrival, _ := hotelapi.ParseWireTime(r.ArrivalDate, loc)
	departure, _ := hotelapi.ParseWireTime(r.DepartureDate, loc)
	stay := booking.NewStayPeriod(arrival, departure)
	status := NormalizeStatus(r.Status)

	rooms := make([]ReservationRoomView, 0, len(r.ReservationRooms))
	for _, rr := range r.ReservationRooms {
		rooms = append(rooms, ReservationRoomView{
			RoomID:        rr.Room.RoomID,
			RoomNumber:    rr.Room.RoomNumber,
			RoomTypeID:    rr.RoomType.RoomTypeID,
			RoomTypeName:  rr.RoomType.Name,
			PricePerNight: rr.PricePerNight,
		})
	}

	return &ReservationView{
		ReservationID:  r.ReservationID,
		Guest:          ToGuestView(r.Guest),
		ArrivalDate:    arrival,
		DepartureDate:  departure,
		Nights:         stay.Nights(),
		NumGuests:      r.NumGuests,
		TotalEstimated: r.TotalEstimated,
		Status:         status.String(),
		Rooms:          rooms,
		CanCheckIn:     status.CanTransitionTo(booking.StatusCheckedIn),
		CanCheckOut:    status.CanTransitionTo(booking.StatusCheckedOut),
		CanCancel:      status.CanCancel(),
		CanEdit:        status.CanEdit(),
	}
}

func ToGuestView(g hotelapi.Guest) GuestView {
	return GuestView{
		GuestID:  g.GuestID,
		FullName: g.FullName,
		Email:    g.Email,
		Phone:    g.Phone,
		IDNumber: g.IDNumber,
	}
}
