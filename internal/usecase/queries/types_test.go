//go:build unit

package queries_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, booking.StatusBooking, queries.NormalizeStatus("confirmed"))
	assert.Equal(t, booking.StatusBooking, queries.NormalizeStatus(""))
	assert.Equal(t, booking.StatusCheckedIn, queries.NormalizeStatus("checked-in"))
	assert.Equal(t, booking.StatusCancelled, queries.NormalizeStatus("cancelled"))
}

func TestToReservationView(t *testing.T) {
	reservation := hotelapi.Reservation{
		ReservationID:  9,
		Guest:          hotelapi.Guest{GuestID: 42, FullName: "Nguyen Van A", Phone: "0912345678", IDNumber: "A1234567"},
		ArrivalDate:    "2025-07-10T14:00:00.000Z",
		DepartureDate:  "2025-07-12T12:00:00.000Z",
		NumGuests:      2,
		TotalEstimated: 1000,
		Status:         "confirmed",
		ReservationRooms: []hotelapi.ReservationRoom{
			{
				Room:          hotelapi.RoomRef{RoomID: 1, RoomNumber: "101"},
				RoomType:      hotelapi.RoomTypeRef{RoomTypeID: 3, Name: "Deluxe"},
				PricePerNight: 500,
			},
		},
	}

	want := &queries.ReservationView{
		ReservationID:  9,
		Guest:          queries.GuestView{GuestID: 42, FullName: "Nguyen Van A", Phone: "0912345678", IDNumber: "A1234567"},
		ArrivalDate:    time.Date(2025, 7, 10, 14, 0, 0, 0, time.UTC),
		DepartureDate:  time.Date(2025, 7, 12, 12, 0, 0, 0, time.UTC),
		Nights:         2,
		NumGuests:      2,
		TotalEstimated: 1000,
		Status:         "booking",
		Rooms: []queries.ReservationRoomView{
			{RoomID: 1, RoomNumber: "101", RoomTypeID: 3, RoomTypeName: "Deluxe", PricePerNight: 500},
		},
		CanCheckIn: true,
		CanCancel:  true,
		CanEdit:    true,
	}

	got := queries.ToReservationView(reservation, time.UTC)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestToReservationViewUnparseableDates(t *testing.T) {
	reservation := hotelapi.Reservation{
		ReservationID: 9,
		ArrivalDate:   "not-a-date",
		DepartureDate: "also-not",
		Status:        "booking",
	}

	// Broken dates display as zero values with zero nights, never an error.
	view := queries.ToReservationView(reservation, time.UTC)
	assert.True(t, view.ArrivalDate.IsZero())
	assert.Zero(t, view.Nights)
}
