package shared

import (
	"context"
	"time"

	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/pubsub"
)

// HotelGateway is the upstream hotel API surface the use cases depend on.
// hotelapi.Client is the production implementation.
type HotelGateway interface {
	ListRooms(ctx context.Context, roomTypeID *int64) ([]hotelapi.Room, error)
	ListRoomTypes(ctx context.Context) ([]hotelapi.RoomType, error)
	FindGuests(ctx context.Context, query string, idType string) ([]hotelapi.Guest, error)
	CreateGuest(ctx context.Context, req hotelapi.CreateGuestRequest) (*hotelapi.Guest, error)
	ListReservations(ctx context.Context, guestName, status string) ([]hotelapi.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*hotelapi.Reservation, error)
	CreateReservation(ctx context.Context, req hotelapi.CreateReservationRequest) (*hotelapi.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, req hotelapi.CreateReservationRequest) (*hotelapi.Reservation, error)
	CheckIn(ctx context.Context, id int64) error
	CheckOut(ctx context.Context, id int64) error
	ListServiceItems(ctx context.Context) ([]hotelapi.ServiceItem, error)
	GetDashboard(ctx context.Context) (*hotelapi.Dashboard, error)
	AvailableStatusName() string
	Location() *time.Location
}

// Publisher decouples commands from the concrete bus.
type Publisher interface {
	Publish(event pubsub.Event)
}
