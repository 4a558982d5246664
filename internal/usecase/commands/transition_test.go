//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/pubsub"
	"hotel-front-desk/internal/usecase/commands"
	sharedmock "hotel-front-desk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reservationWithStatus(status string) *hotelapi.Reservation {
	return &hotelapi.Reservation{
		ReservationID:  12,
		Guest:          hotelapi.Guest{GuestID: 42},
		ArrivalDate:    "2025-07-10T14:00:00.000Z",
		DepartureDate:  "2025-07-12T12:00:00.000Z",
		NumGuests:      2,
		TotalEstimated: 1000,
		Status:         status,
		ReservationRooms: []hotelapi.ReservationRoom{
			{Room: hotelapi.RoomRef{RoomID: 1}, RoomType: hotelapi.RoomTypeRef{RoomTypeID: 3}, PricePerNight: 500},
		},
	}
}

func TestCheckIn(t *testing.T) {
	t.Run("transitions a booked reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("booking"), nil)
		gateway.EXPECT().CheckIn(gomock.Any(), int64(12)).Return(nil)

		var published []pubsub.Event
		bus.EXPECT().Publish(gomock.Any()).Times(2).
			Do(func(event pubsub.Event) { published = append(published, event) })

		require.NoError(t, uc.CheckIn(context.Background(), 12))
		assert.Equal(t, "checkin", published[0].Reason)
		assert.Equal(t, pubsub.TopicRoomsChanged, published[0].Topic)
		assert.Equal(t, pubsub.TopicReservationsChanged, published[1].Topic)
	})

	t.Run("upstream creation status counts as booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("confirmed"), nil)
		gateway.EXPECT().CheckIn(gomock.Any(), int64(12)).Return(nil)
		bus.EXPECT().Publish(gomock.Any()).Times(2)

		require.NoError(t, uc.CheckIn(context.Background(), 12))
	})

	t.Run("rejects a reservation already checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("checked-in"), nil)

		require.ErrorIs(t, uc.CheckIn(context.Background(), 12), commands.ErrTransitionBlocked)
	})

	t.Run("missing reservation broadcasts a desync signal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).
			Return(nil, remoteErr(infra.KindNotFound, http.StatusNotFound, "reservation not found"))

		var desync pubsub.Event
		bus.EXPECT().Publish(gomock.Any()).Do(func(event pubsub.Event) { desync = event })

		require.ErrorIs(t, uc.CheckIn(context.Background(), 12), commands.ErrReservationDesynced)
		assert.Equal(t, pubsub.TopicReservationsChanged, desync.Topic)
		assert.Equal(t, "desync", desync.Reason)
	})

	t.Run("unreachable upstream maps to the unavailable sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("booking"), nil)
		gateway.EXPECT().CheckIn(gomock.Any(), int64(12)).
			Return(remoteErr(infra.KindUnavailable, 0, "cannot reach hotel api"))

		require.ErrorIs(t, uc.CheckIn(context.Background(), 12), commands.ErrHotelAPIUnavailable)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("transitions a checked-in reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("checked-in"), nil)
		gateway.EXPECT().CheckOut(gomock.Any(), int64(12)).Return(nil)
		bus.EXPECT().Publish(gomock.Any()).Times(2)

		require.NoError(t, uc.CheckOut(context.Background(), 12))
	})

	t.Run("rejects checkout before checkin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("booking"), nil)

		require.ErrorIs(t, uc.CheckOut(context.Background(), 12), commands.ErrTransitionBlocked)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels via a full-record update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		original := reservationWithStatus("booking")
		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(original, nil)

		var sent hotelapi.CreateReservationRequest
		gateway.EXPECT().UpdateReservation(gomock.Any(), int64(12), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req hotelapi.CreateReservationRequest) (*hotelapi.Reservation, error) {
				sent = req
				return reservationWithStatus("cancelled"), nil
			})
		bus.EXPECT().Publish(gomock.Any()).Times(2)

		require.NoError(t, uc.Cancel(context.Background(), 12))

		// The update replays the record verbatim except for the status.
		assert.Equal(t, "cancelled", sent.Status)
		assert.Equal(t, original.Guest.GuestID, sent.Guest.GuestID)
		assert.Equal(t, original.ArrivalDate, sent.ArrivalDate)
		assert.Equal(t, original.DepartureDate, sent.DepartureDate)
		assert.Equal(t, original.NumGuests, sent.NumGuests)
		assert.Equal(t, original.ReservationRooms, sent.ReservationRooms)
	})

	t.Run("rejects cancelling after checkin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("checked-in"), nil)

		require.ErrorIs(t, uc.Cancel(context.Background(), 12), commands.ErrTransitionBlocked)
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		uc := commands.NewTransitionUseCase(gateway, bus, clock.NewMockClock(fixedNow))

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("cancelled"), nil)

		require.ErrorIs(t, uc.Cancel(context.Background(), 12), commands.ErrTransitionBlocked)
	})

	t.Run("publishes the event times from the clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		bus := sharedmock.NewMockPublisher(ctrl)
		mockClock := clock.NewMockClock(time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
		uc := commands.NewTransitionUseCase(gateway, bus, mockClock)

		gateway.EXPECT().GetReservation(gomock.Any(), int64(12)).Return(reservationWithStatus("booking"), nil)
		gateway.EXPECT().UpdateReservation(gomock.Any(), int64(12), gomock.Any()).
			Return(reservationWithStatus("cancelled"), nil)

		var published []pubsub.Event
		bus.EXPECT().Publish(gomock.Any()).Times(2).
			Do(func(event pubsub.Event) { published = append(published, event) })

		require.NoError(t, uc.Cancel(context.Background(), 12))
		for _, event := range published {
			assert.Equal(t, mockClock.Now(), event.OccurredAt)
			assert.Equal(t, "cancel", event.Reason)
		}
	})
}
