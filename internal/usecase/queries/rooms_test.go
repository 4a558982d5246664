//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/usecase/queries"
	sharedmock "hotel-front-desk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func deluxeRoom(id int64, number, statusName string) hotelapi.Room {
	return hotelapi.Room{
		RoomID:     id,
		RoomNumber: number,
		RoomType:   hotelapi.RoomType{RoomTypeID: 3, Name: "Deluxe", BasePrice: 500, MaxOccupancy: 2},
		Status:     hotelapi.RoomStatus{StatusID: 1, Name: statusName},
	}
}

func TestListAvailableRooms(t *testing.T) {
	t.Run("keeps only rooms with the available status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		q := queries.NewRoomQueries(gateway)

		gateway.EXPECT().AvailableStatusName().Return("available").AnyTimes()
		gateway.EXPECT().ListRooms(gomock.Any(), nil).Return([]hotelapi.Room{
			deluxeRoom(1, "101", "available"),
			deluxeRoom(2, "102", "occupied"),
			deluxeRoom(3, "103", "Available"), // status names match case-insensitively
			deluxeRoom(4, "104", "maintenance"),
		}, nil)

		rooms, err := q.ListAvailableRooms(context.Background(), nil)
		require.NoError(t, err)

		require.Len(t, rooms, 2)
		assert.Equal(t, int64(1), rooms[0].RoomID)
		assert.Equal(t, int64(3), rooms[1].RoomID)
		assert.InDelta(t, 500.0, rooms[0].PricePerNight, 1e-9)
		assert.Equal(t, 2, rooms[0].MaxOccupancy)
	})

	t.Run("passes the room type filter upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		q := queries.NewRoomQueries(gateway)

		roomTypeID := int64(3)
		gateway.EXPECT().AvailableStatusName().Return("available").AnyTimes()
		gateway.EXPECT().ListRooms(gomock.Any(), &roomTypeID).Return([]hotelapi.Room{
			deluxeRoom(1, "101", "available"),
		}, nil)

		rooms, err := q.ListAvailableRooms(context.Background(), &roomTypeID)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
	})

	t.Run("upstream failure is returned as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := sharedmock.NewMockHotelGateway(ctrl)
		q := queries.NewRoomQueries(gateway)

		wantErr := remoteErr("REMOTE", 500, "boom")
		gateway.EXPECT().ListRooms(gomock.Any(), nil).Return(nil, wantErr)

		_, err := q.ListAvailableRooms(context.Background(), nil)
		require.Error(t, err)
	})
}

func TestListServiceItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := sharedmock.NewMockHotelGateway(ctrl)
	q := queries.NewRoomQueries(gateway)

	gateway.EXPECT().ListServiceItems(gomock.Any()).Return([]hotelapi.ServiceItem{
		{ItemID: 5, Name: "Laundry", Price: 2500},
	}, nil)

	items, err := q.ListServiceItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	// The upstream's item id becomes the service id of the billing side.
	assert.Equal(t, int64(5), items[0].ServiceID)
	assert.Equal(t, "Laundry", items[0].Name)
}
