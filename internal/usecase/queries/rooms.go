package queries

import (
	"context"
	"strings"

	"hotel-front-desk/internal/usecase/shared"
)

type RoomQueries interface {
	ListAvailableRooms(ctx context.Context, roomTypeID *int64) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	ListServiceItems(ctx context.Context) ([]*ServiceItemView, error)
}

type roomQueriesImpl struct {
	gateway shared.HotelGateway
}

func NewRoomQueries(gateway shared.HotelGateway) RoomQueries {
	return &roomQueriesImpl{gateway: gateway}
}

// ListAvailableRooms returns rooms whose status name matches the configured
// available marker, optionally scoped to one room type. The status filter is
// applied here rather than upstream because the backend keys statuses by id
// and the mapping is only stable by name.
func (q *roomQueriesImpl) ListAvailableRooms(ctx context.Context, roomTypeID *int64) ([]*RoomView, error) {
	rooms, err := q.gateway.ListRooms(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	available := make([]*RoomView, 0, len(rooms))
	for _, room := range rooms {
		if !strings.EqualFold(room.Status.Name, q.gateway.AvailableStatusName()) {
			continue
		}
		available = append(available, &RoomView{
			RoomID:        room.RoomID,
			RoomNumber:    room.RoomNumber,
			RoomTypeID:    room.RoomType.RoomTypeID,
			RoomTypeName:  room.RoomType.Name,
			PricePerNight: room.RoomType.BasePrice,
			MaxOccupancy:  room.RoomType.MaxOccupancy,
		})
	}
	return available, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	types, err := q.gateway.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*RoomTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, &RoomTypeView{
			RoomTypeID: t.RoomTypeID,
			Name:       t.Name,
			BasePrice:  t.BasePrice,
		})
	}
	return views, nil
}

func (q *roomQueriesImpl) ListServiceItems(ctx context.Context) ([]*ServiceItemView, error) {
	items, err := q.gateway.ListServiceItems(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ServiceItemView, 0, len(items))
	for _, item := range items {
		views = append(views, &ServiceItemView{
			ServiceID: item.ItemID,
			Name:      item.Name,
			Price:     item.Price,
		})
	}
	return views, nil
}
