package response

import (
	"hotel-front-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomTypeID    int64   `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxOccupancy  int     `json:"maxOccupancy"`
}

type RoomTypeResponse struct {
	RoomTypeID int64   `json:"roomTypeId"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"basePrice"`
}

type ServiceItemResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resp := make([]*RoomResponse, len(views))
	for i, view := range views {
		r := &RoomResponse{}
		_ = copier.Copy(r, view)
		resp[i] = r
	}
	return resp
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	resp := make([]*RoomTypeResponse, len(views))
	for i, view := range views {
		t := &RoomTypeResponse{}
		_ = copier.Copy(t, view)
		resp[i] = t
	}
	return resp
}

func FromServiceItemViews(views []*queries.ServiceItemView) []*ServiceItemResponse {
	resp := make([]*ServiceItemResponse, len(views))
	for i, view := range views {
		s := &ServiceItemResponse{}
		_ = copier.Copy(s, view)
		resp[i] = s
	}
	return resp
}
