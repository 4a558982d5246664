package hotelapi

// Wire shapes of the upstream hotel API. Ids are numeric; dates travel as
// ISO-8601 strings (see dates.go for the offset convention).

type RoomType struct {
	RoomTypeID   int64   `json:"roomTypeId"`
	Name         string  `json:"name"`
	BasePrice    float64 `json:"basePrice"`
	MaxOccupancy int     `json:"maxOccupancy"`
}

type RoomStatus struct {
	StatusID int64  `json:"statusId,omitempty"`
	Name     string `json:"name"`
}

type Room struct {
	RoomID     int64      `json:"roomId"`
	RoomNumber string     `json:"roomNumber"`
	RoomType   RoomType   `json:"roomType"`
	Status     RoomStatus `json:"status"`
}

type Guest struct {
	GuestID  int64  `json:"guestId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`
}

type CreateGuestRequest struct {
	FullName string  `json:"fullName"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Dob      string  `json:"dob"`
	IDType   string  `json:"idType"`
	IDNumber string  `json:"idNumber"`
}

type ReservationRoom struct {
	Room          RoomRef     `json:"room"`
	RoomType      RoomTypeRef `json:"roomType"`
	PricePerNight float64     `json:"pricePerNight"`
}

type RoomRef struct {
	RoomID     int64  `json:"roomId"`
	RoomNumber string `json:"roomNumber,omitempty"`
}

type RoomTypeRef struct {
	RoomTypeID int64  `json:"roomTypeId"`
	Name       string `json:"name,omitempty"`
}

type GuestRef struct {
	GuestID int64 `json:"guestId"`
}

type UserRef struct {
	UserID int64 `json:"userId"`
}

type CreateReservationRequest struct {
	Guest            GuestRef          `json:"guest"`
	ArrivalDate      string            `json:"arrivalDate"`
	DepartureDate    string            `json:"departureDate"`
	NumGuests        int               `json:"numGuests"`
	TotalEstimated   float64           `json:"totalEstimated"`
	Status           string            `json:"status"`
	ReservationRooms []ReservationRoom `json:"reservationRooms"`
	User             *UserRef          `json:"user,omitempty"`
}

type Reservation struct {
	ReservationID    int64             `json:"reservationId"`
	Guest            Guest             `json:"guest"`
	ArrivalDate      string            `json:"arrivalDate"`
	DepartureDate    string            `json:"departureDate"`
	NumGuests        int               `json:"numGuests"`
	TotalEstimated   float64           `json:"totalEstimated"`
	Status           string            `json:"status"`
	ReservationRooms []ReservationRoom `json:"reservationRooms"`
	User             *UserRef          `json:"user,omitempty"`
}

type ServiceItem struct {
	ItemID int64   `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

type Dashboard struct {
	Stats              map[string]any   `json:"stats"`
	RecentReservations []map[string]any `json:"recentReservations"`
}

// StatusConfirmed is what the upstream expects on a freshly created
// reservation; the lifecycle statuses of the front desk start afterwards.
const StatusConfirmed = "confirmed"
