package request

// ServiceLine is one ancillary charge picked from the service catalog.
type ServiceLine struct {
	ServiceID int64   `json:"serviceId" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type PreviewInvoiceRequest struct {
	ReservationID int64         `json:"reservationId" binding:"required"`
	Services      []ServiceLine `json:"services"`
}

type ConfirmPaymentRequest struct {
	ReservationID int64         `json:"reservationId" binding:"required"`
	Services      []ServiceLine `json:"services"`
	Method        string        `json:"method" binding:"required"`
	Received      float64       `json:"received"`
}
