package response

import (
	"time"

	"hotel-front-desk/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type ServiceLineResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type InvoiceResponse struct {
	ReservationID int64                 `json:"reservationId"`
	Nights        int                   `json:"nights"`
	RoomTotal     float64               `json:"roomTotal"`
	Services      []ServiceLineResponse `json:"services"`
	ServicesTotal float64               `json:"servicesTotal"`
	GrandTotal    float64               `json:"grandTotal"`
	Paid          bool                  `json:"paid"`
}

type ReceiptResponse struct {
	ReservationID int64     `json:"reservationId"`
	Method        string    `json:"method"`
	RoomTotal     float64   `json:"roomTotal"`
	ServicesTotal float64   `json:"servicesTotal"`
	GrandTotal    float64   `json:"grandTotal"`
	Received      float64   `json:"received"`
	Change        float64   `json:"change"`
	PaidAt        time.Time `json:"paidAt"`
}

func FromInvoiceView(view *commands.InvoiceView) *InvoiceResponse {
	resp := &InvoiceResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromReceiptView(view *commands.ReceiptView) *ReceiptResponse {
	resp := &ReceiptResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
