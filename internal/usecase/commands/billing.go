package commands

import (
	"context"
	"sync"
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/booking"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/shared"
)

var (
	ErrPaymentRejected = errs.New("payment rejected")
	ErrAlreadySettled  = errs.New("invoice already settled")
)

type InvoiceView struct {
	ReservationID int64                 `json:"reservationId"`
	Nights        int                   `json:"nights"`
	RoomTotal     float64               `json:"roomTotal"`
	Services      []billing.ServiceItem `json:"services"`
	ServicesTotal float64               `json:"servicesTotal"`
	GrandTotal    float64               `json:"grandTotal"`
	Paid          bool                  `json:"paid"`
}

type ReceiptView struct {
	ReservationID int64     `json:"reservationId"`
	Method        string    `json:"method"`
	RoomTotal     float64   `json:"roomTotal"`
	ServicesTotal float64   `json:"servicesTotal"`
	GrandTotal    float64   `json:"grandTotal"`
	Received      float64   `json:"received"`
	Change        float64   `json:"change"`
	PaidAt        time.Time `json:"paidAt"`
}

type BillingCommands interface {
	PreviewInvoice(ctx context.Context, req reqdto.PreviewInvoiceRequest) (*InvoiceView, error)
	ConfirmPayment(ctx context.Context, req reqdto.ConfirmPaymentRequest) (*ReceiptView, error)
}

type billingUseCaseImpl struct {
	gateway shared.HotelGateway
	clock   clock.Clock

	// Settlement is local-only; the upstream never sees a payment record,
	// only the checkout transition. Receipts live for the process lifetime.
	// settling holds the reservations with a confirm in flight, so two
	// concurrent confirms cannot both settle the same invoice.
	mu       sync.Mutex
	receipts map[int64]*ReceiptView
	settling map[int64]struct{}
}

func NewBillingUseCase(gateway shared.HotelGateway, clock clock.Clock) BillingCommands {
	return &billingUseCaseImpl{
		gateway:  gateway,
		clock:    clock,
		receipts: make(map[int64]*ReceiptView),
		settling: make(map[int64]struct{}),
	}
}

func (b *billingUseCaseImpl) PreviewInvoice(ctx context.Context, req reqdto.PreviewInvoiceRequest) (*InvoiceView, error) {
	invoice, nights, err := b.buildInvoice(ctx, req.ReservationID, req.Services)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	_, paid := b.receipts[req.ReservationID]
	b.mu.Unlock()

	return &InvoiceView{
		ReservationID: req.ReservationID,
		Nights:        nights,
		RoomTotal:     invoice.RoomTotal(),
		Services:      invoice.Services().Items(),
		ServicesTotal: invoice.ServicesTotal(),
		GrandTotal:    invoice.GrandTotal(),
		Paid:          paid,
	}, nil
}

func (b *billingUseCaseImpl) ConfirmPayment(ctx context.Context, req reqdto.ConfirmPaymentRequest) (*ReceiptView, error) {
	method, err := billing.NewPaymentMethod(req.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentRejected)
	}

	if err := b.claimSettlement(req.ReservationID); err != nil {
		return nil, err
	}
	defer b.releaseSettlement(req.ReservationID)

	invoice, _, err := b.buildInvoice(ctx, req.ReservationID, req.Services)
	if err != nil {
		return nil, err
	}

	receipt, err := invoice.Settle(method, req.Received, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentRejected)
	}

	view := &ReceiptView{
		ReservationID: receipt.ReservationID,
		Method:        receipt.Method.String(),
		RoomTotal:     receipt.RoomTotal,
		ServicesTotal: receipt.ServicesTotal,
		GrandTotal:    receipt.GrandTotal,
		Received:      receipt.Received,
		Change:        receipt.Change,
		PaidAt:        receipt.PaidAt,
	}

	b.mu.Lock()
	b.receipts[req.ReservationID] = view
	b.mu.Unlock()

	return view, nil
}

// claimSettlement reserves the settlement slot for a reservation. A confirm
// racing against an already-running one reads the invoice as settled; the
// winner's receipt stands.
func (b *billingUseCaseImpl) claimSettlement(reservationID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, paid := b.receipts[reservationID]; paid {
		return ErrAlreadySettled
	}
	if _, busy := b.settling[reservationID]; busy {
		return ErrAlreadySettled
	}
	b.settling[reservationID] = struct{}{}
	return nil
}

func (b *billingUseCaseImpl) releaseSettlement(reservationID int64) {
	b.mu.Lock()
	delete(b.settling, reservationID)
	b.mu.Unlock()
}

// buildInvoice prices a reservation's bill from its live upstream state plus
// the submitted service lines. Duplicate service ids collapse to one charge.
func (b *billingUseCaseImpl) buildInvoice(ctx context.Context, reservationID int64, lines []reqdto.ServiceLine) (*billing.Invoice, int, error) {
	reservation, err := b.gateway.GetReservation(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, errs.Mark(err, ErrReservationDesynced)
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, 0, errs.Mark(err, ErrHotelAPIUnavailable)
		}
		return nil, 0, err
	}

	// A record whose dates no longer parse cannot be priced; treat it as a
	// stale local view rather than billing zero nights.
	loc := b.gateway.Location()
	arrival, err := hotelapi.ParseWireTime(reservation.ArrivalDate, loc)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrReservationDesynced)
	}
	departure, err := hotelapi.ParseWireTime(reservation.DepartureDate, loc)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrReservationDesynced)
	}
	stay := booking.NewStayPeriod(arrival, departure)

	var nightlyRate float64
	for _, room := range reservation.ReservationRooms {
		nightlyRate += room.PricePerNight
	}

	services := billing.NewServiceSelection()
	for _, line := range lines {
		if services.Contains(line.ServiceID) {
			continue
		}
		services.Toggle(billing.ServiceItem{ServiceID: line.ServiceID, Name: line.Name, Price: line.Price})
	}

	return billing.NewInvoice(reservationID, nightlyRate, stay.Nights(), services), stay.Nights(), nil
}
