package billing

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInsufficientCash     = errors.New("cash received is less than the amount due")
	ErrAlreadyPaid          = errors.New("invoice has already been settled")
)

// PaymentMethod is how the guest settles at checkout.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTransfer:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}

// ServiceItem is a chargeable extra attached to the invoice. Price is the
// flat amount billed once per selection.
type ServiceItem struct {
	ServiceID int64
	Name      string
	Price     float64
}

// ServiceSelection is a duplicate-free toggle set of extras keyed by service
// id, mirroring the room selection behaviour on the booking side.
type ServiceSelection struct {
	items map[int64]ServiceItem
}

func NewServiceSelection() ServiceSelection {
	return ServiceSelection{items: make(map[int64]ServiceItem)}
}

// Toggle adds the item when absent and removes it when present, returning
// true when the service ends up selected.
func (s ServiceSelection) Toggle(item ServiceItem) bool {
	if _, ok := s.items[item.ServiceID]; ok {
		delete(s.items, item.ServiceID)
		return false
	}
	s.items[item.ServiceID] = item
	return true
}

func (s ServiceSelection) Contains(serviceID int64) bool {
	_, ok := s.items[serviceID]
	return ok
}

func (s ServiceSelection) Len() int {
	return len(s.items)
}

// Items returns the selection ordered by service id.
func (s ServiceSelection) Items() []ServiceItem {
	items := make([]ServiceItem, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ServiceID < items[j].ServiceID })
	return items
}

func (s ServiceSelection) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Price
	}
	return total
}

// Invoice is the checkout bill for one reservation: the room charge plus any
// selected extras. Settlement is recorded locally; the upstream system only
// learns about the checkout transition.
type Invoice struct {
	reservationID int64
	roomTotal     float64
	services      ServiceSelection
	paid          bool
}

// NewInvoice prices the room charge as nightlyRate x nights.
func NewInvoice(reservationID int64, nightlyRate float64, nights int, services ServiceSelection) *Invoice {
	return &Invoice{
		reservationID: reservationID,
		roomTotal:     nightlyRate * float64(nights),
		services:      services,
	}
}

func (i *Invoice) ReservationID() int64       { return i.reservationID }
func (i *Invoice) RoomTotal() float64         { return i.roomTotal }
func (i *Invoice) Services() ServiceSelection { return i.services }
func (i *Invoice) ServicesTotal() float64     { return i.services.Total() }
func (i *Invoice) IsPaid() bool               { return i.paid }

func (i *Invoice) GrandTotal() float64 {
	return i.roomTotal + i.services.Total()
}

// ChangeFor is the cash change due: max(0, received - total). Overpayment by
// transfer never produces change.
func (i *Invoice) ChangeFor(method PaymentMethod, received float64) float64 {
	if method != PaymentCash {
		return 0
	}
	change := received - i.GrandTotal()
	if change < 0 {
		return 0
	}
	return change
}

// Receipt is the settlement record produced by a successful payment.
type Receipt struct {
	ReservationID int64
	Method        PaymentMethod
	RoomTotal     float64
	ServicesTotal float64
	GrandTotal    float64
	Received      float64
	Change        float64
	PaidAt        time.Time
}

// Settle marks the invoice paid and returns the receipt. Cash payments must
// cover the full amount; transfers settle for the exact total.
func (i *Invoice) Settle(method PaymentMethod, received float64, now time.Time) (*Receipt, error) {
	if i.paid {
		return nil, ErrAlreadyPaid
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	total := i.GrandTotal()
	if method == PaymentCash && received < total {
		return nil, ErrInsufficientCash
	}
	if method == PaymentTransfer {
		received = total
	}

	i.paid = true
	return &Receipt{
		ReservationID: i.reservationID,
		Method:        method,
		RoomTotal:     i.roomTotal,
		ServicesTotal: i.services.Total(),
		GrandTotal:    total,
		Received:      received,
		Change:        i.ChangeFor(method, received),
		PaidAt:        now,
	}, nil
}
