package queries

import (
	"context"
	"strings"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found, possibly deleted")

type ReservationQueries interface {
	List(ctx context.Context, guestName, status string) ([]*ReservationView, error)
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	gateway shared.HotelGateway
}

func NewReservationQueries(gateway shared.HotelGateway) ReservationQueries {
	return &reservationQueriesImpl{gateway: gateway}
}

// List returns the active reservation list. Cancelled records persist
// upstream but are removed from the default view; they only appear when
// asked for by status explicitly.
func (q *reservationQueriesImpl) List(ctx context.Context, guestName, status string) ([]*ReservationView, error) {
	reservations, err := q.gateway.ListReservations(ctx, strings.TrimSpace(guestName), strings.TrimSpace(status))
	if err != nil {
		return nil, err
	}

	views := make([]*ReservationView, 0, len(reservations))
	for _, r := range reservations {
		view := ToReservationView(r, q.gateway.Location())
		if status == "" && view.Status == booking.StatusCancelled.String() {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	reservation, err := q.gateway.GetReservation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return ToReservationView(*reservation, q.gateway.Location()), nil
}
