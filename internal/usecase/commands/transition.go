package commands

import (
	"context"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/pkg/pubsub"
	"hotel-front-desk/internal/usecase/queries"
	"hotel-front-desk/internal/usecase/shared"
)

var (
	ErrReservationDesynced = errs.New("reservation not found, possibly deleted")
	ErrTransitionBlocked   = errs.New("status transition not allowed")
	ErrTransitionFailed    = errs.New("status update failed")
)

type TransitionCommands interface {
	CheckIn(ctx context.Context, reservationID int64) error
	CheckOut(ctx context.Context, reservationID int64) error
	Cancel(ctx context.Context, reservationID int64) error
}

type transitionUseCaseImpl struct {
	gateway shared.HotelGateway
	bus     shared.Publisher
	clock   clock.Clock
}

func NewTransitionUseCase(
	gateway shared.HotelGateway,
	bus shared.Publisher,
	clock clock.Clock,
) TransitionCommands {
	return &transitionUseCaseImpl{
		gateway: gateway,
		bus:     bus,
		clock:   clock,
	}
}

func (t *transitionUseCaseImpl) CheckIn(ctx context.Context, reservationID int64) error {
	current, err := t.loadStatus(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := booking.ValidateTransition(current, booking.StatusCheckedIn); err != nil {
		return errs.Mark(err, ErrTransitionBlocked)
	}

	if err := t.gateway.CheckIn(ctx, reservationID); err != nil {
		return t.categorize(err)
	}

	t.publish("checkin")
	return nil
}

func (t *transitionUseCaseImpl) CheckOut(ctx context.Context, reservationID int64) error {
	current, err := t.loadStatus(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := booking.ValidateTransition(current, booking.StatusCheckedOut); err != nil {
		return errs.Mark(err, ErrTransitionBlocked)
	}

	if err := t.gateway.CheckOut(ctx, reservationID); err != nil {
		return t.categorize(err)
	}

	t.publish("checkout")
	return nil
}

// Cancel goes through the generic full-record update: the upstream has no
// dedicated cancel endpoint. The record persists server-side as cancelled;
// the list query drops it from the active view.
func (t *transitionUseCaseImpl) Cancel(ctx context.Context, reservationID int64) error {
	reservation, err := t.gateway.GetReservation(ctx, reservationID)
	if err != nil {
		return t.categorize(err)
	}

	current := queries.NormalizeStatus(reservation.Status)
	if err := booking.ValidateTransition(current, booking.StatusCancelled); err != nil {
		return errs.Mark(err, ErrTransitionBlocked)
	}

	update := hotelapi.CreateReservationRequest{
		Guest:            hotelapi.GuestRef{GuestID: reservation.Guest.GuestID},
		ArrivalDate:      reservation.ArrivalDate,
		DepartureDate:    reservation.DepartureDate,
		NumGuests:        reservation.NumGuests,
		TotalEstimated:   reservation.TotalEstimated,
		Status:           booking.StatusCancelled.String(),
		ReservationRooms: reservation.ReservationRooms,
		User:             reservation.User,
	}
	if _, err := t.gateway.UpdateReservation(ctx, reservationID, update); err != nil {
		return t.categorize(err)
	}

	t.publish("cancel")
	return nil
}

func (t *transitionUseCaseImpl) loadStatus(ctx context.Context, reservationID int64) (booking.Status, error) {
	reservation, err := t.gateway.GetReservation(ctx, reservationID)
	if err != nil {
		return "", t.categorize(err)
	}
	return queries.NormalizeStatus(reservation.Status), nil
}

// categorize maps a 404 to the desync sentinel and broadcasts a corrective
// refetch signal: a missing reservation means the cached list is stale
// everywhere, not just in the calling view.
func (t *transitionUseCaseImpl) categorize(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		t.bus.Publish(pubsub.Event{Topic: pubsub.TopicReservationsChanged, Reason: "desync", OccurredAt: t.clock.Now()})
		return errs.Mark(err, ErrReservationDesynced)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrHotelAPIUnavailable)
	default:
		return errs.Mark(err, ErrTransitionFailed)
	}
}

func (t *transitionUseCaseImpl) publish(reason string) {
	now := t.clock.Now()
	t.bus.Publish(pubsub.Event{Topic: pubsub.TopicRoomsChanged, Reason: reason, OccurredAt: now})
	t.bus.Publish(pubsub.Event{Topic: pubsub.TopicReservationsChanged, Reason: reason, OccurredAt: now})
}
