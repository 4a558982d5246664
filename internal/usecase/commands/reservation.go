package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"hotel-front-desk/internal/domain/booking"
	"hotel-front-desk/internal/domain/guest"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/pkg/pubsub"
	"hotel-front-desk/internal/usecase/queries"
	"hotel-front-desk/internal/usecase/shared"
)

var (
	ErrDraftInvalid        = errs.New("draft validation failed")
	ErrGuestMismatch       = errs.New("guest account no longer matches the entered identity document")
	ErrSubmissionInFlight  = errs.New("this reservation is already being submitted")
	ErrHotelAPIUnavailable = errs.New("cannot reach hotel api")
	ErrSubmitFailed        = errs.New("failed to create reservation")
)

type ReservationCommands interface {
	SubmitDraft(ctx context.Context, req reqdto.SubmitReservationRequest, userID int64) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	gateway  shared.HotelGateway
	bus      shared.Publisher
	clock    clock.Clock
	inFlight sync.Map // request hash -> struct{}
}

func NewReservationUseCase(
	gateway shared.HotelGateway,
	bus shared.Publisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		gateway: gateway,
		bus:     bus,
		clock:   clock,
	}
}

// SubmitDraft validates the draft locally, re-verifies the guest resolution
// against the directory, and only then issues the upstream create. Validation
// always completes before any network call. An identical submission still in
// flight is rejected instead of creating a duplicate.
func (r *reservationUseCaseImpl) SubmitDraft(
	ctx context.Context,
	req reqdto.SubmitReservationRequest,
	userID int64,
) (*queries.ReservationView, error) {
	draft, identity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDraftInvalid)
	}
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDraftInvalid)
	}

	requestHash := r.calculateRequestHash(req)
	if _, loaded := r.inFlight.LoadOrStore(requestHash, struct{}{}); loaded {
		return nil, ErrSubmissionInFlight
	}
	defer r.inFlight.Delete(requestHash)

	if err := r.verifyGuestResolution(ctx, draft.GuestID(), identity); err != nil {
		return nil, err
	}

	created, err := r.gateway.CreateReservation(ctx, r.buildCreateRequest(req, draft, userID))
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrHotelAPIUnavailable)
		}
		return nil, errs.Mark(err, ErrSubmitFailed)
	}

	now := r.clock.Now()
	r.bus.Publish(pubsub.Event{Topic: pubsub.TopicRoomsChanged, Reason: "reservation_created", OccurredAt: now})
	r.bus.Publish(pubsub.Event{Topic: pubsub.TopicReservationsChanged, Reason: "reservation_created", OccurredAt: now})

	return queries.ToReservationView(*created, r.gateway.Location()), nil
}

// verifyGuestResolution re-resolves the guest at submission time. An edited
// identity number invalidates any earlier resolution, so the submitted guest
// id must still carry the submitted document.
func (r *reservationUseCaseImpl) verifyGuestResolution(ctx context.Context, guestID int64, identity guest.Identity) error {
	candidates, err := r.gateway.FindGuests(ctx, identity.Number(), identity.Type().String())
	if err != nil {
		return errs.Mark(err, ErrGuestMismatch)
	}
	for _, candidate := range candidates {
		if candidate.GuestID == guestID && identity.Matches(candidate.IDNumber) {
			return nil
		}
	}
	return ErrGuestMismatch
}

// buildCreateRequest serializes the validated draft. Rooms come from the
// draft's selection, not the raw request, so the wire payload carries exactly
// the set the occupancy check and the estimate were computed over.
func (r *reservationUseCaseImpl) buildCreateRequest(req reqdto.SubmitReservationRequest, draft *booking.Draft, userID int64) hotelapi.CreateReservationRequest {
	loc := r.gateway.Location()

	picks := draft.Selection().Rooms()
	rooms := make([]hotelapi.ReservationRoom, 0, len(picks))
	for _, pick := range picks {
		rooms = append(rooms, hotelapi.ReservationRoom{
			Room:          hotelapi.RoomRef{RoomID: pick.RoomID},
			RoomType:      hotelapi.RoomTypeRef{RoomTypeID: pick.RoomTypeID},
			PricePerNight: pick.NightlyRate,
		})
	}

	create := hotelapi.CreateReservationRequest{
		Guest:            hotelapi.GuestRef{GuestID: req.GuestID},
		ArrivalDate:      hotelapi.FormatWireTime(req.ArrivalDate, loc),
		DepartureDate:    hotelapi.FormatWireTime(req.DepartureDate, loc),
		NumGuests:        req.NumGuests,
		TotalEstimated:   draft.TotalEstimate(),
		Status:           hotelapi.StatusConfirmed,
		ReservationRooms: rooms,
	}
	if userID > 0 {
		create.User = &hotelapi.UserRef{UserID: userID}
	}
	return create
}

func (r *reservationUseCaseImpl) calculateRequestHash(req reqdto.SubmitReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
