package commands

import (
	"context"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/queries"
	"hotel-front-desk/internal/usecase/shared"
)

var (
	ErrGuestInvalid      = errs.New("guest profile validation failed")
	ErrGuestCreateFailed = errs.New("failed to create guest")
)

type GuestCommands interface {
	CreateGuest(ctx context.Context, req reqdto.CreateGuestRequest) (*queries.GuestView, error)
}

type guestUseCaseImpl struct {
	gateway shared.HotelGateway
	clock   clock.Clock
}

func NewGuestUseCase(gateway shared.HotelGateway, clock clock.Clock) GuestCommands {
	return &guestUseCaseImpl{gateway: gateway, clock: clock}
}

// CreateGuest registers a new profile in the external guest directory after
// full local validation. The created record carries the directory-assigned
// guest id the draft needs.
func (g *guestUseCaseImpl) CreateGuest(ctx context.Context, req reqdto.CreateGuestRequest) (*queries.GuestView, error) {
	profile, err := req.ToDomain(g.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrGuestInvalid)
	}

	payload := hotelapi.CreateGuestRequest{
		FullName: profile.FullName(),
		Phone:    profile.Phone().Value(),
		Dob:      hotelapi.FormatWireDate(profile.BirthDate().Value()),
		IDType:   profile.Identity().Type().String(),
		IDNumber: profile.Identity().Number(),
	}
	if !profile.Email().IsEmpty() {
		email := profile.Email().Value()
		payload.Email = &email
	}

	created, err := g.gateway.CreateGuest(ctx, payload)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrHotelAPIUnavailable)
		}
		return nil, errs.Mark(err, ErrGuestCreateFailed)
	}

	view := queries.ToGuestView(*created)
	return &view, nil
}
