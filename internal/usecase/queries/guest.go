package queries

import (
	"context"
	"log/slog"

	"hotel-front-desk/internal/domain/guest"
	"hotel-front-desk/internal/usecase/shared"
)

type ResolutionOutcome string

const (
	// OutcomeResolved: an exact normalized match exists; profile fields are
	// authoritative and read-only downstream.
	OutcomeResolved ResolutionOutcome = "resolved"
	// OutcomeNoAccount: no exact match, or the directory was unreachable.
	// Both block submission until a guest record is created.
	OutcomeNoAccount ResolutionOutcome = "no-account"
)

type GuestResolution struct {
	Outcome ResolutionOutcome `json:"outcome"`
	Guest   *GuestView        `json:"guest,omitempty"`
}

type GuestQueries interface {
	ResolveByIdentity(ctx context.Context, idType, idNumber string) (*GuestResolution, error)
}

type guestQueriesImpl struct {
	gateway shared.HotelGateway
	slogger *slog.Logger
}

func NewGuestQueries(gateway shared.HotelGateway, slogger *slog.Logger) GuestQueries {
	return &guestQueriesImpl{gateway: gateway, slogger: slogger}
}

// ResolveByIdentity looks the guest up by identity document. Directory search
// may return fuzzy candidates, so resolution only accepts an exact match
// after normalization. A failed lookup is deliberately indistinct from no
// match; the flow must never hard-fail on resolution.
func (q *guestQueriesImpl) ResolveByIdentity(ctx context.Context, idType, idNumber string) (*GuestResolution, error) {
	identity, err := guest.NewIdentity(guest.IDType(idType), idNumber)
	if err != nil {
		return nil, err
	}

	candidates, err := q.gateway.FindGuests(ctx, identity.Number(), identity.Type().String())
	if err != nil {
		q.slogger.Warn("guest lookup failed, treating as no match", slog.String("error", err.Error()))
		return &GuestResolution{Outcome: OutcomeNoAccount}, nil
	}

	for _, candidate := range candidates {
		if identity.Matches(candidate.IDNumber) {
			view := ToGuestView(candidate)
			return &GuestResolution{Outcome: OutcomeResolved, Guest: &view}, nil
		}
	}
	return &GuestResolution{Outcome: OutcomeNoAccount}, nil
}
