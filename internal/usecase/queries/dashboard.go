package queries

import (
	"context"

	"hotel-front-desk/internal/usecase/shared"
)

// DashboardQueries is a read-only passthrough; the stats are computed
// upstream and rendered as-is.
type DashboardQueries interface {
	Get(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	gateway shared.HotelGateway
}

func NewDashboardQueries(gateway shared.HotelGateway) DashboardQueries {
	return &dashboardQueriesImpl{gateway: gateway}
}

func (q *dashboardQueriesImpl) Get(ctx context.Context) (*DashboardView, error) {
	dashboard, err := q.gateway.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Stats:              dashboard.Stats,
		RecentReservations: dashboard.RecentReservations,
	}, nil
}
