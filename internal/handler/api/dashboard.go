package api

import (
	"net/http"

	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	view, err := h.dashboardQueries.Get(c.Request.Context())
	if err != nil {
		relayUpstreamError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, view)
}
