package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/handler/middleware"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	transitionCommands  commands.TransitionCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	transitionCommands commands.TransitionCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		transitionCommands:  transitionCommands,
		reservationQueries:  reservationQueries,
	}
}

func (h *ReservationHandler) SubmitReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.SubmitDraft(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDraftInvalid):
			// Marked errors keep the domain cause's own wording.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrGuestMismatch):
			c.JSON(http.StatusConflict, gin.H{
				"error": commands.ErrGuestMismatch.Error(),
			})
		case errors.Is(err, commands.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation request is currently being processed",
			})
		default:
			relayUpstreamError(c, err, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.reservationQueries.List(c.Request.Context(), query.GuestName, query.Status)
	if err != nil {
		relayUpstreamError(c, err, "Failed to load reservations")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": queries.ErrReservationNotFound.Error(),
			})
			return
		}
		relayUpstreamError(c, err, "Failed to load reservation")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.transitionCommands.CheckIn)
}

func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.transitionCommands.CheckOut)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.transitionCommands.Cancel)
}

func (h *ReservationHandler) transition(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationDesynced):
			c.JSON(http.StatusNotFound, gin.H{
				"error": commands.ErrReservationDesynced.Error(),
			})
		case errors.Is(err, commands.ErrTransitionBlocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": commands.ErrTransitionBlocked.Error(),
			})
		default:
			relayUpstreamError(c, err, "Status update failed")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return 0, false
	}
	return id, true
}

// relayUpstreamError surfaces the server's own message verbatim when the
// upstream supplied one; transport failures collapse to 502.
func relayUpstreamError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, commands.ErrHotelAPIUnavailable) || infra.IsKind(err, infra.KindUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": commands.ErrHotelAPIUnavailable.Error(),
		})
		return
	}

	var remote infra.RemoteError
	if errors.As(err, &remote) && remote.StatusCode >= 400 {
		msg := remote.Message
		if msg == "" {
			msg = fallback
		}
		c.JSON(remote.StatusCode, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
