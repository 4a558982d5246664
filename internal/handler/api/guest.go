package api

import (
	"errors"
	"net/http"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// FindGuest resolves a guest by identity document. Lookup failures against
// the directory do not surface here; they resolve to "no-account".
func (h *GuestHandler) FindGuest(c *gin.Context) {
	var query reqdto.FindGuestQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "idType and idNumber are required",
		})
		return
	}

	resolution, err := h.guestQueries.ResolveByIdentity(c.Request.Context(), query.IDType, query.IDNumber)
	if err != nil {
		// Only local format validation can fail here.
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestResolution(resolution))
}

func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.guestCommands.CreateGuest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrGuestInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		relayUpstreamError(c, err, "Failed to create guest")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}
