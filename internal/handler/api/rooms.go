package api

import (
	"net/http"
	"strconv"

	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{roomQueries: roomQueries}
}

// ListAvailableRooms answers the availability view. The selection itself is
// client state; refetching under a different filter must never clear it, so
// this endpoint is pure and carries no session.
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	var roomTypeID *int64
	if raw := c.Query("roomTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid roomTypeId",
			})
			return
		}
		roomTypeID = &id
	}

	views, err := h.roomQueries.ListAvailableRooms(c.Request.Context(), roomTypeID)
	if err != nil {
		relayUpstreamError(c, err, "Failed to load rooms")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		relayUpstreamError(c, err, "Failed to load room types")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

func (h *RoomHandler) ListServiceItems(c *gin.Context) {
	views, err := h.roomQueries.ListServiceItems(c.Request.Context())
	if err != nil {
		relayUpstreamError(c, err, "Failed to load service items")
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceItemViews(views))
}
