package api

import (
	"errors"
	"net/http"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingCommands commands.BillingCommands
}

func NewBillingHandler(billingCommands commands.BillingCommands) *BillingHandler {
	return &BillingHandler{billingCommands: billingCommands}
}

func (h *BillingHandler) PreviewInvoice(c *gin.Context) {
	var req reqdto.PreviewInvoiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.billingCommands.PreviewInvoice(c.Request.Context(), req)
	if err != nil {
		h.respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.billingCommands.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		h.respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceiptView(receipt))
}

func (h *BillingHandler) respondBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPaymentRejected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrAlreadySettled):
		c.JSON(http.StatusConflict, gin.H{
			"error": commands.ErrAlreadySettled.Error(),
		})
	case errors.Is(err, commands.ErrReservationDesynced):
		c.JSON(http.StatusNotFound, gin.H{
			"error": commands.ErrReservationDesynced.Error(),
		})
	default:
		relayUpstreamError(c, err, "Billing operation failed")
	}
}
