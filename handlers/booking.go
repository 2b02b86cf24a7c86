package handlers

import (
	"errors"
	"net/http"

	"silesiagrand/models"
	"silesiagrand/services/booking"
	"silesiagrand/services/concierge"
	"silesiagrand/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Service  booking.BookingService
	Registry *concierge.Registry
}

func NewBookingHandler(svc booking.BookingService, r *concierge.Registry) *BookingHandler {
	return &BookingHandler{Service: svc, Registry: r}
}

// ReserveRequest is the reservation form plus the concierge session it belongs to.
type ReserveRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	models.ReservationForm
}

type WizardRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	models.WizardBooking
}

// ReserveHandler handles POST /api/booking/reserve.
func (h *BookingHandler) ReserveHandler(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation", err.Error())
		return
	}
	s, ok := lookupSession(c, h.Registry, req.SessionID)
	if !ok {
		return
	}

	reply, err := h.Service.SubmitReservation(c.Request.Context(), s, req.ReservationForm)
	respondToSubmit(c, s, reply, err)
}

// WizardHandler handles POST /api/booking/wizard.
func (h *BookingHandler) WizardHandler(c *gin.Context) {
	var req WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	s, ok := lookupSession(c, h.Registry, req.SessionID)
	if !ok {
		return
	}

	reply, err := h.Service.SubmitWizard(c.Request.Context(), s, req.WizardBooking)
	if errors.Is(err, booking.ErrUnknownRoom) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown room", err.Error())
		return
	}
	respondToSubmit(c, s, reply, err)
}

// WizardQuoteHandler handles POST /api/booking/wizard/quote.
func (h *BookingHandler) WizardQuoteHandler(c *gin.Context) {
	var req models.WizardBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	quote, err := h.Service.QuoteWizard(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unknown room", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}
