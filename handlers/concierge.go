package handlers

import (
	"errors"
	"net/http"

	"silesiagrand/models"
	"silesiagrand/services/booking"
	"silesiagrand/services/concierge"
	"silesiagrand/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var _ booking.IntentReceiver = (*concierge.Session)(nil)

type ConciergeHandler struct {
	Registry *concierge.Registry
}

func NewConciergeHandler(r *concierge.Registry) *ConciergeHandler {
	return &ConciergeHandler{Registry: r}
}

// SendMessageRequest is the chat input box payload.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SubmitResponse reports whether a submission was taken. A submission made while the
// concierge is still answering is dropped and Accepted is false.
type SubmitResponse struct {
	Accepted bool                   `json:"accepted"`
	Reply    *models.ChatTurn       `json:"reply,omitempty"`
	Session  models.SessionSnapshot `json:"session"`
}

// CreateSessionHandler handles POST /api/concierge/sessions.
func (h *ConciergeHandler) CreateSessionHandler(c *gin.Context) {
	s := h.Registry.Create(c.Request.Context())
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetSessionHandler handles GET /api/concierge/sessions/:id.
func (h *ConciergeHandler) GetSessionHandler(c *gin.Context) {
	s, ok := lookupSession(c, h.Registry, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// SendMessageHandler handles POST /api/concierge/sessions/:id/messages.
func (h *ConciergeHandler) SendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message", err.Error())
		return
	}
	s, ok := lookupSession(c, h.Registry, c.Param("id"))
	if !ok {
		return
	}

	reply, err := s.Submit(c.Request.Context(), req.Text)
	respondToSubmit(c, s, reply, err)
}

// OpenSessionHandler handles POST /api/concierge/sessions/:id/open.
func (h *ConciergeHandler) OpenSessionHandler(c *gin.Context) {
	s, ok := lookupSession(c, h.Registry, c.Param("id"))
	if !ok {
		return
	}
	s.Open()
	c.JSON(http.StatusOK, s.Snapshot())
}

// CloseSessionHandler handles POST /api/concierge/sessions/:id/close.
func (h *ConciergeHandler) CloseSessionHandler(c *gin.Context) {
	s, ok := lookupSession(c, h.Registry, c.Param("id"))
	if !ok {
		return
	}
	s.Close()
	c.JSON(http.StatusOK, s.Snapshot())
}

func lookupSession(c *gin.Context, r *concierge.Registry, id string) (*concierge.Session, bool) {
	s, err := r.Get(c.Request.Context(), id)
	if errors.Is(err, concierge.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Session not found", id)
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Error("Failed to load session", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Failed to load session"})
		return nil, false
	}
	return s, true
}

// respondToSubmit maps the outcome of Submit or a hand-off onto the wire.
func respondToSubmit(c *gin.Context, s *concierge.Session, reply models.ChatTurn, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, SubmitResponse{Accepted: true, Reply: &reply, Session: s.Snapshot()})
	case errors.Is(err, concierge.ErrSessionBusy):
		c.JSON(http.StatusOK, SubmitResponse{Accepted: false, Session: s.Snapshot()})
	case errors.Is(err, concierge.ErrEmptyUtterance):
		utils.JSONError(c, http.StatusBadRequest, "Message is empty", "")
	default:
		utils.GetLogger().Error("Concierge submission failed", zap.String("session", s.ID()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Concierge unavailable"})
	}
}
