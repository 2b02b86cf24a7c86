package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"silesiagrand/models"
	"silesiagrand/services/booking"
	"silesiagrand/services/catalog"
	"silesiagrand/services/concierge"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completerFunc func(ctx context.Context, utterance string, history []models.ChatTurn) (string, error)

func (f completerFunc) Complete(ctx context.Context, utterance string, history []models.ChatTurn) (string, error) {
	return f(ctx, utterance, history)
}

func echo() completerFunc {
	return func(_ context.Context, utterance string, _ []models.ChatTurn) (string, error) {
		return "echo: " + utterance, nil
	}
}

type testServer struct {
	router   *gin.Engine
	registry *concierge.Registry
}

func newTestServer(t *testing.T, completer concierge.Completer) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := concierge.NewRegistry(completer, nil, nil, concierge.RegistryConfig{})
	hotel := catalog.New()
	catalogHandler := NewCatalogHandler(hotel)
	catalogHandler.Now = func() time.Time { return time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC) }

	hb := NewHandlerBundle(
		NewConciergeHandler(registry),
		NewBookingHandler(booking.NewDefaultBookingService(hotel, nil), registry),
		catalogHandler,
	)

	r := gin.New()
	r.POST("/sessions", hb.CreateSessionHandler)
	r.GET("/sessions/:id", hb.GetSessionHandler)
	r.POST("/sessions/:id/messages", hb.SendMessageHandler)
	r.POST("/sessions/:id/open", hb.OpenSessionHandler)
	r.POST("/sessions/:id/close", hb.CloseSessionHandler)
	r.POST("/reserve", hb.ReserveHandler)
	r.POST("/wizard", hb.WizardHandler)
	r.POST("/wizard/quote", hb.WizardQuoteHandler)
	r.GET("/rooms", hb.ListRoomsHandler)
	r.GET("/rooms/:id", hb.GetRoomHandler)
	r.GET("/rooms/:id/availability", hb.AvailabilityHandler)
	r.GET("/amenities", hb.AmenitiesHandler)
	r.GET("/distance", hb.DistanceHandler)

	return &testServer{router: r, registry: registry}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) createSession(t *testing.T) models.SessionSnapshot {
	t.Helper()
	w := ts.do(http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var snap models.SessionSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCreateSession_ReturnsGreeting(t *testing.T) {
	ts := newTestServer(t, echo())

	snap := ts.createSession(t)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, []models.ChatTurn{models.AssistantTurn(models.ConciergeGreeting)}, snap.Transcript)
	assert.False(t, snap.Busy)
}

func TestGetSession_NotFound(t *testing.T) {
	ts := newTestServer(t, echo())

	w := ts.do(http.MethodGet, "/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessage(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	w := ts.do(http.MethodPost, "/sessions/"+snap.ID+"/messages", SendMessageRequest{Text: "Is there a spa?"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SubmitResponse](t, w)
	assert.True(t, resp.Accepted)
	require.NotNil(t, resp.Reply)
	assert.Equal(t, models.AssistantTurn("echo: Is there a spa?"), *resp.Reply)
	assert.Len(t, resp.Session.Transcript, 3)
	assert.Equal(t, models.UserTurn("Is there a spa?"), resp.Session.Transcript[1])
}

func TestSendMessage_EmptyIsRejected(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	w := ts.do(http.MethodPost, "/sessions/"+snap.ID+"/messages", SendMessageRequest{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/sessions/"+snap.ID, nil)
	assert.Len(t, decode[models.SessionSnapshot](t, w).Transcript, 1)
}

func TestSendMessage_UnknownSession(t *testing.T) {
	ts := newTestServer(t, echo())

	w := ts.do(http.MethodPost, "/sessions/nope/messages", SendMessageRequest{Text: "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessage_WhileBusyIsDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	ts := newTestServer(t, completerFunc(func(_ context.Context, utterance string, _ []models.ChatTurn) (string, error) {
		started <- struct{}{}
		<-release
		return "done", nil
	}))
	snap := ts.createSession(t)

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- ts.do(http.MethodPost, "/sessions/"+snap.ID+"/messages", SendMessageRequest{Text: "first"})
	}()
	<-started

	w := ts.do(http.MethodPost, "/sessions/"+snap.ID+"/messages", SendMessageRequest{Text: "second"})
	require.Equal(t, http.StatusOK, w.Code)
	busy := decode[SubmitResponse](t, w)
	assert.False(t, busy.Accepted)
	assert.Nil(t, busy.Reply)
	assert.True(t, busy.Session.Busy)

	close(release)
	done := decode[SubmitResponse](t, <-first)
	assert.True(t, done.Accepted)
	assert.Len(t, done.Session.Transcript, 3)
	assert.False(t, done.Session.Busy)
}

func TestOpenAndCloseSession(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	w := ts.do(http.MethodPost, "/sessions/"+snap.ID+"/open", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.SessionSnapshot](t, w).Open)

	w = ts.do(http.MethodPost, "/sessions/"+snap.ID+"/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	closed := decode[models.SessionSnapshot](t, w)
	assert.False(t, closed.Open)
	assert.Len(t, closed.Transcript, 1)
}

func TestReserve_HandsOffToConcierge(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	body := map[string]any{
		"sessionId": snap.ID,
		"checkIn":   "2024-03-01",
		"checkOut":  "2024-03-04",
		"guests":    "2",
		"roomId":    "black-diamond-loft",
		"name":      "Anna Nowak",
		"email":     "anna@example.com",
	}
	w := ts.do(http.MethodPost, "/reserve", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SubmitResponse](t, w)
	assert.True(t, resp.Accepted)
	assert.True(t, resp.Session.Open)
	require.Len(t, resp.Session.Transcript, 3)
	assert.Equal(t, models.RoleUser, resp.Session.Transcript[1].Role)
	assert.Contains(t, resp.Session.Transcript[1].Text, "Anna Nowak")
}

func TestReserve_ValidatesForm(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	w := ts.do(http.MethodPost, "/reserve", map[string]any{"sessionId": snap.ID, "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizard_UnknownRoom(t *testing.T) {
	ts := newTestServer(t, echo())
	snap := ts.createSession(t)

	w := ts.do(http.MethodPost, "/wizard", map[string]any{"sessionId": snap.ID, "roomId": "penthouse"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/sessions/"+snap.ID, nil)
	assert.Len(t, decode[models.SessionSnapshot](t, w).Transcript, 1)
}

func TestWizardQuote(t *testing.T) {
	ts := newTestServer(t, echo())

	w := ts.do(http.MethodPost, "/wizard/quote", map[string]any{
		"roomId": "black-diamond-loft",
		"addons": map[string]bool{"spa": true, "transfer": true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	quote := decode[models.WizardQuote](t, w)
	room, ok := catalog.New().Room("black-diamond-loft")
	require.True(t, ok)
	assert.Equal(t, room.Price+45+60, quote.Total)
}

func TestCatalogEndpoints(t *testing.T) {
	ts := newTestServer(t, echo())

	w := ts.do(http.MethodGet, "/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Room](t, w), len(catalog.New().Rooms()))

	w = ts.do(http.MethodGet, "/rooms/penthouse", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/rooms/black-diamond-loft/availability", nil)
	require.Equal(t, http.StatusOK, w.Code)
	month := decode[models.AvailabilityMonth](t, w)
	assert.Equal(t, 29, month.DaysInMonth)

	w = ts.do(http.MethodGet, "/amenities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[[]models.Amenity](t, w))
}

func TestDistance(t *testing.T) {
	ts := newTestServer(t, echo())

	w := ts.do(http.MethodGet, "/distance?lat=50.2644&lon=19.0236", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[map[string]int](t, w)["distanceKm"])

	w = ts.do(http.MethodGet, "/distance?lat=abc&lon=19", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/distance?lat=91&lon=19", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
