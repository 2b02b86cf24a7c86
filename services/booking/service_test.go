package booking

import (
	"context"
	"errors"
	"testing"

	"silesiagrand/models"
	"silesiagrand/services/catalog"
	"silesiagrand/services/concierge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, utterance string, _ []models.ChatTurn) (string, error) {
	return "Received: " + utterance, nil
}

type failingReceiver struct{}

func (failingReceiver) ReceiveExternalIntent(context.Context, string) (models.ChatTurn, error) {
	return models.ChatTurn{}, concierge.ErrSessionBusy
}

func sampleForm() models.ReservationForm {
	return models.ReservationForm{
		CheckIn:  "2026-11-02",
		CheckOut: "2026-11-04",
		Guests:   "2",
		RoomID:   "black-diamond-loft",
		Name:     "Anna Nowak",
		Email:    "anna@example.com",
	}
}

func TestReservationMessage(t *testing.T) {
	form := sampleForm()
	assert.Equal(t,
		"Hello, I'm Anna Nowak. I'd like to book the Black Diamond Loft for 2 people, arriving on 2026-11-02 and departing on 2026-11-04. My email is anna@example.com. Special requests: None.",
		ReservationMessage(form, "Black Diamond Loft"))

	form.SpecialRequests = "Late check-in"
	assert.Contains(t, ReservationMessage(form, ""), "book the a suite for 2 people")
	assert.Contains(t, ReservationMessage(form, ""), "Special requests: Late check-in.")
}

func TestWizardMessage(t *testing.T) {
	w := models.WizardBooking{
		RoomID:   "spodek-suite",
		CheckIn:  "2026-12-30",
		CheckOut: "2027-01-02",
		Name:     "Jan Kowalski",
	}
	assert.Equal(t,
		"URGENT BOOKING REQUEST: My name is Jan Kowalski. I'm booking the The Spodek Panorama Suite from 2026-12-30 to 2027-01-02. Enhancements: None. Please confirm this itinerary.",
		WizardMessage(w, "The Spodek Panorama Suite"))

	w.Addons = models.BookingAddons{Spa: true, Transfer: true}
	assert.Contains(t, WizardMessage(w, "x"), "Enhancements: Deep Well Spa Access, VIP Airport Transfer.")
}

func TestWizardTotal(t *testing.T) {
	assert.Equal(t, 195, WizardTotal(195, models.BookingAddons{}))
	assert.Equal(t, 195+45+25+60, WizardTotal(195, models.BookingAddons{Spa: true, Breakfast: true, Transfer: true}))
	assert.Equal(t, 280+25, WizardTotal(280, models.BookingAddons{Breakfast: true}))
}

func TestSubmitReservation_HandsOffToSession(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)
	session := concierge.NewSession("s1", echoCompleter{})

	turn, err := svc.SubmitReservation(context.Background(), session, sampleForm())
	require.NoError(t, err)

	want := ReservationMessage(sampleForm(), "Black Diamond Loft")
	assert.Equal(t, "Received: "+want, turn.Text)
	assert.True(t, session.IsOpen())
	transcript := session.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, models.UserTurn(want), transcript[1])
}

func TestSubmitReservation_UnknownRoomStillHandsOff(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)
	session := concierge.NewSession("s1", echoCompleter{})
	form := sampleForm()
	form.RoomID = "broom-closet"

	_, err := svc.SubmitReservation(context.Background(), session, form)
	require.NoError(t, err)
	assert.Contains(t, session.Transcript()[1].Text, "the a suite")
}

func TestSubmitWizard(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)
	session := concierge.NewSession("s1", echoCompleter{})

	_, err := svc.SubmitWizard(context.Background(), session, models.WizardBooking{
		RoomID: "modernist-studio", Name: "Ewa", CheckIn: "2026-10-20", CheckOut: "2026-10-21",
		Addons: models.BookingAddons{Breakfast: true},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"URGENT BOOKING REQUEST: My name is Ewa. I'm booking the Modernist Executive Studio from 2026-10-20 to 2026-10-21. Enhancements: Silesian Hearth Breakfast. Please confirm this itinerary.",
		session.Transcript()[1].Text)
}

func TestSubmitWizard_UnknownRoom(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)
	session := concierge.NewSession("s1", echoCompleter{})

	_, err := svc.SubmitWizard(context.Background(), session, models.WizardBooking{RoomID: "attic"})
	assert.ErrorIs(t, err, ErrUnknownRoom)
	assert.Len(t, session.Transcript(), 1)
}

func TestHandOff_NilReceiver(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)

	_, err := svc.SubmitReservation(context.Background(), nil, sampleForm())
	assert.ErrorIs(t, err, ErrNoReceiver)
}

func TestHandOff_WrapsReceiverError(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)

	_, err := svc.SubmitReservation(context.Background(), failingReceiver{}, sampleForm())
	require.Error(t, err)
	assert.True(t, errors.Is(err, concierge.ErrSessionBusy))
}

func TestQuoteWizard(t *testing.T) {
	svc := NewDefaultBookingService(catalog.New(), nil)

	q, err := svc.QuoteWizard(models.WizardBooking{RoomID: "spodek-suite", Addons: models.BookingAddons{Spa: true}})
	require.NoError(t, err)
	assert.Equal(t, &models.WizardQuote{RoomID: "spodek-suite", RoomName: "The Spodek Panorama Suite", RoomPrice: 340, Total: 385}, q)

	_, err = svc.QuoteWizard(models.WizardBooking{RoomID: "nope"})
	assert.ErrorIs(t, err, ErrUnknownRoom)
}
