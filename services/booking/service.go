package booking

import (
	"context"
	"fmt"

	"silesiagrand/models"

	"go.uber.org/zap"
)

// SubmitReservation hands the reservation form to the concierge. An unknown room is
// tolerated and described as "a suite".
func (s *DefaultBookingService) SubmitReservation(ctx context.Context, receiver IntentReceiver, form models.ReservationForm) (models.ChatTurn, error) {
	var roomName string
	if room, ok := s.Catalog.Room(form.RoomID); ok {
		roomName = room.Name
	}
	return s.handOff(ctx, receiver, "reservation", ReservationMessage(form, roomName))
}

// SubmitWizard hands the completed wizard to the concierge.
func (s *DefaultBookingService) SubmitWizard(ctx context.Context, receiver IntentReceiver, wizard models.WizardBooking) (models.ChatTurn, error) {
	room, ok := s.Catalog.Room(wizard.RoomID)
	if !ok {
		return models.ChatTurn{}, NewUnknownRoomError(wizard.RoomID)
	}
	return s.handOff(ctx, receiver, "wizard", WizardMessage(wizard, room.Name))
}

func (s *DefaultBookingService) QuoteWizard(wizard models.WizardBooking) (*models.WizardQuote, error) {
	room, ok := s.Catalog.Room(wizard.RoomID)
	if !ok {
		return nil, NewUnknownRoomError(wizard.RoomID)
	}
	return &models.WizardQuote{
		RoomID:    room.ID,
		RoomName:  room.Name,
		RoomPrice: room.Price,
		Total:     WizardTotal(room.Price, wizard.Addons),
	}, nil
}

func (s *DefaultBookingService) handOff(ctx context.Context, receiver IntentReceiver, source, message string) (models.ChatTurn, error) {
	if receiver == nil {
		return models.ChatTurn{}, ErrNoReceiver
	}
	s.Logger.Info("Handing booking request to concierge", zap.String("source", source), zap.Int("length", len(message)))

	turn, err := receiver.ReceiveExternalIntent(ctx, message)
	if err != nil {
		return models.ChatTurn{}, fmt.Errorf("%s hand-off: %w", source, err)
	}
	return turn, nil
}
