package booking

import (
	"context"

	"silesiagrand/models"
	"silesiagrand/services/catalog"

	"go.uber.org/zap"
)

// IntentReceiver takes a synthesized booking request as if the guest had typed it.
// *concierge.Session satisfies it.
type IntentReceiver interface {
	ReceiveExternalIntent(ctx context.Context, message string) (models.ChatTurn, error)
}

// BookingService turns the reservation form and the booking wizard into concierge
// requests. Nothing is stored; the front desk confirms out of band.
type BookingService interface {
	SubmitReservation(ctx context.Context, receiver IntentReceiver, form models.ReservationForm) (models.ChatTurn, error)
	SubmitWizard(ctx context.Context, receiver IntentReceiver, wizard models.WizardBooking) (models.ChatTurn, error)
	QuoteWizard(wizard models.WizardBooking) (*models.WizardQuote, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func NewDefaultBookingService(c *catalog.Catalog, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{Catalog: c, Logger: logger}
}
