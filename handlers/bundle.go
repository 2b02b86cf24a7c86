package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Concierge endpoints
	CreateSessionHandler gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	SendMessageHandler   gin.HandlerFunc
	OpenSessionHandler   gin.HandlerFunc
	CloseSessionHandler  gin.HandlerFunc

	// Booking hand-off endpoints
	ReserveHandler     gin.HandlerFunc
	WizardHandler      gin.HandlerFunc
	WizardQuoteHandler gin.HandlerFunc

	// Catalog endpoints
	ListRoomsHandler    gin.HandlerFunc
	GetRoomHandler      gin.HandlerFunc
	AvailabilityHandler gin.HandlerFunc
	AmenitiesHandler    gin.HandlerFunc
	DistanceHandler     gin.HandlerFunc
}

// NewHandlerBundle wires every handler method into the bundle.
func NewHandlerBundle(ch *ConciergeHandler, bh *BookingHandler, cat *CatalogHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateSessionHandler: ch.CreateSessionHandler,
		GetSessionHandler:    ch.GetSessionHandler,
		SendMessageHandler:   ch.SendMessageHandler,
		OpenSessionHandler:   ch.OpenSessionHandler,
		CloseSessionHandler:  ch.CloseSessionHandler,

		ReserveHandler:     bh.ReserveHandler,
		WizardHandler:      bh.WizardHandler,
		WizardQuoteHandler: bh.WizardQuoteHandler,

		ListRoomsHandler:    cat.ListRoomsHandler,
		GetRoomHandler:      cat.GetRoomHandler,
		AvailabilityHandler: cat.AvailabilityHandler,
		AmenitiesHandler:    cat.AmenitiesHandler,
		DistanceHandler:     cat.DistanceHandler,
	}
}
