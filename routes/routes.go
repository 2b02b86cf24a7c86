package routes

import (
	"net/http"
	"time"

	"silesiagrand/handlers"
	"silesiagrand/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterConciergeRoutes registers the chat widget endpoints.
func RegisterConciergeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/concierge/sessions")
	{
		api.POST("", hb.CreateSessionHandler)
		api.GET("/:id", hb.GetSessionHandler)
		api.POST("/:id/messages", hb.SendMessageHandler)
		api.POST("/:id/open", hb.OpenSessionHandler)
		api.POST("/:id/close", hb.CloseSessionHandler)
	}
}

// RegisterBookingRoutes registers the reservation form and wizard hand-off.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/reserve", hb.ReserveHandler)
		bookingGroup.POST("/wizard", hb.WizardHandler)
		bookingGroup.POST("/wizard/quote", hb.WizardQuoteHandler)
	}
}

// RegisterCatalogRoutes registers the read-only room and amenity endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/rooms", hb.ListRoomsHandler)
		api.GET("/rooms/:id", hb.GetRoomHandler)
		api.GET("/rooms/:id/availability", hb.AvailabilityHandler)
		api.GET("/amenities", hb.AmenitiesHandler)
		api.GET("/distance", hb.DistanceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm the Silesia Grand concierge",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterConciergeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
