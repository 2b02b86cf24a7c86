package handlers

import (
	"net/http"
	"strconv"
	"time"

	"silesiagrand/models"
	"silesiagrand/services/catalog"
	"silesiagrand/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c, Now: time.Now}
}

// ListRoomsHandler handles GET /api/rooms?category=.
func (h *CatalogHandler) ListRoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.FilterRooms(c.DefaultQuery("category", "all")))
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *CatalogHandler) GetRoomHandler(c *gin.Context) {
	room, ok := h.Catalog.Room(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, room)
}

// AvailabilityHandler handles GET /api/rooms/:id/availability.
func (h *CatalogHandler) AvailabilityHandler(c *gin.Context) {
	room, ok := h.Catalog.Room(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, catalog.AvailabilityCalendar(room.ID, h.Now()))
}

// AmenitiesHandler handles GET /api/amenities.
func (h *CatalogHandler) AmenitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Amenities())
}

// DistanceHandler handles GET /api/distance?lat=&lon=.
func (h *CatalogHandler) DistanceHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", "lat and lon must be decimal degrees")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"distanceKm": catalog.DistanceToHotelKm(models.GeoPoint{Latitude: lat, Longitude: lon}),
	})
}
