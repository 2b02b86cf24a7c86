package catalog

import (
	"math"

	"silesiagrand/models"
)

const earthRadiusKm = 6371

// HotelLocation is the front entrance on Aleja Korfantego.
var HotelLocation = models.GeoPoint{Latitude: 50.2644, Longitude: 19.0236}

// HaversineKm is the great-circle distance between a and b.
func HaversineKm(a, b models.GeoPoint) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceToHotelKm rounds to whole kilometres, as shown on the home page.
func DistanceToHotelKm(from models.GeoPoint) int {
	return int(math.Round(HaversineKm(from, HotelLocation)))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
