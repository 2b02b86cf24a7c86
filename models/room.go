package models

// Room is a bookable room type shown in the collection browser.
type Room struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Price           int      `json:"price"` // nightly rate in USD
	Image           string   `json:"image"`
	Gallery         []string `json:"gallery"`
	Amenities       []string `json:"amenities"`
	Features        []string `json:"features"`
}

type Amenity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AvailabilityMonth is the cosmetic calendar grid for a room. BookedDays are
// deterministic per room and carry no real inventory meaning.
type AvailabilityMonth struct {
	RoomID       string `json:"roomId"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	DaysInMonth  int    `json:"daysInMonth"`
	FirstWeekday int    `json:"firstWeekday"` // 0 = Sunday
	BookedDays   []int  `json:"bookedDays"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
