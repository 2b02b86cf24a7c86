package catalog

import (
	"strings"

	"silesiagrand/models"
)

// Catalog serves the static room and amenity data of the hotel site.
type Catalog struct {
	rooms     []models.Room
	amenities []models.Amenity
}

// New returns the hotel's built-in catalog.
func New() *Catalog {
	return &Catalog{rooms: defaultRooms(), amenities: defaultAmenities()}
}

// NewWithRooms builds a catalog from caller-supplied rooms and amenities.
func NewWithRooms(rooms []models.Room, amenities []models.Amenity) *Catalog {
	return &Catalog{rooms: rooms, amenities: amenities}
}

func (c *Catalog) Rooms() []models.Room {
	return append([]models.Room(nil), c.rooms...)
}

func (c *Catalog) Amenities() []models.Amenity {
	return append([]models.Amenity(nil), c.amenities...)
}

// Room looks a room up by id.
func (c *Catalog) Room(id string) (models.Room, bool) {
	for _, r := range c.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// FilterRooms implements the collection browser tabs. "all" (or empty) returns every
// room; any other category keeps rooms whose id contains it. Matching is case-sensitive.
func (c *Catalog) FilterRooms(category string) []models.Room {
	if category == "" || category == "all" {
		return c.Rooms()
	}
	out := make([]models.Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if strings.Contains(r.ID, category) {
			out = append(out, r)
		}
	}
	return out
}

func defaultRooms() []models.Room {
	return []models.Room{
		{
			ID:              "spodek-suite",
			Name:            "The Spodek Panorama Suite",
			Description:     "Breathtaking 180-degree views of the legendary Spodek Arena and the International Congress Centre.",
			FullDescription: "Perched on the 22nd floor, the Spodek Panorama Suite offers an architectural perspective unlike any other in Katowice. The suite features a minimalist modernist design, honoring the city's futuristic vision. Guests enjoy a private lounge area, a Bang & Olufsen sound system, and a bathroom clad in dark Silesian slate with a freestanding soaking tub positioned against the window.",
			Price:           340,
			Image:           "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?auto=format&fit=crop&q=80&w=1200",
			Gallery: []string{
				"https://images.unsplash.com/photo-1611892440504-42a792e24d32?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1590490360182-c33d57733427?auto=format&fit=crop&q=80&w=800",
			},
			Amenities: []string{"Panoramic View", "King Bed", "Personal Butler", "Champagne Arrival"},
			Features:  []string{"65 m²", "Nespresso Vertuo", "Smart Glass Privacy", "Evening Turndown", "Priority Spa Access"},
		},
		{
			ID:              "black-diamond-loft",
			Name:            "Black Diamond Loft",
			Description:     "An homage to Silesia's industrial heritage, blending raw materials with supreme luxury.",
			FullDescription: "The Black Diamond Loft is our signature \"Coal to Culture\" experience. Featuring original exposed brickwork, black steel accents, and warm oak flooring, this suite captures the soul of Katowice. The centerpiece is a custom-made bed with 800-thread count Egyptian cotton linens and a curated collection of local industrial art.",
			Price:           280,
			Image:           "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&q=80&w=1200",
			Gallery: []string{
				"https://images.unsplash.com/photo-1536376074432-cd229f345330?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1554995207-c18c203602cb?auto=format&fit=crop&q=80&w=800",
			},
			Amenities: []string{"Industrial Design", "Loft Layout", "Vinyl Player", "Local Craft Gin Bar"},
			Features:  []string{"52 m²", "Marshall Speakers", "Rainforest Shower", "Designated Workspace", "Underfloor Heating"},
		},
		{
			ID:              "modernist-studio",
			Name:            "Modernist Executive Studio",
			Description:     "Clean lines and high-tech amenities for the discerning modern traveler.",
			FullDescription: "Inspired by the Katowice Modernism Trail, this studio offers a highly functional yet elegant space. Perfect for executive stays, it features integrated smart-home controls, an ergonomic workstation with Herman Miller seating, and acoustic insulation for total tranquility in the heart of the city.",
			Price:           195,
			Image:           "https://images.unsplash.com/photo-1595576508898-0ad5c879a061?auto=format&fit=crop&q=80&w=1200",
			Gallery: []string{
				"https://images.unsplash.com/photo-1505693419148-186716a125b2?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1544124499-58912cbddaad?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&q=80&w=800",
			},
			Amenities: []string{"Smart Controls", "Ergonomic Desk", "Fiber Internet", "Quiet Zone"},
			Features:  []string{"40 m²", "Steam Iron", "Yoga Mat", "Organic Toiletries", "Self Check-in Capable"},
		},
	}
}

func defaultAmenities() []models.Amenity {
	return []models.Amenity{
		{ID: "deep-spa", Title: "The Deep Well Spa", Description: "A subterranean sanctuary inspired by ancient salt mines, featuring thermal pools and halotherapy."},
		{ID: "hearth-dining", Title: "Silesian Hearth", Description: "Culinary excellence featuring \"Black Gold\" pierogi and modern interpretations of beef roulades."},
		{ID: "culture-concierge", Title: "Culture Hub", Description: "Direct ticketing for NOSPR concerts and exclusive private tours of Nikiszowiec."},
	}
}
