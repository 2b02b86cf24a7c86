package models

// ReservationForm carries the multi-field reservation page values.
type ReservationForm struct {
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          string `json:"guests" binding:"required"`
	RoomID          string `json:"roomId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingAddons are the optional enhancements offered by the booking wizard.
type BookingAddons struct {
	Spa       bool `json:"spa"`
	Breakfast bool `json:"breakfast"`
	Transfer  bool `json:"transfer"`
}

// WizardBooking is the state collected across the three wizard steps
// (suite, experience, arrival).
type WizardBooking struct {
	RoomID   string        `json:"roomId" binding:"required"`
	Addons   BookingAddons `json:"addons"`
	CheckIn  string        `json:"checkIn"`
	CheckOut string        `json:"checkOut"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
}

// WizardQuote is the running total shown beside the wizard.
type WizardQuote struct {
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName"`
	RoomPrice int    `json:"roomPrice"`
	Total     int    `json:"total"`
}
