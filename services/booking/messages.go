package booking

import (
	"fmt"
	"strings"

	"silesiagrand/models"
)

// Add-on surcharges, per stay.
const (
	SpaAddonPrice       = 45
	BreakfastAddonPrice = 25
	TransferAddonPrice  = 60
)

// ReservationMessage renders the reservation page submission. roomName may be empty
// when the selected room is not in the catalog.
func ReservationMessage(form models.ReservationForm, roomName string) string {
	if roomName == "" {
		roomName = "a suite"
	}
	requests := form.SpecialRequests
	if requests == "" {
		requests = "None"
	}
	return fmt.Sprintf(
		"Hello, I'm %s. I'd like to book the %s for %s people, arriving on %s and departing on %s. My email is %s. Special requests: %s.",
		form.Name, roomName, form.Guests, form.CheckIn, form.CheckOut, form.Email, requests,
	)
}

// WizardMessage renders the final step of the booking wizard.
func WizardMessage(wizard models.WizardBooking, roomName string) string {
	enhancements := strings.Join(AddonNames(wizard.Addons), ", ")
	if enhancements == "" {
		enhancements = "None"
	}
	return fmt.Sprintf(
		"URGENT BOOKING REQUEST: My name is %s. I'm booking the %s from %s to %s. Enhancements: %s. Please confirm this itinerary.",
		wizard.Name, roomName, wizard.CheckIn, wizard.CheckOut, enhancements,
	)
}

// AddonNames lists the selected enhancements in display order.
func AddonNames(a models.BookingAddons) []string {
	var names []string
	if a.Spa {
		names = append(names, "Deep Well Spa Access")
	}
	if a.Breakfast {
		names = append(names, "Silesian Hearth Breakfast")
	}
	if a.Transfer {
		names = append(names, "VIP Airport Transfer")
	}
	return names
}

// WizardTotal adds the selected add-ons to the nightly room price.
func WizardTotal(roomPrice int, a models.BookingAddons) int {
	total := roomPrice
	if a.Spa {
		total += SpaAddonPrice
	}
	if a.Breakfast {
		total += BreakfastAddonPrice
	}
	if a.Transfer {
		total += TransferAddonPrice
	}
	return total
}
