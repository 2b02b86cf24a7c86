package catalog

import (
	"time"

	"silesiagrand/models"
)

// bookedPattern is shifted by the room id length to give each room its own grid.
var bookedPattern = []int{5, 6, 12, 13, 14, 20, 21, 27, 28}

// BookedDays returns the cosmetic booked days of the month for roomID.
func BookedDays(roomID string) []int {
	seed := len(roomID)
	days := make([]int, len(bookedPattern))
	for i, d := range bookedPattern {
		day := (d + seed) % 28
		if day == 0 {
			day = 1
		}
		days[i] = day
	}
	return days
}

// AvailabilityCalendar lays out the month containing now for roomID.
func AvailabilityCalendar(roomID string, now time.Time) models.AvailabilityMonth {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	return models.AvailabilityMonth{
		RoomID:       roomID,
		Month:        month.String(),
		Year:         year,
		DaysInMonth:  last.Day(),
		FirstWeekday: int(first.Weekday()),
		BookedDays:   BookedDays(roomID),
	}
}
