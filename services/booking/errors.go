package booking

import (
	"errors"
	"fmt"
)

// ErrNoReceiver replaces the silent loss of a broadcast nobody listened to.
var ErrNoReceiver = errors.New("no concierge session to receive the booking request")

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrUnknownRoom is matched with errors.Is against any unknown-room BookingError.
var ErrUnknownRoom = &BookingError{Code: "unknownRoom"}

func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	return ok && t.Code == e.Code
}

func NewUnknownRoomError(roomID string) error {
	return &BookingError{
		Code:    "unknownRoom",
		Message: fmt.Sprintf("room %q is not in the catalog", roomID),
	}
}
