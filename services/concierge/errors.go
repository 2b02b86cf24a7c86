package concierge

import "errors"

var (
	ErrEmptyUtterance  = errors.New("utterance is empty")
	ErrSessionBusy     = errors.New("session is waiting on a reply")
	ErrSessionNotFound = errors.New("session not found")
)
