package intelligence

import (
	"context"
	"errors"

	"silesiagrand/models"
)

// Provider is an external text-generation backend. Implementations translate the
// transcript into their own wire shape and return the generated text.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemInstruction string, history []models.ChatTurn, utterance string) (string, error)
}

// ErrNoCandidates is returned when a provider answers without any usable content.
var ErrNoCandidates = errors.New("provider returned no candidates")
