package models

// Role attributes a chat turn to the guest or to the concierge.
type Role string

const (
	RoleUser Role = "user"
	// RoleAssistant uses the provider-facing name for the concierge side.
	RoleAssistant Role = "model"
)

// ChatTurn is one message in a concierge conversation. Turns are never mutated after
// they are appended to a transcript.
type ChatTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// SessionSnapshot is the read model the widget renders.
type SessionSnapshot struct {
	ID         string     `json:"id"`
	Transcript []ChatTurn `json:"transcript"`
	Busy       bool       `json:"busy"`
	Open       bool       `json:"open"`
}

const (
	// ConciergeGreeting seeds every new session.
	ConciergeGreeting = "Good evening. I am your Grand Silesian Guide. How may I assist you with your Katowice stay today?"

	// ConciergeFallbackReply is what the guest sees whenever the completion provider fails.
	ConciergeFallbackReply = "I apologize, my connection to the hotel system is currently unstable. Please contact our human concierge directly at +48 32 123 45 67."

	// EmptyReplyFallback replaces a reply that came back without any text.
	EmptyReplyFallback = "I'm sorry, I couldn't process that. Please try again."
)

// UserTurn and AssistantTurn are small constructors used across packages.
func UserTurn(text string) ChatTurn {
	return ChatTurn{Role: RoleUser, Text: text}
}

func AssistantTurn(text string) ChatTurn {
	return ChatTurn{Role: RoleAssistant, Text: text}
}
