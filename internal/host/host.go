// Package host defines the chat-host collaborators the suggestion pipeline
// reads from, plus a file-backed scene that implements them.
package host

import (
	"github.com/KirkDiggler/interfacing/internal/entities"
)

// Conversation exposes the host chat transcript
type Conversation interface {
	// RecentMessages returns up to n of the latest messages, oldest first
	RecentMessages(n int) []entities.Message
}

// Status exposes the player's vitals and active conditions
type Status interface {
	Health() entities.Vital
	Morale() entities.Vital
	Conditions() []entities.Condition
}
