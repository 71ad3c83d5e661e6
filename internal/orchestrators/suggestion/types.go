package suggestion

import (
	"time"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

// State is the store's lifecycle state
type State string

// Store states
const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateError      State = "error"
	StateExecuting  State = "executing"
)

// EventType names a store change notification
type EventType string

// Store events
const (
	EventSuggestionsUpdated EventType = "suggestions-updated"
	EventGeneratingChanged  EventType = "generating-changed"
	EventError              EventType = "error"
	EventRollStarted        EventType = "roll-started"
	EventRollCompleted      EventType = "roll-completed"
	EventDismissed          EventType = "dismissed"
	EventReset              EventType = "reset"
)

// Event is delivered to listeners after a store change
type Event struct {
	Type      EventType
	SessionID string
}

// Listener receives store events
type Listener func(Event)

// GenerateSuggestionsInput controls one generation round. Zero-valued
// overrides fall back to the current settings.
type GenerateSuggestionsInput struct {
	// Intent switches to the intent prompt ("I want to...")
	Intent string
	// Force skips the context-hash cache check
	Force bool

	SuggestionCount int
	ContextMessages int
	ChaosLevel      *float64
}

// GenerateSuggestionsOutput is the list produced or reused by a round
type GenerateSuggestionsOutput struct {
	Suggestions []entities.Suggestion
	ContextHash string
	Cached      bool
}

// ExecuteSuggestionInput identifies the suggestion to execute
type ExecuteSuggestionInput struct {
	SuggestionID string
}

// ExecuteSuggestionOutput holds the completed execution
type ExecuteSuggestionOutput struct {
	Result *entities.ExecutionResult
}

// HandleNewMessageOutput reports what a new conversation turn triggered
type HandleNewMessageOutput struct {
	Regenerated bool
	Generation  *GenerateSuggestionsOutput
}

// Snapshot is a serialisable copy of a store
type Snapshot struct {
	SessionID   string                    `json:"sessionId"`
	State       State                     `json:"state"`
	Suggestions []entities.Suggestion     `json:"suggestions"`
	ContextHash string                    `json:"contextHash"`
	Error       string                    `json:"error,omitempty"`
	LastResult  *entities.ExecutionResult `json:"lastResult,omitempty"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// GenerationPrompt is a rendered suggestion prompt with its cache key
type GenerationPrompt struct {
	Prompt      string
	ContextHash string
	Skills      []entities.VoicedSkill
}

// IntentPrompt is a rendered intent prompt with its cache key
type IntentPrompt struct {
	Prompt      string
	ContextHash string
	Intent      string
	Skills      []entities.Skill
}
