// Package suggestionsession persists suggestion store state per conversation
package suggestionsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=suggestionsessionmock github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session Repository

// Session is the stored state of one suggestion store
type Session struct {
	SessionID   string                    `json:"sessionId"`
	State       string                    `json:"state"`
	Suggestions []entities.Suggestion     `json:"suggestions"`
	ContextHash string                    `json:"contextHash"`
	Error       string                    `json:"error,omitempty"`
	LastResult  *entities.ExecutionResult `json:"lastResult,omitempty"`
	UpdatedAt   time.Time                 `json:"updatedAt"`

	SavedAt   time.Time `json:"savedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SaveInput contains the session to write and its lifetime
type SaveInput struct {
	Session *Session
	// Zero uses the repository default
	TTL time.Duration
}

// SaveOutput contains the session as written
type SaveOutput struct {
	Session *Session
}

// GetInput identifies a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the stored session
type GetOutput struct {
	Session *Session
}

// DeleteInput identifies a session to delete
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports whether a session was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository stores suggestion sessions
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
