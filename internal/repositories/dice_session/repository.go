// Package dicesession stores roll history grouped by session and context
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/interfacing/internal/repositories/dice_session Repository

// DiceSession is the roll history for one entity in one context
type DiceSession struct {
	// Owner of the rolls, usually a suggestion session id
	EntityID string `json:"entityId"`

	// Grouping such as "skill_checks" or "free_rolls"
	Context string `json:"context"`

	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DiceRoll is a single roll. Check fields are empty for free rolls.
type DiceRoll struct {
	RollID   string `json:"rollId"`
	Notation string `json:"notation"`

	// Individual faces
	Dice []int `json:"dice"`

	// Sum of the faces before the modifier
	DiceTotal int `json:"diceTotal"`
	Modifier  int `json:"modifier"`
	Total     int `json:"total"`

	Description string `json:"description,omitempty"`

	SkillID string `json:"skillId,omitempty"`
	DC      int    `json:"dc,omitempty"`
	Success bool   `json:"success,omitempty"`

	RolledAt time.Time `json:"rolledAt"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
