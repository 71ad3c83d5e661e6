package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// PlayerEntity identifies the player to rpg-toolkit as a core.Entity
type PlayerEntity struct {
	ID string
}

var _ core.Entity = (*PlayerEntity)(nil)

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return "player"
}

// wrapPlayer converts a player id to a PlayerEntity
func wrapPlayer(id string) *PlayerEntity {
	return &PlayerEntity{ID: id}
}
