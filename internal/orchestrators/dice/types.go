package dice

import (
	"time"

	dicesession "github.com/KirkDiggler/interfacing/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollCheckInput defines a skill check against a DC
type RollCheckInput struct {
	EntityID string
	SkillID  string
	DC       int
	// Modifier is added to the dice total, usually the skill level
	Modifier int
}

// RollCheckOutput is the check outcome and the roll as stored
type RollCheckOutput struct {
	Roll        *dicesession.DiceRoll
	Success     bool
	IsBoxcars   bool
	IsSnakeEyes bool
	DiceCount   int
	DieSize     int
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}
