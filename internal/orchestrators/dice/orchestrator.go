// Package dice implements the dice orchestrator: free-form rolls and 2d6
// skill checks, with each entity's roll history kept in a session
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/interfacing/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
	"github.com/KirkDiggler/interfacing/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/interfacing/internal/repositories/dice_session"
)

const (
	// Session contexts
	ContextSkillChecks = "skill_checks"
	ContextFreeRolls   = "free_rolls"

	// Default TTL for dice sessions
	DefaultSessionTTL = 2 * time.Hour

	// Skill checks are two six-sided dice
	CheckDiceCount = 2
	CheckDieSize   = 6
	CheckNotation  = "2d6"

	// Upper bounds on free-form notation
	maxDiceCount = 100
	maxDieSize   = 1000
)

var (
	// Regex for parsing dice notation like "2d6", "1d20+3", "3d8-1"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)
)

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// Skill checks for executed suggestions
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator

	// Optional
	Roller dice.Roller
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	clock           clock.Clock
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          cfg.Roller,
		clock:           cfg.Clock,
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	return o, nil
}

// parseDiceNotation parses notation like "2d6+1" into count, size and modifier
func (o *orchestrator) parseDiceNotation(notation string) (count, size, modifier int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 4 {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > maxDiceCount || size > maxDieSize {
		return 0, 0, 0, errors.InvalidArgumentf("too many dice or sides: %s", notation)
	}

	return count, size, modifier, nil
}

// roll rolls count dice of size with the configured roller
func (o *orchestrator) roll(count, size int) ([]int, int, error) {
	faces, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}

	total := 0
	for _, f := range faces {
		total += f
	}
	return faces, total, nil
}

// record appends roll to the entity's session, creating it on first use
func (o *orchestrator) record(ctx context.Context, entityID, sessionContext string, roll dicesession.DiceRoll, ttl time.Duration) (*dicesession.DiceSession, error) {
	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: entityID,
		Context:  sessionContext,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		if ttl == 0 {
			ttl = DefaultSessionTTL
		}

		createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			EntityID: entityID,
			Context:  sessionContext,
			Rolls:    []dicesession.DiceRoll{roll},
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		return createOutput.Session, nil
	}

	session := getOutput.Session
	session.Rolls = append(session.Rolls, roll)
	if err := o.diceSessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update dice session")
	}
	return session, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}
	sessionContext := input.Context
	if sessionContext == "" {
		sessionContext = ContextFreeRolls
	}

	count, size, modifier, err := o.parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	faces, diceTotal, err := o.roll(count, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    input.Notation,
		Dice:        faces,
		DiceTotal:   diceTotal,
		Modifier:    modifier,
		Total:       diceTotal + modifier,
		Description: input.Description,
		RolledAt:    o.clock.Now(),
	}

	session, err := o.record(ctx, input.EntityID, sessionContext, roll, input.TTL)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", sessionContext,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    &roll,
		Session: session,
	}, nil
}

// RollCheck rolls 2d6 plus the modifier against the DC. Boxcars and snake
// eyes are reported from the faces, independent of success.
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.SkillID == "" {
		return nil, errors.InvalidArgument("skill ID is required")
	}

	faces, diceTotal, err := o.roll(CheckDiceCount, CheckDieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll skill check")
	}

	total := diceTotal + input.Modifier
	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    CheckNotation,
		Dice:        faces,
		DiceTotal:   diceTotal,
		Modifier:    input.Modifier,
		Total:       total,
		Description: fmt.Sprintf("%s vs DC %d", input.SkillID, input.DC),
		SkillID:     input.SkillID,
		DC:          input.DC,
		Success:     total >= input.DC,
		RolledAt:    o.clock.Now(),
	}

	// History is best effort; a storage outage must not block the check
	if _, err := o.record(ctx, input.EntityID, ContextSkillChecks, roll, 0); err != nil {
		slog.Warn("Failed to record skill check",
			"entity_id", input.EntityID,
			"skill_id", input.SkillID,
			"error", err,
		)
	}

	out := &RollCheckOutput{
		Roll:        &roll,
		Success:     roll.Success,
		IsBoxcars:   allFaces(faces, CheckDieSize),
		IsSnakeEyes: allFaces(faces, 1),
		DiceCount:   CheckDiceCount,
		DieSize:     CheckDieSize,
	}

	slog.Info("Skill check rolled",
		"entity_id", input.EntityID,
		"skill_id", input.SkillID,
		"dice", faces,
		"total", total,
		"dc", input.DC,
		"success", out.Success,
	)

	return out, nil
}

func allFaces(faces []int, v int) bool {
	if len(faces) == 0 {
		return false
	}
	for _, f := range faces {
		if f != v {
			return false
		}
	}
	return true
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}
