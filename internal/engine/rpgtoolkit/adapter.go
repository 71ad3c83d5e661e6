// Package rpgtoolkit provides a standalone implementation of the engine
// interface: skill data from the scene, generation through an llm.Client and
// checks through the rpg-toolkit backed dice orchestrator.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/interfacing/internal/engine"
	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/llm"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/dice"
)

// Event types published on the bus
const (
	EventCheckRolled    = "skill_check.rolled"
	EventTextGenerated  = "generation.completed"
	DefaultPlayerEntity = "player"
)

// SkillSource provides per-skill levels and voice overrides. host.Scene
// satisfies it.
type SkillSource interface {
	SkillLevel(skillID string) int
	SkillVoice(skillID string) *entities.SkillVoice
}

// Adapter implements the engine.Engine interface without the host extension
type Adapter struct {
	eventBus events.EventBus
	dice     dice.Service
	llm      llm.Client
	skills   SkillSource
	player   *PlayerEntity
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	Dice   dice.Service
	Skills SkillSource

	// Optional. A nil LLM leaves the engine ready but reporting no API.
	LLM      llm.Client
	EventBus events.EventBus
	PlayerID string
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.Skills == nil {
		vb.RequiredField("Skills")
	}

	return vb.Build()
}

// NewAdapter creates a new standalone engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	playerID := cfg.PlayerID
	if playerID == "" {
		playerID = DefaultPlayerEntity
	}

	return &Adapter{
		eventBus: cfg.EventBus,
		dice:     cfg.Dice,
		llm:      cfg.LLM,
		skills:   cfg.Skills,
		player:   wrapPlayer(playerID),
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// IsReady reports whether checks and skill data are available
func (a *Adapter) IsReady() bool {
	return a.dice != nil && a.skills != nil
}

// IsAPIConfigured reports whether a generation backend is attached
func (a *Adapter) IsAPIConfigured() bool {
	return a.llm != nil && a.llm.Provider() != llm.ProviderNone
}

// GetEffectiveSkillLevel returns the scene's level for the skill
func (a *Adapter) GetEffectiveSkillLevel(_ context.Context, skillID string) int {
	return a.skills.SkillLevel(skillID)
}

// GetSkillVoice returns the scene's voice override, or nil to use the registry
func (a *Adapter) GetSkillVoice(_ context.Context, skillID string) *entities.SkillVoice {
	return a.skills.SkillVoice(skillID)
}

// Generate sends the prompt to the configured llm.Client
func (a *Adapter) Generate(ctx context.Context, input *engine.GenerateInput) (*engine.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !a.IsAPIConfigured() {
		return nil, errors.Unavailable("generation API not configured")
	}

	resp, err := a.llm.Generate(ctx, &llm.Request{
		Prompt:      input.Prompt,
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "generation request failed")
	}
	if resp == nil {
		return &engine.GenerateOutput{}, nil
	}

	slog.Debug("Text generated",
		"provider", a.llm.Provider(),
		"model", resp.Model,
		"prompt_tokens", resp.PromptTokens,
		"completion_tokens", resp.CompletionTokens,
		"usage_estimated", resp.UsageEstimated,
	)
	a.publish(ctx, EventTextGenerated)

	return &engine.GenerateOutput{Text: resp.Text}, nil
}

// RollCheck rolls 2d6 plus the skill level against the DC
func (a *Adapter) RollCheck(ctx context.Context, input *engine.RollCheckInput) (*engine.RollCheckOutput, error) {
	if input == nil || strings.TrimSpace(input.SkillID) == "" {
		return nil, errors.InvalidArgument("skill ID is required")
	}

	level := a.skills.SkillLevel(input.SkillID)
	if level <= 0 {
		level = 1
	}

	out, err := a.dice.RollCheck(ctx, &dice.RollCheckInput{
		EntityID: a.player.GetID(),
		SkillID:  input.SkillID,
		DC:       input.DC,
		Modifier: level,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s check", input.SkillID)
	}
	if out == nil || out.Roll == nil {
		return &engine.RollCheckOutput{}, nil
	}

	a.publish(ctx, EventCheckRolled)

	return &engine.RollCheckOutput{
		Check: &engine.CheckResult{
			Roll:        out.Roll.DiceTotal,
			Modifier:    out.Roll.Modifier,
			Total:       out.Roll.Total,
			DC:          out.Roll.DC,
			Success:     out.Success,
			IsBoxcars:   out.IsBoxcars,
			IsSnakeEyes: out.IsSnakeEyes,
			DiceCount:   out.DiceCount,
			DieSize:     out.DieSize,
		},
	}, nil
}

func (a *Adapter) publish(ctx context.Context, eventType string) {
	if a.eventBus == nil {
		return
	}
	if err := a.eventBus.Publish(ctx, events.NewGameEvent(eventType, a.player, nil)); err != nil {
		slog.Warn("Failed to publish engine event",
			"event_type", eventType,
			"error", err,
		)
	}
}
