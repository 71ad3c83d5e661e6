// Package engine defines the skill engine bridge the suggestion pipeline
// talks to: skill levels, voice overrides, text generation and checks.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/interfacing/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

// Engine provides skill levels, text generation and skill checks
type Engine interface {
	// Readiness
	IsReady() bool
	IsAPIConfigured() bool

	// Skill data
	GetEffectiveSkillLevel(ctx context.Context, skillID string) int
	GetSkillVoice(ctx context.Context, skillID string) *entities.SkillVoice

	// Generation and checks
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}
