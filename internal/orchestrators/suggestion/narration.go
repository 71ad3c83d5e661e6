package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/interfacing/internal/engine"
	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/settings"
)

// ExecuteSuggestion rolls the check for a stored suggestion and narrates
// the outcome. An id that is not in the current list fails without
// touching the store.
func (o *orchestrator) ExecuteSuggestion(ctx context.Context, input *ExecuteSuggestionInput) (*ExecuteSuggestionOutput, error) {
	if input == nil || input.SuggestionID == "" {
		return nil, errors.InvalidArgument("suggestion ID is required")
	}

	sug, ok := o.store.find(input.SuggestionID)
	if !ok {
		return nil, errors.NotFound("Suggestion not found").WithMeta("suggestion_id", input.SuggestionID)
	}

	cfg := o.settings.Get()
	prior := o.store.beginExecuting(ctx, sug)

	check, err := o.rollCheck(ctx, sug)
	if err != nil {
		o.store.abortExecuting(ctx, prior)
		slog.Error("Skill check failed",
			"session_id", o.store.session.id,
			"suggestion_id", sug.ID,
			"skill", sug.Skill,
			"error", err,
		)
		return nil, err
	}

	roll := ClassifyRoll(sug, check)
	resultType := entities.ResultTypeFor(roll)
	text := o.narrate(ctx, sug, roll, resultType, cfg)

	result := &entities.ExecutionResult{
		Suggestion:  sug,
		Roll:        roll,
		ResultType:  resultType,
		ResultText:  text,
		CompletedAt: o.clock.Now(),
	}

	if cfg.CopyToClipboard && text != "" {
		if err := o.clipboard.WriteText(text); err != nil {
			slog.Warn("Failed to copy result to clipboard",
				"session_id", o.store.session.id,
				"error", err,
			)
		}
	}

	o.store.finishExecuting(ctx, result)
	o.metrics.recordExecution(resultType)

	slog.Info("Suggestion executed",
		"session_id", o.store.session.id,
		"suggestion_id", sug.ID,
		"skill", sug.Skill,
		"roll", roll.Roll,
		"total", roll.Total,
		"dc", roll.DC,
		"result", resultType,
	)

	copied := *result
	return &ExecuteSuggestionOutput{Result: &copied}, nil
}

func (o *orchestrator) rollCheck(ctx context.Context, sug entities.Suggestion) (*engine.CheckResult, error) {
	out, err := o.engine.RollCheck(ctx, &engine.RollCheckInput{
		SkillID: sug.Skill,
		DC:      sug.DC,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "Roll failed")
	}
	if out == nil || out.Check == nil {
		return nil, errors.Unavailable("Roll failed").WithMeta("skill", sug.Skill)
	}
	return out.Check, nil
}

// ClassifyRoll flags criticals from the dice faces. Double sixes or the
// highest possible total is a critical success; double ones or the lowest
// is a critical failure.
func ClassifyRoll(sug entities.Suggestion, c *engine.CheckResult) entities.RollResult {
	return entities.RollResult{
		Roll:              c.Roll,
		Total:             c.Total,
		DC:                sug.DC,
		Success:           c.Success,
		IsCriticalSuccess: c.IsBoxcars || c.Roll == c.MaxRoll(),
		IsCriticalFailure: c.IsSnakeEyes || c.Roll == c.MinRoll(),
	}
}

// FallbackNarration is the canned text used when the backend gives
// nothing usable
func FallbackNarration(sug entities.Suggestion, success bool) string {
	action := strings.ToLower(sug.ShortText)
	if success {
		return fmt.Sprintf("You attempt to %s. It works.", action)
	}
	return fmt.Sprintf("You attempt to %s. It doesn't go as planned.", action)
}

// narrate asks the backend for outcome prose and falls back to canned
// text on any failure
func (o *orchestrator) narrate(ctx context.Context, sug entities.Suggestion, roll entities.RollResult, rt entities.ResultType, cfg settings.Settings) string {
	prompt := BuildResultPrompt(ResultPromptInput{
		Suggestion: sug,
		Roll:       roll,
		ResultType: rt,
		Transcript: GatherContext(o.conversation, cfg.ContextMessages),
	})

	out, err := o.engine.Generate(ctx, &engine.GenerateInput{
		Prompt:      prompt,
		MaxTokens:   NarrateMaxTokens,
		Temperature: NarrateTemperature,
	})
	if err == nil && out != nil {
		if text := strings.TrimSpace(out.Text); text != "" {
			return text
		}
	}

	o.metrics.recordFallback()
	slog.Warn("Using fallback narration",
		"session_id", o.store.session.id,
		"suggestion_id", sug.ID,
		"error", err,
	)
	return FallbackNarration(sug, roll.Success)
}
