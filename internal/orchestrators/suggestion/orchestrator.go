// Package suggestion implements the suggestion orchestrator: it gathers the
// recent scene, asks the generation backend for skill-voiced action options,
// keeps them in a cached store and executes the one the player picks.
package suggestion

//go:generate mockgen -destination=mock/mock_service.go -package=suggestionmock github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion Service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/interfacing/internal/clipboard"
	"github.com/KirkDiggler/interfacing/internal/engine"
	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/host"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
	"github.com/KirkDiggler/interfacing/internal/settings"
	"github.com/KirkDiggler/interfacing/internal/skills"
)

// Generation parameters
const (
	GenerateMaxTokens   = 1000
	GenerateTemperature = 0.8
	NarrateMaxTokens    = 200
	NarrateTemperature  = 0.7
)

// Modes recorded on generation metrics
const (
	modeFree   = "free"
	modeIntent = "intent"
)

// Service defines the interface for suggestion operations
type Service interface {
	// Generation
	GenerateSuggestions(ctx context.Context, input *GenerateSuggestionsInput) (*GenerateSuggestionsOutput, error)
	HandleNewMessage(ctx context.Context) (*HandleNewMessageOutput, error)
	ClearSuggestions(ctx context.Context)

	// Execution
	ExecuteSuggestion(ctx context.Context, input *ExecuteSuggestionInput) (*ExecuteSuggestionOutput, error)
	Dismiss(ctx context.Context)
	Reset(ctx context.Context)

	// Store reads
	State() State
	Suggestions() []entities.Suggestion
	ContextHash() string
	Error() string
	IsGenerating() bool
	PendingRoll() *entities.PendingRoll
	LastResult() *entities.ExecutionResult

	// Persistence
	Snapshot() *Snapshot
	Restore(ctx context.Context, snap *Snapshot) error

	// Events
	Subscribe(eventType EventType, listener Listener) string
	Unsubscribe(id string) error
}

// Config holds the dependencies for the suggestion orchestrator
type Config struct {
	Engine   engine.Engine
	Status   host.Status
	Settings settings.Provider

	// Optional
	Conversation host.Conversation
	Registry     *skills.Registry
	Clipboard    clipboard.Writer
	Clock        clock.Clock
	Rand         Rand
	EventBus     events.EventBus
	Metrics      *Metrics
	SessionID    string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Status == nil {
		vb.RequiredField("Status")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}

	return vb.Build()
}

// globalRand draws from the auto-seeded math/rand/v2 source
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

type orchestrator struct {
	engine       engine.Engine
	status       host.Status
	settings     settings.Provider
	conversation host.Conversation
	registry     *skills.Registry
	clipboard    clipboard.Writer
	clock        clock.Clock
	parser       *Parser
	metrics      *Metrics
	store        *store

	randMu sync.Mutex
	rand   Rand
}

// NewOrchestrator creates a new suggestion orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		engine:       cfg.Engine,
		status:       cfg.Status,
		settings:     cfg.Settings,
		conversation: cfg.Conversation,
		registry:     cfg.Registry,
		clipboard:    cfg.Clipboard,
		clock:        cfg.Clock,
		rand:         cfg.Rand,
		metrics:      cfg.Metrics,
	}
	if o.registry == nil {
		o.registry = skills.Default()
	}
	if o.clipboard == nil {
		o.clipboard = clipboard.Discard{}
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.rand == nil {
		o.rand = globalRand{}
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	o.parser = NewParser(o.registry, o.clock)
	o.store = newStore(cfg.SessionID, bus, o.clock)

	return o, nil
}

// GenerateSuggestions runs one generation round. An unforced round whose
// context hash matches the stored list returns that list without calling
// the backend. Failures put the store in the error state and leave the
// previous list in place.
func (o *orchestrator) GenerateSuggestions(ctx context.Context, input *GenerateSuggestionsInput) (*GenerateSuggestionsOutput, error) {
	if input == nil {
		input = &GenerateSuggestionsInput{}
	}

	cfg, err := o.effectiveSettings(input)
	if err != nil {
		return nil, err
	}

	intent := strings.TrimSpace(input.Intent)
	mode := modeFree

	var prompt, hash string
	if intent != "" {
		mode = modeIntent
		p := o.buildIntentPrompt(ctx, intent, cfg)
		prompt, hash = p.Prompt, p.ContextHash
	} else {
		p := o.buildGenerationPrompt(ctx, cfg)
		prompt, hash = p.Prompt, p.ContextHash
	}

	if !input.Force {
		if list, ok := o.store.cached(hash); ok {
			o.metrics.recordGeneration(mode, outcomeCached)
			slog.Debug("Reusing cached suggestions",
				"session_id", o.store.session.id,
				"context_hash", hash,
				"count", len(list),
			)
			return &GenerateSuggestionsOutput{
				Suggestions: list,
				ContextHash: hash,
				Cached:      true,
			}, nil
		}
	}

	if !o.store.beginGenerating(ctx) {
		return nil, errors.FailedPrecondition("suggestion generation already in progress")
	}

	list, err := o.generate(ctx, prompt)
	if err != nil {
		o.metrics.recordGeneration(mode, outcomeFailed)
		o.store.failGenerating(ctx, errors.GetMessage(err))
		slog.Error("Suggestion generation failed",
			"session_id", o.store.session.id,
			"mode", mode,
			"error", err,
		)
		return nil, err
	}

	o.store.finishGenerating(ctx, list, hash)
	o.metrics.recordGeneration(mode, outcomeGenerated)

	slog.Info("Suggestions generated",
		"session_id", o.store.session.id,
		"mode", mode,
		"count", len(list),
		"context_hash", hash,
	)

	return &GenerateSuggestionsOutput{
		Suggestions: append([]entities.Suggestion(nil), list...),
		ContextHash: hash,
	}, nil
}

func (o *orchestrator) generate(ctx context.Context, prompt string) ([]entities.Suggestion, error) {
	if !o.engine.IsReady() {
		return nil, errors.Unavailable("skill engine not connected")
	}
	if !o.engine.IsAPIConfigured() {
		return nil, errors.Unavailable("generation API not configured")
	}

	out, err := o.engine.Generate(ctx, &engine.GenerateInput{
		Prompt:      prompt,
		MaxTokens:   GenerateMaxTokens,
		Temperature: GenerateTemperature,
	})
	if err != nil {
		return nil, backendError(err, "generation failed: "+errors.GetMessage(err))
	}
	if out == nil || strings.TrimSpace(out.Text) == "" {
		return nil, errors.Internal("empty response from generation API")
	}

	parsed := o.parser.Parse(out.Text)
	o.metrics.recordParsed(len(parsed.Suggestions))
	if len(parsed.Suggestions) == 0 {
		return nil, errors.FailedPrecondition("no valid suggestions in response").
			WithMeta("parse_failure", string(parsed.Failure))
	}
	if parsed.Dropped > 0 {
		slog.Debug("Dropped unusable suggestions",
			"session_id", o.store.session.id,
			"dropped", parsed.Dropped,
		)
	}

	return parsed.Suggestions, nil
}

// backendError keeps the code of coded errors and classifies the rest
func backendError(err error, message string) error {
	var coded *errors.Error
	if errors.As(err, &coded) {
		return errors.Wrap(err, message)
	}
	return errors.FromContext(err, message)
}

// Number of skills offered to the model in each prompt. The intent prompt
// gets a wider roster since it asks for one approach per skill.
const (
	GenerationRosterSize = 6
	IntentRosterSize     = 8
)

// effectiveSettings overlays the round's overrides on the current settings
func (o *orchestrator) effectiveSettings(input *GenerateSuggestionsInput) (settings.Settings, error) {
	cfg := o.settings.Get()

	vb := errors.NewValidationBuilder()
	if input.SuggestionCount != 0 {
		errors.ValidateMin("SuggestionCount", input.SuggestionCount, 1, vb)
		cfg.SuggestionCount = input.SuggestionCount
	}
	if input.ContextMessages != 0 {
		errors.ValidateMin("ContextMessages", input.ContextMessages, 1, vb)
		cfg.ContextMessages = input.ContextMessages
	}
	if input.ChaosLevel != nil {
		errors.ValidateFloatRange("ChaosLevel", *input.ChaosLevel, 0, 1, vb)
		cfg.ChaosLevel = *input.ChaosLevel
	}
	if err := vb.Build(); err != nil {
		return settings.Settings{}, err
	}

	return cfg, nil
}

// buildGenerationPrompt gathers the scene and renders the free-form prompt
func (o *orchestrator) buildGenerationPrompt(ctx context.Context, cfg settings.Settings) GenerationPrompt {
	transcript := GatherContext(o.conversation, cfg.ContextMessages)
	voiced := o.voice(ctx, o.selectSkills(ctx, GenerationRosterSize))

	return GenerationPrompt{
		Prompt: BuildGenerationPrompt(GenerationPromptInput{
			Transcript:      transcript,
			Health:          o.status.Health(),
			Morale:          o.status.Morale(),
			Conditions:      o.status.Conditions(),
			Skills:          voiced,
			SuggestionCount: cfg.SuggestionCount,
			ChaosLevel:      cfg.ChaosLevel,
		}),
		ContextHash: transcript.Hash,
		Skills:      voiced,
	}
}

// buildIntentPrompt renders the prompt for a stated intent. Its cache key
// is namespaced by the intent so it never collides with free-form rounds.
func (o *orchestrator) buildIntentPrompt(ctx context.Context, intent string, cfg settings.Settings) IntentPrompt {
	transcript := GatherContext(o.conversation, cfg.ContextMessages)
	picked := o.selectSkills(ctx, IntentRosterSize)

	return IntentPrompt{
		Prompt: BuildIntentPrompt(IntentPromptInput{
			Intent:          intent,
			Transcript:      transcript,
			Skills:          o.voice(ctx, picked),
			SuggestionCount: cfg.SuggestionCount,
		}),
		ContextHash: transcript.Hash + "_" + intent,
		Intent:      intent,
		Skills:      picked,
	}
}

func (o *orchestrator) selectSkills(ctx context.Context, n int) []entities.Skill {
	o.randMu.Lock()
	defer o.randMu.Unlock()
	return SelectSkills(ctx, o.registry, o.engine, o.rand, n)
}

// voice attaches a profile to each skill, preferring the engine's own
func (o *orchestrator) voice(ctx context.Context, picked []entities.Skill) []entities.VoicedSkill {
	out := make([]entities.VoicedSkill, len(picked))
	for i, s := range picked {
		v := o.registry.Voice(s.ID)
		if ev := o.engine.GetSkillVoice(ctx, s.ID); ev != nil {
			v = *ev
		}
		out[i] = entities.VoicedSkill{Skill: s, Voice: v}
	}
	return out
}

// HandleNewMessage invalidates the list for a new conversation turn and,
// in auto mode, regenerates it
func (o *orchestrator) HandleNewMessage(ctx context.Context) (*HandleNewMessageOutput, error) {
	o.store.clearSuggestions(ctx)

	if o.settings.Get().Mode != settings.ModeAuto {
		return &HandleNewMessageOutput{}, nil
	}

	gen, err := o.GenerateSuggestions(ctx, &GenerateSuggestionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate suggestions")
	}

	return &HandleNewMessageOutput{Regenerated: true, Generation: gen}, nil
}

// ClearSuggestions empties the list and its cache key
func (o *orchestrator) ClearSuggestions(ctx context.Context) {
	o.store.clearSuggestions(ctx)
}

// Dismiss closes out the last result and any pending roll
func (o *orchestrator) Dismiss(ctx context.Context) {
	o.store.dismiss(ctx)
}

// Reset returns the store to its initial state
func (o *orchestrator) Reset(ctx context.Context) {
	o.store.reset(ctx)
	slog.Info("Suggestion store reset", "session_id", o.store.session.id)
}

func (o *orchestrator) State() State {
	state, _, _, _, _ := o.store.view()
	return state
}

func (o *orchestrator) Suggestions() []entities.Suggestion {
	_, list, _, _, _ := o.store.view()
	return list
}

func (o *orchestrator) ContextHash() string {
	_, _, hash, _, _ := o.store.view()
	return hash
}

func (o *orchestrator) Error() string {
	_, _, _, msg, _ := o.store.view()
	return msg
}

func (o *orchestrator) IsGenerating() bool {
	_, _, _, _, generating := o.store.view()
	return generating
}

func (o *orchestrator) PendingRoll() *entities.PendingRoll {
	return o.store.pendingRoll()
}

func (o *orchestrator) LastResult() *entities.ExecutionResult {
	return o.store.last()
}

func (o *orchestrator) Snapshot() *Snapshot {
	return o.store.snapshot()
}

// Restore replaces the store contents with snap
func (o *orchestrator) Restore(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if snap.SessionID != "" && o.store.session.id != "" && snap.SessionID != o.store.session.id {
		return errors.InvalidArgumentf("snapshot belongs to session %s", snap.SessionID)
	}

	o.store.restore(ctx, snap)
	return nil
}

func (o *orchestrator) Subscribe(eventType EventType, listener Listener) string {
	return o.store.subscribe(eventType, listener)
}

func (o *orchestrator) Unsubscribe(id string) error {
	return o.store.unsubscribe(id)
}
