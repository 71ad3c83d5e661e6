package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/interfacing/internal/clipboard"
	"github.com/KirkDiggler/interfacing/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/host"
	"github.com/KirkDiggler/interfacing/internal/llm"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/dice"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
	"github.com/KirkDiggler/interfacing/internal/pkg/idgen"
	"github.com/KirkDiggler/interfacing/internal/redis"
	dicesession "github.com/KirkDiggler/interfacing/internal/repositories/dice_session"
	suggestionsession "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session"
	"github.com/KirkDiggler/interfacing/internal/settings"
)

// app is one CLI invocation's wiring
type app struct {
	cfg         *Config
	scene       *host.Scene
	engine      *rpgtoolkit.Adapter
	dice        dice.Service
	suggestions suggestion.Service
	sessions    suggestionsession.Repository
	registry    *prometheus.Registry
	closers     []func()
}

// openRedis is swapped in tests
var openRedis = redis.Open

func newApp(ctx context.Context, cfg *Config) (_ *app, err error) {
	a := &app{cfg: cfg, registry: prometheus.NewRegistry()}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	scene, err := host.LoadScene(cfg.ScenePath)
	if err != nil {
		return nil, err
	}
	if scene.SessionID() == "" {
		scene.SetSessionID(idgen.NewUUID("chat").Generate())
		if err := scene.Save(cfg.ScenePath); err != nil {
			return nil, err
		}
	}
	a.scene = scene

	client, closeRedis, err := openRedis(cfg.RedisURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}
	a.closers = append(a.closers, closeRedis)

	clk := clock.New()

	rollRepo, err := dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, err
	}
	a.sessions, err = suggestionsession.NewRedisRepository(&suggestionsession.Config{
		Client:     client,
		Clock:      clk,
		DefaultTTL: cfg.SessionTTL,
	})
	if err != nil {
		return nil, err
	}

	a.dice, err = dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: rollRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		Clock:           clk,
	})
	if err != nil {
		return nil, err
	}

	var gen llm.Client
	provider := llm.Provider(strings.ToLower(cfg.LLMProvider))
	if provider != "" && provider != llm.ProviderNone {
		gen, err = llm.New(ctx, &llm.Config{
			Provider: provider,
			Model:    cfg.LLMModel,
			APIKey:   cfg.LLMAPIKey,
			BaseURL:  cfg.LLMBaseURL,
			Timeout:  cfg.LLMTimeout,
			Metrics:  llm.NewMetrics(a.registry),
		})
		if err != nil {
			return nil, err
		}
	}

	bus := events.NewBus()
	a.engine, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		Dice:     a.dice,
		Skills:   scene,
		LLM:      gen,
		EventBus: bus,
		PlayerID: scene.SessionID(),
	})
	if err != nil {
		return nil, err
	}

	store, err := settings.NewStore(cfg.Settings())
	if err != nil {
		return nil, err
	}

	var clip clipboard.Writer = clipboard.Discard{}
	if cfg.CopyToClipboard {
		clip = clipboard.NewSystem()
	}

	a.suggestions, err = suggestion.NewOrchestrator(&suggestion.Config{
		Engine:       a.engine,
		Status:       scene,
		Settings:     store,
		Conversation: scene,
		Clipboard:    clip,
		Clock:        clk,
		EventBus:     bus,
		Metrics:      suggestion.NewMetrics(a.registry),
		SessionID:    scene.SessionID(),
	})
	if err != nil {
		return nil, err
	}

	for _, t := range []suggestion.EventType{
		suggestion.EventSuggestionsUpdated,
		suggestion.EventGeneratingChanged,
		suggestion.EventError,
		suggestion.EventRollStarted,
		suggestion.EventRollCompleted,
	} {
		a.suggestions.Subscribe(t, func(e suggestion.Event) {
			slog.Debug("Suggestion event", "type", e.Type, "session_id", e.SessionID)
		})
	}

	return a, nil
}

// load restores the stored session, if any
func (a *app) load(ctx context.Context) error {
	out, err := a.sessions.Get(ctx, suggestionsession.GetInput{SessionID: a.scene.SessionID()})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return err
	}
	return a.suggestions.Restore(ctx, suggestion.SnapshotFromRecord(out.Session))
}

// save persists the store and writes metrics when configured
func (a *app) save(ctx context.Context) error {
	if _, err := a.sessions.Save(ctx, suggestionsession.SaveInput{
		Session: a.suggestions.Snapshot().ToRecord(),
	}); err != nil {
		return err
	}

	if a.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
			slog.Warn("Failed to write metrics", "path", a.cfg.MetricsFile, "error", err)
		}
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
