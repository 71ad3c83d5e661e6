package suggestion

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
)

// sessionEntityType tags store events on the bus
const sessionEntityType = "suggestion_session"

// sessionEntity is the event source for one store
type sessionEntity struct {
	id string
}

func (s sessionEntity) GetID() string   { return s.id }
func (s sessionEntity) GetType() string { return sessionEntityType }

var _ core.Entity = sessionEntity{}

// store holds the suggestion list and its lifecycle state. Every field is
// guarded by mu; events are published after mu is released so listeners
// can read the store.
type store struct {
	mu          sync.Mutex
	session     sessionEntity
	state       State
	suggestions []entities.Suggestion
	contextHash string
	errMsg      string
	generating  bool
	pending     *entities.PendingRoll
	lastResult  *entities.ExecutionResult
	updatedAt   time.Time

	bus   events.EventBus
	clock clock.Clock
	subs  map[string]struct{}
}

func newStore(sessionID string, bus events.EventBus, clk clock.Clock) *store {
	return &store{
		session: sessionEntity{id: sessionID},
		state:   StateIdle,
		bus:     bus,
		clock:   clk,
		subs:    make(map[string]struct{}),
	}
}

// mutate applies fn under the lock and then publishes the returned events
func (s *store) mutate(ctx context.Context, fn func() []EventType) {
	s.mu.Lock()
	emitted := fn()
	if len(emitted) > 0 {
		s.updatedAt = s.clock.Now()
	}
	s.mu.Unlock()

	for _, t := range emitted {
		s.publish(ctx, t)
	}
}

func (s *store) publish(ctx context.Context, t EventType) {
	if err := s.bus.Publish(ctx, events.NewGameEvent(string(t), s.session, nil)); err != nil {
		slog.Warn("Failed to publish suggestion event",
			"session_id", s.session.id,
			"event", t,
			"error", err)
	}
}

func (s *store) subscribe(t EventType, l Listener) string {
	sessionID := s.session.id
	id := s.bus.SubscribeFunc(string(t), 0, func(_ context.Context, e events.Event) error {
		// the bus may be shared between sessions
		src := e.Source()
		if src == nil || src.GetType() != sessionEntityType || src.GetID() != sessionID {
			return nil
		}
		l(Event{Type: EventType(e.Type()), SessionID: src.GetID()})
		return nil
	})

	s.mu.Lock()
	s.subs[id] = struct{}{}
	s.mu.Unlock()
	return id
}

func (s *store) unsubscribe(id string) error {
	s.mu.Lock()
	_, ok := s.subs[id]
	delete(s.subs, id)
	s.mu.Unlock()

	if !ok {
		return errors.NotFoundf("subscription %s not found", id)
	}
	if err := s.bus.Unsubscribe(id); err != nil {
		return errors.Wrapf(err, "failed to unsubscribe %s", id)
	}
	return nil
}

// beginGenerating flips the generating flag and clears the error. It
// reports false when a round is already in flight.
func (s *store) beginGenerating(ctx context.Context) bool {
	started := false
	s.mutate(ctx, func() []EventType {
		if s.generating {
			return nil
		}
		started = true
		s.generating = true
		s.state = StateGenerating
		s.errMsg = ""
		return []EventType{EventGeneratingChanged}
	})
	return started
}

func (s *store) finishGenerating(ctx context.Context, list []entities.Suggestion, hash string) {
	s.mutate(ctx, func() []EventType {
		s.generating = false
		s.suggestions = list
		s.contextHash = hash
		s.state = StateReady
		return []EventType{EventSuggestionsUpdated, EventGeneratingChanged}
	})
}

// failGenerating records msg without touching the list or its hash
func (s *store) failGenerating(ctx context.Context, msg string) {
	s.mutate(ctx, func() []EventType {
		s.generating = false
		s.errMsg = msg
		s.state = StateError
		return []EventType{EventError, EventGeneratingChanged}
	})
}

// cached returns the current list when hash matches the stored key
func (s *store) cached(hash string) ([]entities.Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contextHash == "" || s.contextHash != hash || len(s.suggestions) == 0 {
		return nil, false
	}
	return slices.Clone(s.suggestions), true
}

func (s *store) find(id string) (entities.Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sug := range s.suggestions {
		if sug.ID == id {
			return sug, true
		}
	}
	return entities.Suggestion{}, false
}

// beginExecuting marks sug as pending, drops the previous result and returns the state to restore if
// the check cannot be made
func (s *store) beginExecuting(ctx context.Context, sug entities.Suggestion) State {
	var prior State
	s.mutate(ctx, func() []EventType {
		prior = s.state
		s.pending = &entities.PendingRoll{Suggestion: sug, StartedAt: s.clock.Now()}
		s.lastResult = nil
		s.state = StateExecuting
		return []EventType{EventRollStarted}
	})
	return prior
}

func (s *store) abortExecuting(ctx context.Context, prior State) {
	s.mutate(ctx, func() []EventType {
		s.pending = nil
		if s.state == StateExecuting {
			s.state = prior
		}
		return []EventType{EventRollCompleted}
	})
}

func (s *store) finishExecuting(ctx context.Context, result *entities.ExecutionResult) {
	s.mutate(ctx, func() []EventType {
		s.pending = nil
		s.lastResult = result
		if s.state == StateExecuting {
			s.state = StateIdle
		}
		return []EventType{EventRollCompleted}
	})
}

func (s *store) clearSuggestions(ctx context.Context) {
	s.mutate(ctx, func() []EventType {
		s.suggestions = nil
		s.contextHash = ""
		if s.state == StateReady || s.state == StateError {
			s.state = StateIdle
		}
		return []EventType{EventSuggestionsUpdated}
	})
}

func (s *store) dismiss(ctx context.Context) {
	s.mutate(ctx, func() []EventType {
		s.pending = nil
		s.lastResult = nil
		if !s.generating {
			s.state = StateIdle
		}
		return []EventType{EventDismissed}
	})
}

func (s *store) reset(ctx context.Context) {
	s.mutate(ctx, func() []EventType {
		s.state = StateIdle
		s.suggestions = nil
		s.contextHash = ""
		s.errMsg = ""
		s.generating = false
		s.pending = nil
		s.lastResult = nil
		return []EventType{EventReset}
	})
}

func (s *store) snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		SessionID:   s.session.id,
		State:       s.state,
		Suggestions: slices.Clone(s.suggestions),
		ContextHash: s.contextHash,
		Error:       s.errMsg,
		UpdatedAt:   s.updatedAt,
	}
	if s.lastResult != nil {
		r := *s.lastResult
		snap.LastResult = &r
	}
	return snap
}

// restore loads snap. In-flight states cannot survive a restart, so
// generating and executing come back settled.
func (s *store) restore(ctx context.Context, snap *Snapshot) {
	s.mutate(ctx, func() []EventType {
		s.suggestions = slices.Clone(snap.Suggestions)
		s.contextHash = snap.ContextHash
		s.errMsg = snap.Error
		s.generating = false
		s.pending = nil
		s.lastResult = nil
		if snap.LastResult != nil {
			r := *snap.LastResult
			s.lastResult = &r
		}

		switch snap.State {
		case StateGenerating, StateExecuting:
			if len(s.suggestions) > 0 {
				s.state = StateReady
			} else {
				s.state = StateIdle
			}
		case "":
			s.state = StateIdle
		default:
			s.state = snap.State
		}
		return []EventType{EventSuggestionsUpdated}
	})
}

func (s *store) view() (State, []entities.Suggestion, string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, slices.Clone(s.suggestions), s.contextHash, s.errMsg, s.generating
}

func (s *store) pendingRoll() *entities.PendingRoll {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	p := *s.pending
	return &p
}

func (s *store) last() *entities.ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastResult == nil {
		return nil
	}
	r := *s.lastResult
	return &r
}
