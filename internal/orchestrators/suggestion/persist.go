package suggestion

import (
	suggestionsession "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session"
)

// ToRecord converts the snapshot to its stored form
func (s *Snapshot) ToRecord() *suggestionsession.Session {
	if s == nil {
		return nil
	}
	return &suggestionsession.Session{
		SessionID:   s.SessionID,
		State:       string(s.State),
		Suggestions: s.Suggestions,
		ContextHash: s.ContextHash,
		Error:       s.Error,
		LastResult:  s.LastResult,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SnapshotFromRecord converts a stored session back into a snapshot.
// Unknown states restore as idle.
func SnapshotFromRecord(rec *suggestionsession.Session) *Snapshot {
	if rec == nil {
		return nil
	}

	state := State(rec.State)
	switch state {
	case StateIdle, StateGenerating, StateReady, StateError, StateExecuting:
	default:
		state = StateIdle
	}

	return &Snapshot{
		SessionID:   rec.SessionID,
		State:       state,
		Suggestions: rec.Suggestions,
		ContextHash: rec.ContextHash,
		Error:       rec.Error,
		LastResult:  rec.LastResult,
		UpdatedAt:   rec.UpdatedAt,
	}
}
