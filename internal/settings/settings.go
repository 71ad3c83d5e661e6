// Package settings holds the user-tunable suggestion settings
package settings

import (
	"sync"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

// Mode controls whether suggestions regenerate on new messages
type Mode string

// Modes
const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
)

// Limits
const (
	MinSuggestionCount = 3
	MaxSuggestionCount = 5
)

// Settings are the suggestion panel settings
type Settings struct {
	Mode              Mode    `json:"mode" yaml:"mode"`
	SuggestionCount   int     `json:"suggestionCount" yaml:"suggestion_count"`
	ChaosLevel        float64 `json:"chaosLevel" yaml:"chaos_level"`
	ContextMessages   int     `json:"contextMessages" yaml:"context_messages"`
	CopyToClipboard   bool    `json:"copyToClipboard" yaml:"copy_to_clipboard"`
	AutoCloseOnSelect bool    `json:"autoCloseOnSelect" yaml:"auto_close_on_select"`
	ShowResultInPanel bool    `json:"showResultInPanel" yaml:"show_result_in_panel"`
}

// Defaults returns the out-of-the-box settings
func Defaults() Settings {
	return Settings{
		Mode:              ModeManual,
		SuggestionCount:   4,
		ChaosLevel:        0.5,
		ContextMessages:   5,
		CopyToClipboard:   true,
		AutoCloseOnSelect: false,
		ShowResultInPanel: true,
	}
}

// Validate checks every field against its allowed range
func (s Settings) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Mode", string(s.Mode), []string{string(ModeAuto), string(ModeManual)}, vb)
	errors.ValidateRange("SuggestionCount", s.SuggestionCount, MinSuggestionCount, MaxSuggestionCount, vb)
	errors.ValidateFloatRange("ChaosLevel", s.ChaosLevel, 0, 1, vb)
	errors.ValidateMin("ContextMessages", s.ContextMessages, 1, vb)
	return vb.Build()
}

// Partial is a settings update; nil fields are left unchanged
type Partial struct {
	Mode              *Mode
	SuggestionCount   *int
	ChaosLevel        *float64
	ContextMessages   *int
	CopyToClipboard   *bool
	AutoCloseOnSelect *bool
	ShowResultInPanel *bool
}

// Apply returns s with the non-nil fields of p
func (s Settings) Apply(p Partial) Settings {
	if p.Mode != nil {
		s.Mode = *p.Mode
	}
	if p.SuggestionCount != nil {
		s.SuggestionCount = *p.SuggestionCount
	}
	if p.ChaosLevel != nil {
		s.ChaosLevel = *p.ChaosLevel
	}
	if p.ContextMessages != nil {
		s.ContextMessages = *p.ContextMessages
	}
	if p.CopyToClipboard != nil {
		s.CopyToClipboard = *p.CopyToClipboard
	}
	if p.AutoCloseOnSelect != nil {
		s.AutoCloseOnSelect = *p.AutoCloseOnSelect
	}
	if p.ShowResultInPanel != nil {
		s.ShowResultInPanel = *p.ShowResultInPanel
	}
	return s
}

// Provider supplies the current settings
type Provider interface {
	Get() Settings
}

// Store is a Provider that also accepts updates
type Store interface {
	Provider
	Update(p Partial) (Settings, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates an in-memory store seeded with initial, which must be valid
func NewStore(initial Settings) (Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return &memoryStore{settings: initial}, nil
}

// Get returns a copy of the current settings
func (m *memoryStore) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Update applies p. An invalid result is rejected and nothing changes.
func (m *memoryStore) Update(p Partial) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.settings.Apply(p)
	if err := next.Validate(); err != nil {
		return m.settings, err
	}
	m.settings = next
	return next, nil
}
