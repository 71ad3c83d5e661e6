package host

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
)

// SceneData is the on-disk shape of a scene file
type SceneData struct {
	SessionID   string                         `yaml:"session_id"`
	Messages    []entities.Message             `yaml:"messages"`
	Health      entities.Vital                 `yaml:"health"`
	Morale      entities.Vital                 `yaml:"morale"`
	Conditions  []entities.Condition           `yaml:"conditions"`
	SkillLevels map[string]int                 `yaml:"skill_levels"`
	Voices      map[string]entities.SkillVoice `yaml:"voices"`
}

// Scene is an in-memory conversation and player status
type Scene struct {
	mu   sync.RWMutex
	data SceneData
}

var (
	_ Conversation = (*Scene)(nil)
	_ Status       = (*Scene)(nil)
)

// NewScene wraps scene data
func NewScene(data SceneData) *Scene {
	return &Scene{data: data}
}

// LoadScene reads a YAML scene file
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("scene file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read scene file %s", path)
	}

	var data SceneData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse scene file")
	}

	return NewScene(data), nil
}

// Save writes the scene back to path
func (s *Scene) Save(path string) error {
	s.mu.RLock()
	raw, err := yaml.Marshal(&s.data)
	s.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "failed to marshal scene")
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write scene file %s", path)
	}
	return nil
}

// SessionID returns the scene's session identifier
func (s *Scene) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SessionID
}

// SetSessionID assigns the session identifier
func (s *Scene) SetSessionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SessionID = id
}

// RecentMessages returns up to n of the latest messages
func (s *Scene) RecentMessages(n int) []entities.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []entities.Message{}
	}
	start := len(s.data.Messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]entities.Message, len(s.data.Messages)-start)
	copy(out, s.data.Messages[start:])
	return out
}

// AppendMessage adds a message to the end of the transcript
func (s *Scene) AppendMessage(msg entities.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Messages = append(s.data.Messages, msg)
}

// Health returns the health vital
func (s *Scene) Health() entities.Vital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Health
}

// Morale returns the morale vital
func (s *Scene) Morale() entities.Vital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Morale
}

// Conditions returns the active conditions
func (s *Scene) Conditions() []entities.Condition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Condition, len(s.data.Conditions))
	copy(out, s.data.Conditions)
	return out
}

// SkillLevel returns the configured level for a skill, or 0 when unset
func (s *Scene) SkillLevel(skillID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SkillLevels[skillID]
}

// SkillVoice returns the scene's voice override for a skill, if any
func (s *Scene) SkillVoice(skillID string) *entities.SkillVoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data.Voices[skillID]
	if !ok {
		return nil
	}
	return &v
}
