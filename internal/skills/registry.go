// Package skills holds the static skill table: ids, display names,
// attribute groups and fallback voice profiles.
package skills

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
)

//go:embed skills.yaml
var defaultTable []byte

// GenericVoice is used when neither the skill engine nor the table has a profile
var GenericVoice = entities.SkillVoice{
	Personality:   "A voice in your head",
	SpeakingStyle: "Direct and clear",
	Concerns:      []string{"helping you"},
	Quirks:        []string{},
}

// Definition is one row of the skill table
type Definition struct {
	ID        string               `yaml:"id"`
	Name      string               `yaml:"name"`
	Attribute entities.Attribute   `yaml:"attribute"`
	Voice     *entities.SkillVoice `yaml:"voice"`
}

// AttributeInfo describes an attribute group
type AttributeInfo struct {
	ID    entities.Attribute `yaml:"id"`
	Name  string             `yaml:"name"`
	Color string             `yaml:"color"`
}

type table struct {
	Attributes []AttributeInfo `yaml:"attributes"`
	Skills     []Definition    `yaml:"skills"`
}

// Registry is a read-only, ordered skill table
type Registry struct {
	attributes map[entities.Attribute]AttributeInfo
	skills     []Definition
	byID       map[string]int
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded table
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(defaultTable)
		if err != nil {
			panic("skills: embedded table is invalid: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load parses a YAML skill table
func Load(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse skill table")
	}

	r := &Registry{
		attributes: make(map[entities.Attribute]AttributeInfo, len(t.Attributes)),
		skills:     make([]Definition, 0, len(t.Skills)),
		byID:       make(map[string]int, len(t.Skills)),
	}
	for _, a := range t.Attributes {
		r.attributes[a.ID] = a
	}

	vb := errors.NewValidationBuilder()
	for i, def := range t.Skills {
		switch {
		case def.ID == "":
			vb.Fieldf("skills", "entry %d has no id", i)
			continue
		case def.Name == "":
			vb.Fieldf(def.ID, "has no name")
		}
		if _, ok := r.attributes[def.Attribute]; !ok {
			vb.Fieldf(def.ID, "unknown attribute %q", def.Attribute)
		}
		if _, dup := r.byID[def.ID]; dup {
			vb.Fieldf(def.ID, "is defined twice")
			continue
		}
		r.byID[def.ID] = len(r.skills)
		r.skills = append(r.skills, def)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return r, nil
}

// All returns the skills in table order
func (r *Registry) All() []Definition {
	out := make([]Definition, len(r.skills))
	copy(out, r.skills)
	return out
}

// Get looks up a skill by id
func (r *Registry) Get(id string) (Definition, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Definition{}, false
	}
	return r.skills[i], true
}

// Attribute looks up an attribute group
func (r *Registry) Attribute(id entities.Attribute) (AttributeInfo, bool) {
	a, ok := r.attributes[id]
	return a, ok
}

// DisplayName returns the table name for id, or a title-cased form of
// the raw identifier for skills the table does not know.
func (r *Registry) DisplayName(id string) string {
	if def, ok := r.Get(id); ok {
		return def.Name
	}
	return FormatName(id)
}

// Voice returns the fallback voice profile for id
func (r *Registry) Voice(id string) entities.SkillVoice {
	if def, ok := r.Get(id); ok && def.Voice != nil {
		return *def.Voice
	}
	return GenericVoice
}

// FormatName converts snake_case to Title Case
func FormatName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
