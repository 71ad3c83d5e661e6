// Package entities provides core data structures for interfacing.
package entities

// Attribute is one of the four attribute groups a skill belongs to
type Attribute string

// Attribute groups
const (
	AttributeIntellect Attribute = "INTELLECT"
	AttributePsyche    Attribute = "PSYCHE"
	AttributePhysique  Attribute = "PHYSIQUE"
	AttributeMotorics  Attribute = "MOTORICS"
)

// Skill is a registry skill paired with the level the skill engine reports
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Attribute Attribute `json:"attribute"`
	Level     int       `json:"level"`
}

// SkillVoice is the personality profile used to voice a skill in prompts
type SkillVoice struct {
	Personality   string   `json:"personality" yaml:"personality"`
	SpeakingStyle string   `json:"speakingStyle" yaml:"speaking_style"`
	Concerns      []string `json:"concerns,omitempty" yaml:"concerns"`
	Quirks        []string `json:"quirks,omitempty" yaml:"quirks"`
}

// VoicedSkill is a selected skill with its resolved voice profile
type VoicedSkill struct {
	Skill
	Voice SkillVoice `json:"voice"`
}
