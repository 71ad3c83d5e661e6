package suggestion

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

// Tone guidance bands keyed on the chaos level
const (
	toneGrounded = "Focus on practical, sensible options. Keep suggestions grounded and useful."
	toneMixed    = "Mix practical options with some unexpected or creative suggestions. Balance helpful and chaotic."
	toneChaotic  = "Embrace chaos. Include unhinged, terrible ideas, self-destructive impulses, and suggestions that would make a sane person pause. At least one option should be gloriously ill-advised."
)

const generationInstructions = `Generate exactly %d suggestions. Each should:
1. Come from a DIFFERENT skill listed above
2. Be voiced in that skill's distinct personality
3. Suggest a specific action the player could take
4. Include an appropriate difficulty (Trivial 6 / Easy 8 / Medium 10 / Challenging 12 / Formidable 14 / Legendary 16)
5. The voiceText should be 1-3 sentences in the skill's voice, pitching the action

DIFFICULTY GUIDE:
- Trivial (6): Almost automatic
- Easy (8): Slight challenge  
- Medium (10): Standard difficulty
- Challenging (12): Requires effort
- Formidable (14): Serious challenge
- Legendary (16): Exceptional feat

Return ONLY a JSON array, no other text:
[
  {
    "skill": "authority",
    "dc": 12,
    "difficulty": "Challenging",
    "shortText": "Assert dominance",
    "voiceText": "You're a COP. Make her FEEL it. Show her what the 41st precinct means.",
    "tags": ["aggressive", "intimidating"]
  }
]`

const intentInstructions = `Generate %d different ways to accomplish this intent, each from a different skill's perspective. Each skill should suggest its own unique approach.

Return ONLY a JSON array:
[
  {
    "skill": "skill_id",
    "dc": 10,
    "difficulty": "Medium",
    "shortText": "Brief action",
    "voiceText": "The skill's pitch for this approach in its voice.",
    "tags": ["optional", "tags"]
  }
]`

const resultInstructions = `Write 2-3 sentences describing how the detective attempts this action and what happens.
- On SUCCESS: The action works, describe the positive outcome
- On FAILURE: The attempt backfires or fails awkwardly
- On CRITICAL SUCCESS: Exceptional, impressive, beyond expectations
- On CRITICAL FAILURE: Spectacular disaster, embarrassing, possibly harmful

Write in second person ("You..."). Be vivid and specific. Match Disco Elysium's literary style.

Return ONLY the result text, no other commentary.`

// GenerationPromptInput is everything the suggestion prompt renders
type GenerationPromptInput struct {
	Transcript      Transcript
	Health          entities.Vital
	Morale          entities.Vital
	Conditions      []entities.Condition
	Skills          []entities.VoicedSkill
	SuggestionCount int
	ChaosLevel      float64
}

// IntentPromptInput is everything the intent prompt renders
type IntentPromptInput struct {
	Intent          string
	Transcript      Transcript
	Skills          []entities.VoicedSkill
	SuggestionCount int
}

// ResultPromptInput is everything the narration prompt renders
type ResultPromptInput struct {
	Suggestion entities.Suggestion
	Roll       entities.RollResult
	ResultType entities.ResultType
	Transcript Transcript
}

// ToneGuidance maps a chaos level onto its prompt band
func ToneGuidance(chaos float64) string {
	switch {
	case chaos < 0.3:
		return toneGrounded
	case chaos < 0.7:
		return toneMixed
	default:
		return toneChaotic
	}
}

// BuildGenerationPrompt renders the free-form suggestion prompt
func BuildGenerationPrompt(in GenerationPromptInput) string {
	var b strings.Builder

	b.WriteString("You are generating skill-voiced suggestions for a Disco Elysium-style RPG. ")
	b.WriteString("Each suggestion comes from a different skill - a voice in the detective's head with its own personality.\n\n")

	b.WriteString("CURRENT SCENE:\n")
	b.WriteString(in.Transcript.Format())
	b.WriteString("\n\n")

	b.WriteString("DETECTIVE STATUS:\n")
	b.WriteString(vitalLine("Health", in.Health))
	b.WriteString(vitalLine("Morale", in.Morale))
	fmt.Fprintf(&b, "- Conditions: %s\n\n", conditionList(in.Conditions))

	b.WriteString("AVAILABLE SKILLS (use these voices):\n")
	for _, s := range in.Skills {
		fmt.Fprintf(&b, "- %s (Level %d): %s. Style: %s\n",
			s.Name, s.Level, s.Voice.Personality, s.Voice.SpeakingStyle)
	}
	b.WriteString("\n")

	b.WriteString("TONE GUIDANCE:\n")
	b.WriteString(ToneGuidance(in.ChaosLevel))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, generationInstructions, in.SuggestionCount)
	return b.String()
}

// BuildIntentPrompt renders the prompt for a player-stated intent
func BuildIntentPrompt(in IntentPromptInput) string {
	var b strings.Builder

	b.WriteString("You are generating skill-voiced suggestions for a Disco Elysium-style RPG.\n\n")
	fmt.Fprintf(&b, "PLAYER INTENT: \"%s\"\n\n", in.Intent)

	b.WriteString("CURRENT SCENE:\n")
	b.WriteString(in.Transcript.Format())
	b.WriteString("\n\n")

	b.WriteString("AVAILABLE SKILLS:\n")
	for _, s := range in.Skills {
		fmt.Fprintf(&b, "- %s (Level %d): %s\n", s.Name, s.Level, s.Voice.Personality)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, intentInstructions, in.SuggestionCount)
	return b.String()
}

// BuildResultPrompt renders the narration prompt for an executed check
func BuildResultPrompt(in ResultPromptInput) string {
	var b strings.Builder

	b.WriteString("Generate the result of this action attempt in a Disco Elysium style.\n\n")
	fmt.Fprintf(&b, "ACTION: %s\n", in.Suggestion.ShortText)
	fmt.Fprintf(&b, "SKILL: %s\n", in.Suggestion.SkillName)
	fmt.Fprintf(&b, "ROLL: %d + modifiers = %d vs DC %d\n", in.Roll.Roll, in.Roll.Total, in.Suggestion.DC)
	fmt.Fprintf(&b, "RESULT: %s\n\n", in.ResultType)

	b.WriteString("CONTEXT:\n")
	b.WriteString(in.Transcript.Format())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "THE SKILL'S SUGGESTION WAS:\n\"%s\"\n\n", in.Suggestion.VoiceText)

	b.WriteString(resultInstructions)
	return b.String()
}

func vitalLine(label string, v entities.Vital) string {
	line := fmt.Sprintf("- %s: %d/%d", label, v.Current, v.EffectiveMax())
	if v.IsCritical() {
		line += " [CRITICAL]"
	}
	return line + "\n"
}

func conditionList(conds []entities.Condition) string {
	if len(conds) == 0 {
		return "None"
	}
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
