package suggestion

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
	"github.com/KirkDiggler/interfacing/internal/pkg/idgen"
	"github.com/KirkDiggler/interfacing/internal/skills"
)

// Normalisation defaults for model output
const (
	DefaultDC          = 10
	DefaultDifficulty  = "Medium"
	DefaultShortText   = "Take action"
	SuggestionIDPrefix = "sug"
)

// ParseFailure says why a response produced no suggestions
type ParseFailure string

// Parse failures
const (
	FailureNone           ParseFailure = ""
	FailureNoArray        ParseFailure = "no_array"
	FailureInvalidJSON    ParseFailure = "invalid_json"
	FailureNotArray       ParseFailure = "not_array"
	FailureNoValidEntries ParseFailure = "no_valid_entries"
)

var (
	fencedBlock = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	arraySpan   = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ParseResult is the outcome of parsing one model response
type ParseResult struct {
	Suggestions []entities.Suggestion
	Failure     ParseFailure
	// Dropped counts array entries rejected during normalisation
	Dropped int
}

// Parser turns raw model text into normalised suggestions
type Parser struct {
	registry *skills.Registry
	clock    clock.Clock
}

// NewParser creates a parser that resolves display names from reg
func NewParser(reg *skills.Registry, clk clock.Clock) *Parser {
	if reg == nil {
		reg = skills.Default()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Parser{registry: reg, clock: clk}
}

// ParseSuggestions returns the usable suggestions in raw, never nil
func (p *Parser) ParseSuggestions(raw string) []entities.Suggestion {
	return p.Parse(raw).Suggestions
}

// Parse extracts a JSON array from raw and normalises each entry. It
// never fails; an unusable response yields an empty list and a Failure.
func (p *Parser) Parse(raw string) ParseResult {
	body, ok := extractArray(extractFenced(raw))
	if !ok {
		return ParseResult{Suggestions: []entities.Suggestion{}, Failure: FailureNoArray}
	}

	items, failure := decodeArray(body)
	if failure != FailureNone {
		return ParseResult{Suggestions: []entities.Suggestion{}, Failure: failure}
	}

	now := p.clock.Now()
	out := make([]entities.Suggestion, 0, len(items))
	for i, item := range items {
		s, ok := p.normalize(item)
		if !ok {
			continue
		}
		s.ID = idgen.Indexed(SuggestionIDPrefix, now, i)
		out = append(out, s)
	}

	result := ParseResult{Suggestions: out, Dropped: len(items) - len(out)}
	if len(out) == 0 {
		result.Failure = FailureNoValidEntries
	}
	return result
}

func extractFenced(raw string) string {
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

func extractArray(s string) (string, bool) {
	span := arraySpan.FindString(s)
	return span, span != ""
}

func decodeArray(body string) ([]any, ParseFailure) {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, FailureInvalidJSON
	}
	items, ok := v.([]any)
	if !ok {
		return nil, FailureNotArray
	}
	return items, FailureNone
}

func (p *Parser) normalize(item any) (entities.Suggestion, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return entities.Suggestion{}, false
	}

	skill := strings.TrimSpace(stringField(obj, "skill"))
	shortText := stringField(obj, "shortText")
	voiceText := stringField(obj, "voiceText")
	if voiceText == "" {
		voiceText = shortText
	}
	if skill == "" || voiceText == "" {
		return entities.Suggestion{}, false
	}

	if shortText == "" {
		shortText = DefaultShortText
	}
	difficulty := stringField(obj, "difficulty")
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	return entities.Suggestion{
		Skill:      skill,
		SkillName:  p.registry.DisplayName(skill),
		DC:         normalizeDC(obj["dc"]),
		Difficulty: difficulty,
		ShortText:  shortText,
		VoiceText:  voiceText,
		Tags:       stringList(obj["tags"]),
	}, true
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// normalizeDC truncates numbers and reads the leading integer of strings.
// Zero, missing and non-numeric values become DefaultDC.
func normalizeDC(v any) int {
	var dc int
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.Abs(t) > math.MaxInt32 {
			return DefaultDC
		}
		dc = int(t)
	case string:
		n, ok := leadingInt(t)
		if !ok {
			return DefaultDC
		}
		dc = n
	default:
		return DefaultDC
	}
	if dc == 0 {
		return DefaultDC
	}
	return dc
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
