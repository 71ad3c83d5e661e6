package entities

import "time"

// Suggestion is one skill-voiced action option produced by the model
type Suggestion struct {
	ID         string   `json:"id"`
	Skill      string   `json:"skill"`
	SkillName  string   `json:"skillName"`
	DC         int      `json:"dc"`
	Difficulty string   `json:"difficulty"`
	ShortText  string   `json:"shortText"`
	VoiceText  string   `json:"voiceText"`
	Tags       []string `json:"tags"`
}

// RollResult is the outcome of a single skill check.
// The critical flags are tied to the dice faces, not to Success.
type RollResult struct {
	Roll              int  `json:"roll"`
	Total             int  `json:"total"`
	DC                int  `json:"dc"`
	Success           bool `json:"success"`
	IsCriticalSuccess bool `json:"isCriticalSuccess"`
	IsCriticalFailure bool `json:"isCriticalFailure"`
}

// ResultType labels an executed check for narration
type ResultType string

// Result types
const (
	ResultSuccess         ResultType = "SUCCESS"
	ResultFailure         ResultType = "FAILURE"
	ResultCriticalSuccess ResultType = "CRITICAL SUCCESS"
	ResultCriticalFailure ResultType = "CRITICAL FAILURE"
)

// ResultTypeFor picks the label for a roll. Criticals override the base
// outcome, and a critical failure wins over a critical success.
func ResultTypeFor(r RollResult) ResultType {
	resultType := ResultFailure
	if r.Success {
		resultType = ResultSuccess
	}
	if r.IsCriticalSuccess {
		resultType = ResultCriticalSuccess
	}
	if r.IsCriticalFailure {
		resultType = ResultCriticalFailure
	}
	return resultType
}

// ExecutionResult is a completed suggestion with its roll and narration
type ExecutionResult struct {
	Suggestion  Suggestion `json:"suggestion"`
	Roll        RollResult `json:"roll"`
	ResultType  ResultType `json:"resultType"`
	ResultText  string     `json:"resultText"`
	CompletedAt time.Time  `json:"completedAt"`
}

// PendingRoll marks a suggestion whose check is in flight
type PendingRoll struct {
	Suggestion Suggestion `json:"suggestion"`
	StartedAt  time.Time  `json:"startedAt"`
}
