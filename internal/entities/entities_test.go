package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

func TestVital(t *testing.T) {
	testCases := []struct {
		name         string
		vital        entities.Vital
		effectiveMax int
		critical     bool
	}{
		{"full", entities.Vital{Current: 10, Max: 10}, 10, false},
		{"at threshold", entities.Vital{Current: 3, Max: 10}, 10, true},
		{"just above", entities.Vital{Current: 4, Max: 10}, 10, false},
		{"temp raises threshold", entities.Vital{Current: 4, Max: 10, Temp: 4}, 14, true},
		{"zero", entities.Vital{}, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.effectiveMax, tc.vital.EffectiveMax())
			assert.Equal(t, tc.critical, tc.vital.IsCritical())
		})
	}
}

func TestResultTypeFor(t *testing.T) {
	testCases := []struct {
		name     string
		roll     entities.RollResult
		expected entities.ResultType
	}{
		{"success", entities.RollResult{Success: true}, entities.ResultSuccess},
		{"failure", entities.RollResult{}, entities.ResultFailure},
		{"critical success on failed check", entities.RollResult{IsCriticalSuccess: true}, entities.ResultCriticalSuccess},
		{"critical failure on passed check", entities.RollResult{Success: true, IsCriticalFailure: true}, entities.ResultCriticalFailure},
		{"critical failure wins", entities.RollResult{IsCriticalSuccess: true, IsCriticalFailure: true}, entities.ResultCriticalFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entities.ResultTypeFor(tc.roll))
		})
	}
}
