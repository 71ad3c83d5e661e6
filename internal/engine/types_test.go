package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/interfacing/internal/engine"
)

func TestCheckResultFaces(t *testing.T) {
	testCases := []struct {
		name     string
		check    engine.CheckResult
		min, max int
	}{
		{"defaults to 2d6", engine.CheckResult{}, 2, 12},
		{"explicit 2d6", engine.CheckResult{DiceCount: 2, DieSize: 6}, 2, 12},
		{"1d20", engine.CheckResult{DiceCount: 1, DieSize: 20}, 1, 20},
		{"3d6", engine.CheckResult{DiceCount: 3, DieSize: 6}, 3, 18},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.min, tc.check.MinRoll())
			assert.Equal(t, tc.max, tc.check.MaxRoll())
		})
	}
}
