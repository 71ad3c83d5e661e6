package suggestion

import (
	"cmp"
	"context"
	"slices"

	"github.com/KirkDiggler/interfacing/internal/engine"
	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/skills"
)

// Rand is the randomness source used to jitter skill selection
//
//go:generate mockgen -destination=mock/mock_rand.go -package=suggestionmock github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion Rand
type Rand interface {
	Float64() float64
}

// selectionJitter is the width of the random bonus added to each level
const selectionJitter = 2.0

// SelectSkills ranks every registered skill by effective level plus a
// random bonus in [0, 2) and returns the top n. Levels the engine cannot
// report count as 1.
func SelectSkills(ctx context.Context, reg *skills.Registry, eng engine.Engine, rnd Rand, n int) []entities.Skill {
	if n <= 0 {
		return []entities.Skill{}
	}

	type scored struct {
		skill entities.Skill
		score float64
	}

	defs := reg.All()
	ranked := make([]scored, 0, len(defs))
	for _, def := range defs {
		level := eng.GetEffectiveSkillLevel(ctx, def.ID)
		if level <= 0 {
			level = 1
		}
		ranked = append(ranked, scored{
			skill: entities.Skill{
				ID:        def.ID,
				Name:      def.Name,
				Attribute: def.Attribute,
				Level:     level,
			},
			score: float64(level) + rnd.Float64()*selectionJitter,
		})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	out := make([]entities.Skill, n)
	for i := range n {
		out[i] = ranked[i].skill
	}
	return out
}
