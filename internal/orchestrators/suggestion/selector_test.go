package suggestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/interfacing/internal/engine/mock"
	"github.com/KirkDiggler/interfacing/internal/skills"
)

// sequenceRand replays values and then repeats the last one
type sequenceRand struct {
	values []float64
	i      int
}

func (r *sequenceRand) Float64() float64 {
	v := r.values[min(r.i, len(r.values)-1)]
	r.i++
	return v
}

const selectorTable = `
attributes:
  - {id: INTELLECT, name: Intellect, color: "#5bc0de"}
  - {id: PSYCHE, name: Psyche, color: "#7b68ee"}
skills:
  - {id: logic, name: Logic, attribute: INTELLECT}
  - {id: drama, name: Drama, attribute: INTELLECT}
  - {id: volition, name: Volition, attribute: PSYCHE}
  - {id: empathy, name: Empathy, attribute: PSYCHE}
`

func TestSelectSkills_RanksByLevelPlusJitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg, err := skills.Load([]byte(selectorTable))
	require.NoError(t, err)

	eng := enginemock.NewMockEngine(ctrl)
	levels := map[string]int{"logic": 3, "drama": 1, "volition": 0, "empathy": 3}
	for id, lvl := range levels {
		eng.EXPECT().GetEffectiveSkillLevel(gomock.Any(), id).Return(lvl)
	}

	// logic 3.2, drama 1.0, volition 1+1.8, empathy 3+1.6
	rnd := &sequenceRand{values: []float64{0.1, 0.0, 0.9, 0.8}}

	got := SelectSkills(context.Background(), reg, eng, rnd, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "empathy", got[0].ID)
	assert.Equal(t, "logic", got[1].ID)
	assert.Equal(t, "volition", got[2].ID)
	assert.Equal(t, 1, got[2].Level, "unknown level counts as 1")
	assert.Equal(t, 4, rnd.i, "one draw per skill")
}

func TestSelectSkills_Bounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg, err := skills.Load([]byte(selectorTable))
	require.NoError(t, err)

	eng := enginemock.NewMockEngine(ctrl)
	eng.EXPECT().GetEffectiveSkillLevel(gomock.Any(), gomock.Any()).Return(2).AnyTimes()
	rnd := &sequenceRand{values: []float64{0.5}}

	assert.Empty(t, SelectSkills(context.Background(), reg, eng, rnd, 0))
	assert.Len(t, SelectSkills(context.Background(), reg, eng, rnd, 10), 4)
}

func TestSelectSkills_StableForEqualScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg, err := skills.Load([]byte(selectorTable))
	require.NoError(t, err)

	eng := enginemock.NewMockEngine(ctrl)
	eng.EXPECT().GetEffectiveSkillLevel(gomock.Any(), gomock.Any()).Return(2).AnyTimes()

	got := SelectSkills(context.Background(), reg, eng, &sequenceRand{values: []float64{0.5}}, 4)
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"logic", "drama", "volition", "empathy"}, ids)
}
