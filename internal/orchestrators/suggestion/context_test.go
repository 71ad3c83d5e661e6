package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/host"
)

func TestHashContext_KnownValues(t *testing.T) {
	assert.Equal(t, "0", HashContext(nil))
	assert.Equal(t, "2p", HashContext([]entities.Turn{{Content: "a"}}))
	assert.Equal(t, "2e9", HashContext([]entities.Turn{{Content: "ab"}}))
}

func TestHashContext_Deterministic(t *testing.T) {
	turns := []entities.Turn{
		{Role: entities.RoleCharacter, Name: "Klaasje", Content: "The merchant eyes you suspiciously."},
		{Role: entities.RoleUser, Name: "You", Content: "I straighten my tie."},
	}

	first := HashContext(turns)
	assert.Equal(t, first, HashContext(append([]entities.Turn(nil), turns...)))

	changed := append([]entities.Turn(nil), turns...)
	changed[1].Content = "I loosen my tie."
	assert.NotEqual(t, first, HashContext(changed))

	reordered := []entities.Turn{turns[1], turns[0]}
	assert.NotEqual(t, first, HashContext(reordered))
}

func TestHashContext_LongInputWraps(t *testing.T) {
	long := make([]entities.Turn, 50)
	for i := range long {
		long[i].Content = "The rain over Martinaise does not stop."
	}
	assert.NotEmpty(t, HashContext(long))
	assert.Equal(t, HashContext(long), HashContext(long))
}

func TestGatherContext(t *testing.T) {
	scene := host.NewScene(host.SceneData{
		Messages: []entities.Message{
			{IsUser: false, Name: "Kim", Content: "Detective."},
			{IsUser: true, Name: "Harry", Content: "Yes?"},
			{IsUser: false, Content: "..."},
		},
	})

	transcript := GatherContext(scene, 5)
	assert.Equal(t, []entities.Turn{
		{Role: entities.RoleCharacter, Name: "Kim", Content: "Detective."},
		{Role: entities.RoleUser, Name: "You", Content: "Yes?"},
		{Role: entities.RoleCharacter, Name: "Character", Content: "..."},
	}, transcript.Turns)
	assert.Equal(t, "Kim: Detective.\n\nYou: Yes?\n\nCharacter: ...", transcript.Format())
	assert.Equal(t, HashContext(transcript.Turns), transcript.Hash)

	lastTwo := GatherContext(scene, 2)
	assert.Len(t, lastTwo.Turns, 2)
	assert.Equal(t, "Yes?", lastTwo.Turns[0].Content)
}

func TestGatherContext_Empty(t *testing.T) {
	assert.Empty(t, GatherContext(nil, 5).Turns)
	assert.Empty(t, GatherContext(host.NewScene(host.SceneData{}), 5).Format())
	assert.Equal(t, "0", GatherContext(nil, 5).Hash)
}
