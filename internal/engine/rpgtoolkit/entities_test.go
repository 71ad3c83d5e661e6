package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerEntity(t *testing.T) {
	entity := wrapPlayer("harry")

	assert.Equal(t, "harry", entity.GetID())
	assert.Equal(t, "player", entity.GetType())
}
