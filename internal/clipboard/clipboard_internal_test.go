package clipboard

import (
	"fmt"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

func TestSystemWriter(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("clipboard unsupported on this platform")
	}

	orig := writeAll
	defer func() { writeAll = orig }()

	var got string
	writeAll = func(text string) error {
		got = text
		return nil
	}
	assert.NoError(t, NewSystem().WriteText("You attempt to flash your badge. It works."))
	assert.Equal(t, "You attempt to flash your badge. It works.", got)

	writeAll = func(string) error { return fmt.Errorf("no display") }
	err := NewSystem().WriteText("x")
	assert.True(t, errors.IsUnavailable(err))
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.WriteText("anything"))
}
