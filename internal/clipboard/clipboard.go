// Package clipboard copies narration text to the system clipboard
package clipboard

//go:generate mockgen -destination=mock/mock_writer.go -package=clipboardmock github.com/KirkDiggler/interfacing/internal/clipboard Writer

import (
	"github.com/atotto/clipboard"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

// Writer places text on a clipboard
type Writer interface {
	WriteText(text string) error
}

// writeAll is swapped in tests
var writeAll = clipboard.WriteAll

type systemWriter struct{}

// NewSystem returns a Writer backed by the OS clipboard
func NewSystem() Writer {
	return systemWriter{}
}

// WriteText copies text to the OS clipboard
func (systemWriter) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.Unavailable("clipboard is not supported on this system")
	}
	if err := writeAll(text); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write clipboard")
	}
	return nil
}

// Discard is a Writer that drops everything
type Discard struct{}

// WriteText does nothing
func (Discard) WriteText(string) error { return nil }
