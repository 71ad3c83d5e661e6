package llm

import (
	"errors"
	"testing"

	"github.com/pkoukk/tiktoken-go"
)

// offlineTokenizer keeps token estimation from downloading BPE files
func offlineTokenizer(t *testing.T) {
	t.Helper()
	origModel, origEnc := encodingForModel, getEncoding
	encodingForModel = func(string) (*tiktoken.Tiktoken, error) { return nil, errors.New("offline") }
	getEncoding = func(string) (*tiktoken.Tiktoken, error) { return nil, errors.New("offline") }
	t.Cleanup(func() {
		encodingForModel, getEncoding = origModel, origEnc
	})
}
