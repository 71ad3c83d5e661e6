package suggestion

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/host"
)

const (
	userDisplayName     = "You"
	fallbackDisplayName = "Character"
)

// Transcript is the recent conversation window fed to prompts
type Transcript struct {
	Turns []entities.Turn
	Hash  string
}

// GatherContext takes the last n messages from the conversation and
// converts them into turns. A nil conversation yields an empty transcript.
func GatherContext(conv host.Conversation, n int) Transcript {
	if conv == nil || n <= 0 {
		return Transcript{Hash: HashContext(nil)}
	}

	msgs := conv.RecentMessages(n)
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}

	turns := make([]entities.Turn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, toTurn(m))
	}

	return Transcript{Turns: turns, Hash: HashContext(turns)}
}

func toTurn(m entities.Message) entities.Turn {
	if m.IsUser {
		return entities.Turn{Role: entities.RoleUser, Name: userDisplayName, Content: m.Content}
	}

	name := m.Name
	if name == "" {
		name = fallbackDisplayName
	}
	return entities.Turn{Role: entities.RoleCharacter, Name: name, Content: m.Content}
}

// HashContext returns a short fingerprint of the turn contents. The value
// is a 32-bit rolling hash over UTF-16 code units rendered in base 36, so
// it stays stable against hashes produced by earlier sessions.
func HashContext(turns []entities.Turn) string {
	contents := make([]string, len(turns))
	for i, t := range turns {
		contents[i] = t.Content
	}

	var h int32
	for _, c := range utf16.Encode([]rune(strings.Join(contents, "|"))) {
		h = (h << 5) - h + int32(c)
	}

	return strconv.FormatInt(int64(h), 36)
}

// Format renders the transcript as "Name: content" blocks
func (t Transcript) Format() string {
	lines := make([]string, len(t.Turns))
	for i, turn := range t.Turns {
		lines[i] = turn.Name + ": " + turn.Content
	}
	return strings.Join(lines, "\n\n")
}
