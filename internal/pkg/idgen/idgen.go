// Package idgen builds the suggestion, roll and chat session identifiers
package idgen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator hands out identifiers
type Generator interface {
	Generate() string
}

// Indexed builds a batch-scoped ID with the format prefix_unixmillis_index.
// IDs from one batch share the timestamp and differ by index.
func Indexed(prefix string, at time.Time, index int) string {
	return prefix + "_" + strconv.FormatInt(at.UnixMilli(), 10) + "_" + strconv.Itoa(index)
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// SequentialGenerator counts up from 1. Tests use it for stable IDs.
type SequentialGenerator struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential creates a counter generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.n.Add(1), 10))
}

// UUIDGenerator returns random v4 UUIDs
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a fresh UUID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}
