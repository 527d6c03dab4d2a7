package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// RequestIDGenerator produces request identifiers.
//
// Identifiers are UUIDv7 strings. If the random source fails the generator
// falls back to a process-monotonic counter, so Generate never fails.
type RequestIDGenerator struct {
	newUUID func() (uuid.UUID, error)

	boot    int64
	counter atomic.Uint64
}

// NewRequestIDGenerator creates a generator backed by uuid.NewV7.
func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{
		newUUID: uuid.NewV7,
		boot:    time.Now().UnixNano(),
	}
}

// Generate returns a previously unused identifier.
func (g *RequestIDGenerator) Generate() string {
	if id, err := g.newUUID(); err == nil {
		return id.String()
	}
	return g.fallback()
}

func (g *RequestIDGenerator) fallback() string {
	return fmt.Sprintf("req-%x-%d", g.boot, g.counter.Add(1))
}
