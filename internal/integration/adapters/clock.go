// Package adapters provides implementations of application-layer ports.
package adapters

import (
	"math/rand"
	"sync"
	"time"

	"github.com/piggybank/backend/internal/application/adapter"
)

// SystemClock implements adapter.Clock with the wall clock.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// lockedRand wraps math/rand with a mutex; *rand.Rand is not safe for
// concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a seeded adapter.RandomSource.
func NewRandomSource(seed int64) adapter.RandomSource {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
