// Package latency simulates the response time of a model call.
package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

// Wait blocks the calling goroutine for d or until ctx is done.
// Each caller owns its timer, so concurrent requests expire independently.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RandSource hands out a generator per call. *rand.Rand is not safe for
// concurrent use, so engines shared across requests draw a fresh one each time.
type RandSource func() *rand.Rand

// NewRandSource returns a source seeded from the runtime, or a fixed seed when seed != 0.
// A fixed seed makes every call replay the same sequence.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		return func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}
