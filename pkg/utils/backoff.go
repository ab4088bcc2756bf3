package utils

import (
	"math/rand"
	"time"
)

// JitteredBackoff returns base plus up to base of random jitter. Used for
// the single automatic retry after an optimistic-concurrency conflict, so
// competing writers do not collide again in lockstep.
func JitteredBackoff(base time.Duration) time.Duration {
	if base <= 0 {
		base = 25 * time.Millisecond
	}
	return base + time.Duration(rand.Int63n(int64(base)))
}
