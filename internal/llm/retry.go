package llm

import (
	"math/rand"
	"time"
)

// Retry delays for outbound API calls.
// Attempt 1: 500ms, Attempt 2: 1s, Attempt 3: 2s
var retryDelays = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
}

// JitterFactor is the ±percentage of jitter applied to delays.
const JitterFactor = 0.2 // ±20%

// NextRetryDelay calculates the next retry delay with exponential backoff + jitter.
// attemptCount is 0-indexed (after first failed attempt, attemptCount = 0).
func NextRetryDelay(attemptCount int) time.Duration {
	if attemptCount < 0 {
		attemptCount = 0
	}
	if attemptCount >= len(retryDelays) {
		attemptCount = len(retryDelays) - 1
	}

	base := retryDelays[attemptCount]

	// Add ±20% jitter to prevent thundering herd
	jitterRange := float64(base) * JitterFactor
	jitter := (rand.Float64()*2 - 1) * jitterRange

	return time.Duration(float64(base) + jitter)
}
