// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Context cache metrics
	IncContextCacheHit()
	IncContextCacheMiss()

	// Generation metrics
	IncAnalysisGenerated()
	IncBriefGenerated()
	IncArticleGenerated()
	IncCalendarGenerated()
	ObserveGenerationDuration(duration time.Duration)

	// Bulk processing metrics
	IncBulkItemProcessed(status string) // status: "success" or "failed"

	// Background task metrics
	IncTaskStarted()
	IncTaskFinished(status string) // status: "completed" or "failed"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
