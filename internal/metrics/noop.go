package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncContextCacheHit is a no-op.
func (n *NoopRecorder) IncContextCacheHit() {}

// IncContextCacheMiss is a no-op.
func (n *NoopRecorder) IncContextCacheMiss() {}

// IncAnalysisGenerated is a no-op.
func (n *NoopRecorder) IncAnalysisGenerated() {}

// IncBriefGenerated is a no-op.
func (n *NoopRecorder) IncBriefGenerated() {}

// IncArticleGenerated is a no-op.
func (n *NoopRecorder) IncArticleGenerated() {}

// IncCalendarGenerated is a no-op.
func (n *NoopRecorder) IncCalendarGenerated() {}

// ObserveGenerationDuration is a no-op.
func (n *NoopRecorder) ObserveGenerationDuration(duration time.Duration) {}

// IncBulkItemProcessed is a no-op.
func (n *NoopRecorder) IncBulkItemProcessed(status string) {}

// IncTaskStarted is a no-op.
func (n *NoopRecorder) IncTaskStarted() {}

// IncTaskFinished is a no-op.
func (n *NoopRecorder) IncTaskFinished(status string) {}
