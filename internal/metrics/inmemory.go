package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ContextCacheHits          uint64
	ContextCacheMisses        uint64
	AnalysesGenerated         uint64
	BriefsGenerated           uint64
	ArticlesGenerated         uint64
	CalendarsGenerated        uint64
	GenerationDurationCount   uint64
	GenerationDurationTotalNs int64
	BulkItemsSucceeded        uint64
	BulkItemsFailed           uint64
	TasksStarted              uint64
	TasksCompleted            uint64
	TasksFailed               uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	contextCacheHits          uint64
	contextCacheMisses        uint64
	analysesGenerated         uint64
	briefsGenerated           uint64
	articlesGenerated         uint64
	calendarsGenerated        uint64
	generationDurationCount   uint64
	generationDurationTotalNs int64
	bulkItemsSucceeded        uint64
	bulkItemsFailed           uint64
	tasksStarted              uint64
	tasksCompleted            uint64
	tasksFailed               uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ContextCacheHits:          atomic.LoadUint64(&m.contextCacheHits),
		ContextCacheMisses:        atomic.LoadUint64(&m.contextCacheMisses),
		AnalysesGenerated:         atomic.LoadUint64(&m.analysesGenerated),
		BriefsGenerated:           atomic.LoadUint64(&m.briefsGenerated),
		ArticlesGenerated:         atomic.LoadUint64(&m.articlesGenerated),
		CalendarsGenerated:        atomic.LoadUint64(&m.calendarsGenerated),
		GenerationDurationCount:   atomic.LoadUint64(&m.generationDurationCount),
		GenerationDurationTotalNs: atomic.LoadInt64(&m.generationDurationTotalNs),
		BulkItemsSucceeded:        atomic.LoadUint64(&m.bulkItemsSucceeded),
		BulkItemsFailed:           atomic.LoadUint64(&m.bulkItemsFailed),
		TasksStarted:              atomic.LoadUint64(&m.tasksStarted),
		TasksCompleted:            atomic.LoadUint64(&m.tasksCompleted),
		TasksFailed:               atomic.LoadUint64(&m.tasksFailed),
	}
}

// IncContextCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncContextCacheHit() {
	atomic.AddUint64(&m.contextCacheHits, 1)
}

// IncContextCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncContextCacheMiss() {
	atomic.AddUint64(&m.contextCacheMisses, 1)
}

// IncAnalysisGenerated increments the analyses counter.
func (m *InMemoryRecorder) IncAnalysisGenerated() {
	atomic.AddUint64(&m.analysesGenerated, 1)
}

// IncBriefGenerated increments the briefs counter.
func (m *InMemoryRecorder) IncBriefGenerated() {
	atomic.AddUint64(&m.briefsGenerated, 1)
}

// IncArticleGenerated increments the articles counter.
func (m *InMemoryRecorder) IncArticleGenerated() {
	atomic.AddUint64(&m.articlesGenerated, 1)
}

// IncCalendarGenerated increments the calendars counter.
func (m *InMemoryRecorder) IncCalendarGenerated() {
	atomic.AddUint64(&m.calendarsGenerated, 1)
}

// ObserveGenerationDuration records one generation duration.
func (m *InMemoryRecorder) ObserveGenerationDuration(duration time.Duration) {
	atomic.AddUint64(&m.generationDurationCount, 1)
	atomic.AddInt64(&m.generationDurationTotalNs, duration.Nanoseconds())
}

// IncBulkItemProcessed increments the bulk item counter for status.
func (m *InMemoryRecorder) IncBulkItemProcessed(status string) {
	if status == "success" {
		atomic.AddUint64(&m.bulkItemsSucceeded, 1)
	} else {
		atomic.AddUint64(&m.bulkItemsFailed, 1)
	}
}

// IncTaskStarted increments the started task counter.
func (m *InMemoryRecorder) IncTaskStarted() {
	atomic.AddUint64(&m.tasksStarted, 1)
}

// IncTaskFinished increments the finished task counter for status.
func (m *InMemoryRecorder) IncTaskFinished(status string) {
	if status == "completed" {
		atomic.AddUint64(&m.tasksCompleted, 1)
	} else {
		atomic.AddUint64(&m.tasksFailed, 1)
	}
}
