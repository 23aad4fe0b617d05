package core

import "time"

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// Metrics defines the interface for collecting scheduler metrics.
// Implementations can send metrics to monitoring systems (Prometheus,
// StatsD, etc.).
//
// Methods should be non-blocking and fast; they run inline in the run loop.
type Metrics interface {
	// RecordPoll records one poll step and its reported state.
	RecordPoll(runnerName string, state PollState, duration time.Duration)

	// RecordTaskCompleted records that a task reached its terminal state and
	// was retired.
	RecordTaskCompleted(runnerName string)

	// RecordTaskDropped records that a task left the runner without
	// completing (rejected at schedule time, dropped mid-run, or abandoned
	// at shutdown). The reason distinguishes the cases.
	RecordTaskDropped(runnerName string, reason string)

	// RecordQueueDepth records the current depth of one of the runner's
	// queues at the end of a sweep.
	RecordQueueDepth(runnerName string, queue string, depth int)

	// RecordSweep records the duration of one full pass over the active
	// tasks.
	RecordSweep(runnerName string, duration time.Duration)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordPoll is a no-op.
func (m *NilMetrics) RecordPoll(runnerName string, state PollState, duration time.Duration) {}

// RecordTaskCompleted is a no-op.
func (m *NilMetrics) RecordTaskCompleted(runnerName string) {}

// RecordTaskDropped is a no-op.
func (m *NilMetrics) RecordTaskDropped(runnerName string, reason string) {}

// RecordQueueDepth is a no-op.
func (m *NilMetrics) RecordQueueDepth(runnerName string, queue string, depth int) {}

// RecordSweep is a no-op.
func (m *NilMetrics) RecordSweep(runnerName string, duration time.Duration) {}

// =============================================================================
// Snapshots and records
// =============================================================================

// PollRecord captures a single poll step for the runner's history buffer.
type PollRecord struct {
	TaskID   TaskID
	Runner   string
	State    PollState
	HasValue bool
	Err      error
	At       time.Time
	Duration time.Duration
}

// RunnerStats represents a point-in-time observability snapshot of a runner.
// Stats reads are not synchronized with Run; collect them from the same
// goroutine, or between runs.
type RunnerStats struct {
	Name      string
	Type      string
	Pending   int
	Active    int
	Sleeping  int
	Completed int64
	Dropped   int64
	Rejected  int64
	Closed    bool
}

// =============================================================================
// RunnerConfig: Configuration for runners
// =============================================================================

// RunnerConfig holds configuration options shared by both runners. All
// fields are optional; zero values fall back to defaults.
type RunnerConfig struct {
	// Logger receives lifecycle diagnostics. Defaults to DefaultLogger.
	Logger Logger

	// Metrics collects scheduler metrics. Defaults to NilMetrics.
	Metrics Metrics

	// HistoryCapacity bounds the poll history ring buffer. Defaults to
	// defaultPollHistoryCapacity.
	HistoryCapacity int
}

// DefaultRunnerConfig returns a config with default sinks.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		Logger:          NewDefaultLogger(),
		Metrics:         &NilMetrics{},
		HistoryCapacity: defaultPollHistoryCapacity,
	}
}

// normalize fills unset fields with defaults, tolerating a nil receiver.
func (c *RunnerConfig) normalize() RunnerConfig {
	out := RunnerConfig{}
	if c != nil {
		out = *c
	}
	if out.Logger == nil {
		out.Logger = NewDefaultLogger()
	}
	if out.Metrics == nil {
		out.Metrics = &NilMetrics{}
	}
	if out.HistoryCapacity < 1 {
		out.HistoryCapacity = defaultPollHistoryCapacity
	}
	return out
}
