package core

import "time"

// SimpleRunner is a strict round-robin scheduler over a single active
// sequence. It has no concept of parking: a task that ever reports
// StateWaiting aborts the whole run with ErrSleepingUnsupported. This models
// a minimal executor without suspension support; it is a deliberate
// simplification, and callers must avoid tasks that ever wait.
//
// Execution is strictly single-threaded and cooperative. The runner owns
// every scheduled task until it is retired or the runner is shut down.
type SimpleRunner[T any] struct {
	name    string
	tasks   *taskQueue[T]
	logger  Logger
	metrics Metrics
	history pollHistory

	completed int64
	rejected  int64
	closed    bool
}

var _ Runner[int] = (*SimpleRunner[int])(nil)

// NewSimpleRunner creates a SimpleRunner with default sinks.
func NewSimpleRunner[T any]() *SimpleRunner[T] {
	return NewSimpleRunnerWithConfig[T](nil)
}

// NewSimpleRunnerWithConfig creates a SimpleRunner with the given config.
// Unset config fields fall back to defaults.
func NewSimpleRunnerWithConfig[T any](config *RunnerConfig) *SimpleRunner[T] {
	cfg := config.normalize()
	return &SimpleRunner[T]{
		name:    runnerTypeSimpleRunner,
		tasks:   newTaskQueue[T](),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		history: newPollHistory(cfg.HistoryCapacity),
	}
}

// Name returns the runner's name.
func (r *SimpleRunner[T]) Name() string {
	return r.name
}

// SetName sets the runner's name, used in logs, stats, and metrics labels.
func (r *SimpleRunner[T]) SetName(name string) {
	if name != "" {
		r.name = name
	}
}

// Schedule appends a task to the tail of the active sequence, transferring
// ownership to the runner. Tasks scheduled after Shutdown are rejected and
// never polled.
func (r *SimpleRunner[T]) Schedule(task Task[T]) {
	if r.closed {
		r.rejected++
		r.metrics.RecordTaskDropped(r.name, dropReasonClosed)
		r.logger.Warn("task rejected, runner is closed", F("runner", r.name))
		return
	}

	entry := taskEntry[T]{id: GenerateTaskID(), task: task}
	r.tasks.push(entry)
	r.logger.Debug("scheduled task", F("runner", r.name), F("task", entry.id))
}

// IsEmpty reports whether no tasks remain scheduled.
func (r *SimpleRunner[T]) IsEmpty() bool {
	return r.tasks.isEmpty()
}

// Run polls every task in index order until all have completed. Pending
// advances to the next task without removing it; Done retires the task and
// calls its Cleanup; Waiting is fatal. The first error aborts the run
// immediately, leaving remaining tasks unpolled (Shutdown reclaims them).
func (r *SimpleRunner[T]) Run() error {
	for !r.IsEmpty() {
		sweepStart := time.Now()

		i := 0
		for i < r.tasks.len() {
			entry := r.tasks.at(i)

			out, err := pollEntry(r.name, entry, r.logger, r.metrics, &r.history)
			if err != nil {
				return err
			}

			switch out.State {
			case StatePending:
				i++

			case StateWaiting:
				r.logger.Error("task reported waiting, sleeping is unsupported",
					F("runner", r.name), F("task", entry.id))
				return ErrSleepingUnsupported

			case StateDone:
				if !out.HasValue {
					return ErrCompletedWithoutValue
				}
				r.tasks.removeAt(i)
				entry.task.Cleanup()
				r.completed++
				r.metrics.RecordTaskCompleted(r.name)
				r.logger.Debug("task completed",
					F("runner", r.name), F("task", entry.id))
			}
		}

		r.metrics.RecordQueueDepth(r.name, queueActive, r.tasks.len())
		r.metrics.RecordSweep(r.name, time.Since(sweepStart))
	}
	return nil
}

// Shutdown marks the runner as closed and cleans up every still-queued task
// exactly once. Safe to call repeatedly; new tasks are rejected afterwards.
func (r *SimpleRunner[T]) Shutdown() {
	if r.closed {
		return
	}
	r.closed = true

	for {
		entry, ok := r.tasks.popFront()
		if !ok {
			break
		}
		entry.task.Cleanup()
		r.metrics.RecordTaskDropped(r.name, dropReasonShutdown)
		r.logger.Debug("cleaned up abandoned task",
			F("runner", r.name), F("task", entry.id))
	}
}

// IsClosed reports whether the runner has been shut down.
func (r *SimpleRunner[T]) IsClosed() bool {
	return r.closed
}

// Stats returns a point-in-time snapshot of the runner's state.
func (r *SimpleRunner[T]) Stats() RunnerStats {
	return RunnerStats{
		Name:      r.name,
		Type:      runnerTypeSimpleRunner,
		Active:    r.tasks.len(),
		Completed: r.completed,
		Rejected:  r.rejected,
		Closed:    r.closed,
	}
}

// RecentPolls returns up to limit poll records, newest first.
func (r *SimpleRunner[T]) RecentPolls(limit int) []PollRecord {
	return r.history.recent(limit)
}

// LastPoll returns the most recent poll record, if any.
func (r *SimpleRunner[T]) LastPoll() (PollRecord, bool) {
	return r.history.last()
}
