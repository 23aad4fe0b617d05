package core

import "time"

// PollRunner is a three-queue scheduler: newly scheduled and re-queued tasks
// sit in pending, each sweep drains pending into active and polls active from
// the front, and tasks that report StateWaiting with a value are parked in
// sleeping. There are no real timers: after the active queue empties, every
// sleeping task moves back to pending unconditionally, so "sleeping" is just
// a one-sweep delay.
//
// A task that reports StateWaiting with no value is dropped from the queues
// without cleanup. That asymmetry is inherited behavior, kept for parity and
// surfaced through a warning log and the dropped counters rather than
// extended; see the regression tests.
//
// Execution is strictly single-threaded and cooperative. A task belongs to
// exactly one queue at a time; moving between queues transfers ownership.
type PollRunner[T any] struct {
	name     string
	pending  *taskQueue[T]
	active   *taskQueue[T]
	sleeping *taskQueue[T]
	logger   Logger
	metrics  Metrics
	history  pollHistory

	completed int64
	dropped   int64
	rejected  int64
	closed    bool
}

var _ Runner[int] = (*PollRunner[int])(nil)

// NewPollRunner creates a PollRunner with default sinks.
func NewPollRunner[T any]() *PollRunner[T] {
	return NewPollRunnerWithConfig[T](nil)
}

// NewPollRunnerWithConfig creates a PollRunner with the given config. Unset
// config fields fall back to defaults.
func NewPollRunnerWithConfig[T any](config *RunnerConfig) *PollRunner[T] {
	cfg := config.normalize()
	return &PollRunner[T]{
		name:     runnerTypePollRunner,
		pending:  newTaskQueue[T](),
		active:   newTaskQueue[T](),
		sleeping: newTaskQueue[T](),
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		history:  newPollHistory(cfg.HistoryCapacity),
	}
}

// Name returns the runner's name.
func (r *PollRunner[T]) Name() string {
	return r.name
}

// SetName sets the runner's name, used in logs, stats, and metrics labels.
func (r *PollRunner[T]) SetName(name string) {
	if name != "" {
		r.name = name
	}
}

// Schedule appends a task to the pending queue, transferring ownership to
// the runner. Tasks scheduled after Shutdown are rejected and never polled.
func (r *PollRunner[T]) Schedule(task Task[T]) {
	if r.closed {
		r.rejected++
		r.metrics.RecordTaskDropped(r.name, dropReasonClosed)
		r.logger.Warn("task rejected, runner is closed", F("runner", r.name))
		return
	}

	entry := taskEntry[T]{id: GenerateTaskID(), task: task}
	r.pending.push(entry)
	r.logger.Debug("scheduled task", F("runner", r.name), F("task", entry.id))
}

// IsEmpty reports whether all three queues are empty.
func (r *PollRunner[T]) IsEmpty() bool {
	return r.pending.isEmpty() && r.active.isEmpty() && r.sleeping.isEmpty()
}

// Run sweeps until every task has been retired or dropped. Each sweep drains
// pending into active (preserving order), polls active from the front, then
// re-queues all sleeping tasks for the next sweep. The first poll error
// aborts the run immediately; tasks already removed from a queue in that
// codepath stay abandoned without cleanup, and tasks still queued can be
// reclaimed with Shutdown.
func (r *PollRunner[T]) Run() error {
	for !r.IsEmpty() {
		sweepStart := time.Now()

		r.pending.drainInto(r.active)

		for {
			entry, ok := r.active.popFront()
			if !ok {
				break
			}

			out, err := pollEntry(r.name, entry, r.logger, r.metrics, &r.history)
			if err != nil {
				return err
			}

			switch out.State {
			case StatePending:
				r.pending.push(entry)

			case StateWaiting:
				if out.HasValue {
					r.sleeping.push(entry)
					break
				}
				// Inherited edge case: a wait with no continuation data is
				// treated as having nothing further to do.
				r.dropped++
				r.metrics.RecordTaskDropped(r.name, dropReasonNoWakeValue)
				r.logger.Warn("dropping task that reported waiting without a value",
					F("runner", r.name), F("task", entry.id))

			case StateDone:
				if !out.HasValue {
					return ErrCompletedWithoutValue
				}
				entry.task.Cleanup()
				r.completed++
				r.metrics.RecordTaskCompleted(r.name)
				r.logger.Debug("task completed",
					F("runner", r.name), F("task", entry.id))
			}
		}

		r.sleeping.drainInto(r.pending)

		r.metrics.RecordQueueDepth(r.name, queuePending, r.pending.len())
		r.metrics.RecordQueueDepth(r.name, queueActive, r.active.len())
		r.metrics.RecordQueueDepth(r.name, queueSleeping, r.sleeping.len())
		r.metrics.RecordSweep(r.name, time.Since(sweepStart))
	}
	return nil
}

// Shutdown marks the runner as closed and cleans up every task still held in
// any queue exactly once. Safe to call repeatedly; new tasks are rejected
// afterwards.
func (r *PollRunner[T]) Shutdown() {
	if r.closed {
		return
	}
	r.closed = true

	for _, q := range []*taskQueue[T]{r.active, r.pending, r.sleeping} {
		for {
			entry, ok := q.popFront()
			if !ok {
				break
			}
			entry.task.Cleanup()
			r.metrics.RecordTaskDropped(r.name, dropReasonShutdown)
			r.logger.Debug("cleaned up abandoned task",
				F("runner", r.name), F("task", entry.id))
		}
	}
}

// IsClosed reports whether the runner has been shut down.
func (r *PollRunner[T]) IsClosed() bool {
	return r.closed
}

// Stats returns a point-in-time snapshot of the runner's state.
func (r *PollRunner[T]) Stats() RunnerStats {
	return RunnerStats{
		Name:      r.name,
		Type:      runnerTypePollRunner,
		Pending:   r.pending.len(),
		Active:    r.active.len(),
		Sleeping:  r.sleeping.len(),
		Completed: r.completed,
		Dropped:   r.dropped,
		Rejected:  r.rejected,
		Closed:    r.closed,
	}
}

// RecentPolls returns up to limit poll records, newest first.
func (r *PollRunner[T]) RecentPolls(limit int) []PollRecord {
	return r.history.recent(limit)
}

// LastPoll returns the most recent poll record, if any.
func (r *PollRunner[T]) LastPoll() (PollRecord, bool) {
	return r.history.last()
}
