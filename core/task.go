package core

import "github.com/google/uuid"

// Task is the unit of incrementally-advanced computation. A scheduler polls a
// task until it reports StateDone, then retires it with Cleanup.
//
// Poll advances internal state by one step. Repeated StatePending results are
// safe; polling again after a StateDone result was returned is a contract
// violation and fails with ErrPolledAfterCompletion. Side effects are
// confined to the task's own state and any owned sub-task.
//
// Cleanup releases resources. It is issued by the scheduler exactly once per
// task in practice, either when the task completes or when the scheduler is
// torn down with the task still queued (abandonment). Implementations must
// not assume Cleanup is always reached, and no task may be polled after it.
type Task[T any] interface {
	Poll() (PollOutcome[T], error)
	Cleanup()
}

// Runner drives a collection of scheduled tasks to completion.
//
// A scheduled task is owned by the runner until it is retired or the runner
// is shut down; ownership is single-writer at all times.
type Runner[T any] interface {
	Schedule(task Task[T])
	IsEmpty() bool
	Run() error
}

// =============================================================================
// TaskID: Scheduler-stamped task identity
// =============================================================================

// TaskID identifies a scheduled task in logs, poll history, and stats. It is
// stamped by the runner at schedule time and carries no scheduling semantics.
type TaskID string

// GenerateTaskID returns a new unique TaskID.
func GenerateTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// String returns the ID as a plain string.
func (id TaskID) String() string {
	return string(id)
}

// IsZero reports whether the ID was never generated.
func (id TaskID) IsZero() bool {
	return id == ""
}
