package core

// =============================================================================
// PollState: Progress states reported by a single poll step
// =============================================================================

// PollState describes how far a task progressed during one poll step.
type PollState int

const (
	// StatePending means the task made no observable progress and should be
	// polled again on a later sweep.
	StatePending PollState = iota

	// StateDone means the task reached its terminal state. A Done outcome
	// must always carry a value; a Done outcome without one is a defect.
	StateDone

	// StateWaiting means the task is not ready and may or may not need to be
	// revisited. There is no waker mechanism: schedulers either treat this as
	// fatal or re-queue the task after a one-sweep delay.
	StateWaiting
)

// String returns a human-readable form of the state for logs and metrics.
func (s PollState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDone:
		return "done"
	case StateWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// =============================================================================
// PollOutcome: The tagged result of one poll step
// =============================================================================

// PollOutcome is the result of a single successful poll. Value is only
// meaningful when HasValue is true. StateDone outcomes are required to carry
// a value; observers surface ErrCompletedWithoutValue when they do not.
type PollOutcome[T any] struct {
	State    PollState
	Value    T
	HasValue bool
}

// Pending creates an outcome with no value that requests a re-poll.
func Pending[T any]() PollOutcome[T] {
	return PollOutcome[T]{State: StatePending}
}

// Finished creates a terminal outcome carrying the task's result.
func Finished[T any](value T) PollOutcome[T] {
	return PollOutcome[T]{State: StateDone, Value: value, HasValue: true}
}

// WaitingWith creates a waiting outcome that carries a value. Schedulers that
// support parking keep such tasks around for a later re-poll.
func WaitingWith[T any](value T) PollOutcome[T] {
	return PollOutcome[T]{State: StateWaiting, Value: value, HasValue: true}
}

// Waiting creates a waiting outcome with no value.
func Waiting[T any]() PollOutcome[T] {
	return PollOutcome[T]{State: StateWaiting}
}
