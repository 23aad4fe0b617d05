package pollrunner

import "github.com/mwarq/go-poll-runner/core"

// Re-export commonly used types from the core package for convenience.
// This allows users to import only the pollrunner package for most use cases.

// Task is the unit of incrementally-advanced computation
type Task[T any] = core.Task[T]

// Runner drives scheduled tasks to completion
type Runner[T any] = core.Runner[T]

// PollOutcome is the tagged result of one poll step
type PollOutcome[T any] = core.PollOutcome[T]

// PollState describes the progress reported by a poll step
type PollState = core.PollState

// TaskID identifies a scheduled task in logs and stats
type TaskID = core.TaskID

// SimpleRunner is the round-robin scheduler without parking support
type SimpleRunner[T any] = core.SimpleRunner[T]

// PollRunner is the three-queue scheduler with one-sweep parking
type PollRunner[T any] = core.PollRunner[T]

// RunnerConfig configures a runner's logger, metrics, and history
type RunnerConfig = core.RunnerConfig

// Logger is the pluggable diagnostic sink
type Logger = core.Logger

// Recorder accumulates task lifecycle events and terminal values
type Recorder[T any] = core.Recorder[T]

// Traced is the instrumented task wrapper feeding a Recorder
type Traced[T any] = core.Traced[T]

// Poll state constants
const (
	StatePending = core.StatePending
	StateDone    = core.StateDone
	StateWaiting = core.StateWaiting
)

// Error kinds
var (
	ErrSleepingUnsupported   = core.ErrSleepingUnsupported
	ErrPolledAfterCompletion = core.ErrPolledAfterCompletion
	ErrCompletedWithoutValue = core.ErrCompletedWithoutValue
)

// Convenience constructors
var DefaultRunnerConfig = core.DefaultRunnerConfig

// NewDone creates a task that completes with value on its first poll.
func NewDone[T any](value T) *core.Done[T] {
	return core.NewDone(value)
}

// NewFailed creates a task that fails with err on its first poll.
func NewFailed[T any](err error) *core.Failed[T] {
	return core.NewFailed[T](err)
}

// NewChain creates a sequencing combinator over first and a single-use
// transform.
func NewChain[T, U any](first core.Task[T], transform func(T) core.Task[U]) *core.Chain[T, U] {
	return core.NewChain(first, transform)
}

// NewTraced wraps a task with lifecycle instrumentation.
func NewTraced[T any](inner core.Task[T], label string, recorder *core.Recorder[T]) *core.Traced[T] {
	return core.NewTraced(inner, label, recorder)
}

// NewRecorder creates an empty lifecycle recorder.
func NewRecorder[T any]() *core.Recorder[T] {
	return core.NewRecorder[T]()
}

// NewSimpleRunner creates a SimpleRunner with default sinks.
func NewSimpleRunner[T any]() *core.SimpleRunner[T] {
	return core.NewSimpleRunner[T]()
}

// NewSimpleRunnerWithConfig creates a SimpleRunner with the given config.
func NewSimpleRunnerWithConfig[T any](config *core.RunnerConfig) *core.SimpleRunner[T] {
	return core.NewSimpleRunnerWithConfig[T](config)
}

// NewPollRunner creates a PollRunner with default sinks.
func NewPollRunner[T any]() *core.PollRunner[T] {
	return core.NewPollRunner[T]()
}

// NewPollRunnerWithConfig creates a PollRunner with the given config.
func NewPollRunnerWithConfig[T any](config *core.RunnerConfig) *core.PollRunner[T] {
	return core.NewPollRunnerWithConfig[T](config)
}
