package core

import "errors"

// Error kinds surfaced by tasks and runners. All of them are fatal to the
// run that observes them: runners abort on the first error and perform no
// retry or partial isolation. Errors produced by user task implementations
// propagate unchanged through combinators and runner loops.
var (
	// ErrSleepingUnsupported is returned by a runner that cannot park tasks
	// when a scheduled task reports StateWaiting.
	ErrSleepingUnsupported = errors.New("task reported waiting but runner does not support sleeping")

	// ErrPolledAfterCompletion is returned when Poll is invoked on a task
	// that already reached its terminal state. Correct callers never hit it.
	ErrPolledAfterCompletion = errors.New("task polled after completion")

	// ErrCompletedWithoutValue is returned when a StateDone outcome carries
	// no value, violating the Done-always-carries-a-value invariant.
	ErrCompletedWithoutValue = errors.New("task completed without a value")
)
