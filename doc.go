// Package pollrunner provides a minimal cooperative-scheduling core for Go:
// a poll-based task abstraction plus two scheduler variants that drive
// collections of tasks to completion.
//
// A task advances one step per poll and reports pending, waiting, or done;
// schedulers repeatedly poll every scheduled task until each reaches its
// terminal state, then retire it with a single cleanup call. Execution is
// strictly single-threaded and cooperative: there is no real suspension, no
// timers, and no waker mechanism.
//
// # Quick Start
//
// Build tasks from primitives and combinators, then hand them to a runner:
//
//	runner := pollrunner.NewPollRunner[int]()
//	runner.Schedule(pollrunner.NewDone(42))
//	runner.Schedule(pollrunner.NewChain(pollrunner.NewDone(10), func(x int) pollrunner.Task[int] {
//		return pollrunner.NewDone(x + 5)
//	}))
//	if err := runner.Run(); err != nil {
//		// first error aborts the whole run
//	}
//
// # Key Concepts
//
// Task: a unit of incrementally-advanced computation. Poll returns a
// PollOutcome (pending, waiting, or done-with-value) or an error; Cleanup is
// issued by the scheduler when the task is retired or abandoned.
//
// Chain: the sequencing combinator. It runs a first task to completion,
// feeds the output into a single-use transform producing a second task, and
// runs that to completion, never holding both sub-tasks at once.
//
// SimpleRunner: strict round-robin over one active sequence. It cannot park
// tasks, so any task that reports waiting aborts the run with
// ErrSleepingUnsupported.
//
// PollRunner: a three-queue scheduler (pending, active, sleeping). Tasks
// that report waiting with a value are parked for one sweep and then
// re-queued; there is no readiness check beyond that delay.
//
// # Observability
//
// Runners accept a RunnerConfig carrying a Logger and a Metrics sink; the
// observability/prometheus package adapts Metrics to Prometheus collectors.
// Recorder and Traced instrument individual tasks with ordered lifecycle
// events for tests and demos.
//
// The core types live in the core package; this package re-exports the
// common surface for convenience.
package pollrunner
