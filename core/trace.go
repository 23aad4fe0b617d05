package core

import "slices"

// =============================================================================
// Recorder: In-memory lifecycle event recorder
// =============================================================================

// Recorder accumulates task lifecycle events and observed terminal values in
// order. It is the instrumentation counterpart of the Logger interface:
// where Logger formats and forwards, Recorder keeps the raw sequence so
// callers and tests can assert on ordering and results.
type Recorder[T any] struct {
	events  []string
	results []T
}

// NewRecorder creates an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// RecordEvent appends a lifecycle event.
func (r *Recorder[T]) RecordEvent(event string) {
	r.events = append(r.events, event)
}

// RecordResult appends an observed terminal value.
func (r *Recorder[T]) RecordResult(value T) {
	r.results = append(r.results, value)
}

// Events returns a copy of the recorded event sequence.
func (r *Recorder[T]) Events() []string {
	return slices.Clone(r.events)
}

// Results returns a copy of the observed terminal values in order.
func (r *Recorder[T]) Results() []T {
	return slices.Clone(r.results)
}

// HasEvent reports whether event was recorded.
func (r *Recorder[T]) HasEvent(event string) bool {
	return slices.Contains(r.events, event)
}

// EventIndex returns the position of the first occurrence of event, or -1.
func (r *Recorder[T]) EventIndex(event string) int {
	return slices.Index(r.events, event)
}

// =============================================================================
// Traced: Instrumented task wrapper
// =============================================================================

// Traced wraps an inner task and records its lifecycle into a Recorder:
// "Creating <label>" at construction, "Polling <label>" per poll,
// "Destroying <label>" at cleanup, plus the terminal value when the inner
// task completes. The wrapped task's outcomes and errors pass through
// unchanged.
type Traced[T any] struct {
	inner    Task[T]
	label    string
	recorder *Recorder[T]
}

// NewTraced wraps inner, recording the creation event immediately.
func NewTraced[T any](inner Task[T], label string, recorder *Recorder[T]) *Traced[T] {
	recorder.RecordEvent("Creating " + label)
	return &Traced[T]{
		inner:    inner,
		label:    label,
		recorder: recorder,
	}
}

// Poll records the poll event, delegates, and captures a terminal value.
func (t *Traced[T]) Poll() (PollOutcome[T], error) {
	t.recorder.RecordEvent("Polling " + t.label)

	out, err := t.inner.Poll()
	if err != nil {
		return out, err
	}

	if out.State == StateDone && out.HasValue {
		t.recorder.RecordResult(out.Value)
	}
	return out, nil
}

// Cleanup records the destruction event and delegates.
func (t *Traced[T]) Cleanup() {
	t.recorder.RecordEvent("Destroying " + t.label)
	t.inner.Cleanup()
}
