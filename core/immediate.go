package core

// =============================================================================
// Done: Immediately-completing primitive task
// =============================================================================

// Done is a task holding exactly one value. Its first poll completes with
// that value; any later poll is a contract violation.
type Done[T any] struct {
	value T
	has   bool
}

// NewDone creates a task that completes with value on its first poll.
func NewDone[T any](value T) *Done[T] {
	return &Done[T]{value: value, has: true}
}

// Poll returns the held value as a terminal outcome and clears it.
func (d *Done[T]) Poll() (PollOutcome[T], error) {
	if !d.has {
		return PollOutcome[T]{}, ErrPolledAfterCompletion
	}

	value := d.value
	var zero T
	d.value = zero
	d.has = false

	return Finished(value), nil
}

// Cleanup is a no-op; the value was either handed out or is dropped with the
// task itself.
func (d *Done[T]) Cleanup() {}

// =============================================================================
// Failed: Immediately-failing primitive task
// =============================================================================

// Failed is a task holding exactly one error. Its first poll propagates that
// error as a failure result, not wrapped in an outcome.
type Failed[T any] struct {
	err error
}

// NewFailed creates a task that fails with err on its first poll.
func NewFailed[T any](err error) *Failed[T] {
	return &Failed[T]{err: err}
}

// Poll returns the held error and clears it.
func (f *Failed[T]) Poll() (PollOutcome[T], error) {
	if f.err == nil {
		return PollOutcome[T]{}, ErrPolledAfterCompletion
	}

	err := f.err
	f.err = nil

	return PollOutcome[T]{}, err
}

// Cleanup is a no-op.
func (f *Failed[T]) Cleanup() {}
