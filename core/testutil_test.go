package core

// Test fixtures shared by the core tests. All loop-driving fixtures replay a
// bounded outcome script, so no test can spin a run loop forever.

// scriptTask replays a fixed sequence of poll outcomes, then fails with
// ErrPolledAfterCompletion like the primitives do.
type scriptTask struct {
	outcomes []PollOutcome[int]
	polls    int
	cleanups int
}

func (t *scriptTask) Poll() (PollOutcome[int], error) {
	if t.polls >= len(t.outcomes) {
		return PollOutcome[int]{}, ErrPolledAfterCompletion
	}
	out := t.outcomes[t.polls]
	t.polls++
	return out, nil
}

func (t *scriptTask) Cleanup() {
	t.cleanups++
}

// failingTask fails every poll with the configured error.
type failingTask struct {
	err      error
	polls    int
	cleanups int
}

func (t *failingTask) Poll() (PollOutcome[int], error) {
	t.polls++
	return PollOutcome[int]{}, t.err
}

func (t *failingTask) Cleanup() {
	t.cleanups++
}

// quietConfig keeps scheduler diagnostics out of test output.
func quietConfig() *RunnerConfig {
	return &RunnerConfig{Logger: NewNoOpLogger()}
}
