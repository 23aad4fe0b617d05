package core

// chainState tags which variant of the chain state machine is live. Exactly
// one variant's payload is valid at a time: chainFirst owns first+transform,
// chainSecond owns second, chainFinished owns nothing.
type chainState int

const (
	chainFirst chainState = iota
	chainSecond
	chainFinished
)

// Chain runs a first task to completion, feeds its output into a single-use
// transform producing a second task, then runs that to completion. The two
// sub-tasks are never held simultaneously: the first task and the transform
// are released as soon as the transition to the second stage happens, so the
// transform runs exactly once with ownership of the first output.
//
// The chain does not self-transition to a terminal state when its second
// stage completes; like every other task it stays pollable-looking until the
// scheduler retires it with Cleanup. Cleanup does move the chain to its
// finished state, so a poll after cleanup fails loudly instead of touching a
// released sub-task.
type Chain[T, U any] struct {
	state     chainState
	first     Task[T]
	transform func(T) Task[U]
	second    Task[U]
}

// NewChain creates a chain over first and a single-use transform.
func NewChain[T, U any](first Task[T], transform func(T) Task[U]) *Chain[T, U] {
	return &Chain[T, U]{
		state:     chainFirst,
		first:     first,
		transform: transform,
	}
}

// Poll advances the chain by one step.
//
// In the first stage, Pending and Waiting results from the inner task keep
// the chain in place; Pending masks any inner value and Waiting is forwarded
// with no value (a wake hint from a nested waiting task is not propagated).
// Completion of the first task triggers the transition: the transform
// consumes the output, the first task is cleaned up, and the chain reports
// Pending because the second task has not been polled yet this call.
//
// In the second stage the inner outcome or error propagates verbatim.
func (c *Chain[T, U]) Poll() (PollOutcome[U], error) {
	switch c.state {
	case chainFirst:
		out, err := c.first.Poll()
		if err != nil {
			return PollOutcome[U]{}, err
		}

		switch out.State {
		case StatePending:
			return Pending[U](), nil

		case StateWaiting:
			return Waiting[U](), nil

		case StateDone:
			if !out.HasValue {
				return PollOutcome[U]{}, ErrCompletedWithoutValue
			}
			// Transition: check the first-stage payload out, write the
			// second-stage payload back. The transform is moved out and can
			// never run twice.
			first, transform := c.first, c.transform
			c.first, c.transform = nil, nil
			c.second = transform(out.Value)
			c.state = chainSecond
			first.Cleanup()
			return Pending[U](), nil

		default:
			return PollOutcome[U]{}, ErrCompletedWithoutValue
		}

	case chainSecond:
		return c.second.Poll()

	default:
		return PollOutcome[U]{}, ErrPolledAfterCompletion
	}
}

// Cleanup releases whichever inner task is currently held and retires the
// chain. In the finished state it is a no-op.
func (c *Chain[T, U]) Cleanup() {
	switch c.state {
	case chainFirst:
		c.first.Cleanup()
		c.first = nil
		c.transform = nil
	case chainSecond:
		c.second.Cleanup()
		c.second = nil
	}
	c.state = chainFinished
}
