package core

import "time"

// Queue names used for depth metrics.
const (
	queueActive   = "active"
	queuePending  = "pending"
	queueSleeping = "sleeping"
)

// Drop reasons used for logs, stats, and metrics.
const (
	dropReasonClosed      = "runner_closed"
	dropReasonNoWakeValue = "waiting_without_value"
	dropReasonShutdown    = "shutdown"
)

// Runner type names reported in stats snapshots.
const (
	runnerTypeSimpleRunner = "SimpleRunner"
	runnerTypePollRunner   = "PollRunner"
)

// pollEntry performs one poll step for a queued task, feeding the runner's
// logger, metrics, and poll history. Errors propagate verbatim to the
// caller's run loop.
func pollEntry[T any](
	runnerName string,
	entry taskEntry[T],
	logger Logger,
	metrics Metrics,
	history *pollHistory,
) (PollOutcome[T], error) {
	startedAt := time.Now()
	out, err := entry.task.Poll()
	duration := time.Since(startedAt)

	history.add(PollRecord{
		TaskID:   entry.id,
		Runner:   runnerName,
		State:    out.State,
		HasValue: out.HasValue,
		Err:      err,
		At:       startedAt,
		Duration: duration,
	})

	if err != nil {
		logger.Error("task poll failed",
			F("runner", runnerName), F("task", entry.id), F("error", err))
		return out, err
	}

	metrics.RecordPoll(runnerName, out.State, duration)
	logger.Debug("polled task",
		F("runner", runnerName), F("task", entry.id), F("state", out.State))
	return out, nil
}
