// Package demo contains the demonstration callers for the scheduling core.
// Each scenario constructs tasks, schedules them on a runner, drives the run
// loop to completion, and verifies the observable outcome. The scenarios are
// external callers of the core: they exercise the schedulers, they are not
// part of them.
package demo

import (
	"fmt"

	"github.com/mwarq/go-poll-runner/core"
)

// RunSimple schedules an immediate task and a two-stage chain on a
// SimpleRunner and drives both to completion.
func RunSimple(logger core.Logger) error {
	runner := core.NewSimpleRunnerWithConfig[int](&core.RunnerConfig{Logger: logger})
	runner.SetName("demo-simple")

	runner.Schedule(core.NewDone(42))
	runner.Schedule(core.NewChain(core.NewDone(10), func(x int) core.Task[int] {
		return core.NewDone(x + 5)
	}))

	if err := runner.Run(); err != nil {
		return err
	}

	logger.Info("simple runner completed successfully",
		core.F("completed", runner.Stats().Completed))
	return nil
}

// RunPoll schedules two immediate tasks and a nested chain on a PollRunner
// and drives all of them to completion.
func RunPoll(logger core.Logger) error {
	runner := core.NewPollRunnerWithConfig[int](&core.RunnerConfig{Logger: logger})
	runner.SetName("demo-poll")

	runner.Schedule(core.NewDone(1))
	runner.Schedule(core.NewDone(2))
	runner.Schedule(core.NewChain(core.NewDone(3), func(x int) core.Task[int] {
		return core.NewChain(core.NewDone(x+1), func(y int) core.Task[int] {
			return core.NewDone(y * 2)
		})
	}))

	if err := runner.Run(); err != nil {
		return err
	}

	logger.Info("poll runner completed successfully",
		core.F("completed", runner.Stats().Completed))
	return nil
}

// RunSequential schedules two traced tasks on a PollRunner and verifies both
// their results and the order of their lifecycle events.
func RunSequential(logger core.Logger) error {
	recorder := core.NewRecorder[int]()
	runner := core.NewPollRunnerWithConfig[int](&core.RunnerConfig{Logger: logger})
	runner.SetName("demo-sequential")

	runner.Schedule(core.NewTraced(core.NewDone(5), "Future1", recorder))
	runner.Schedule(core.NewTraced(core.NewDone(10), "Future2", recorder))

	if err := runner.Run(); err != nil {
		return err
	}

	results := recorder.Results()
	if len(results) != 2 || results[0] != 5 || results[1] != 10 {
		return fmt.Errorf("unexpected results %v, want [5 10]", results)
	}
	for _, event := range []string{
		"Creating Future1", "Creating Future2",
		"Polling Future1", "Polling Future2",
	} {
		if !recorder.HasEvent(event) {
			return fmt.Errorf("missing lifecycle event %q", event)
		}
	}

	logger.Info("sequential execution completed",
		core.F("events", len(recorder.Events())), core.F("results", results))
	return nil
}

// RunChained schedules a chain of two traced tasks and verifies the final
// result reflects both stages.
func RunChained(logger core.Logger) error {
	recorder := core.NewRecorder[int]()
	runner := core.NewPollRunnerWithConfig[int](&core.RunnerConfig{Logger: logger})
	runner.SetName("demo-chained")

	initial := core.NewTraced(core.NewDone(5), "Initial", recorder)
	runner.Schedule(core.NewChain[int, int](initial, func(x int) core.Task[int] {
		return core.NewTraced(core.NewDone(x*2), "Chained", recorder)
	}))

	if err := runner.Run(); err != nil {
		return err
	}

	results := recorder.Results()
	if len(results) == 0 || results[len(results)-1] != 10 {
		return fmt.Errorf("unexpected final result in %v, want 10", results)
	}

	logger.Info("chained futures completed",
		core.F("events", len(recorder.Events())), core.F("results", results))
	return nil
}
