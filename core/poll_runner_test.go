package core

import (
	"errors"
	"testing"
)

// TestPollRunner_ConvergesOverImmediateTasks verifies basic convergence
// Given: Five immediately-completing tasks
// When: Run drives them to completion
// Then: Run returns nil, all queues empty, and each task is cleaned up once
func TestPollRunner_ConvergesOverImmediateTasks(t *testing.T) {
	// Arrange
	runner := NewPollRunnerWithConfig[int](quietConfig())
	tasks := make([]*scriptTask, 5)
	for i := range tasks {
		tasks[i] = &scriptTask{outcomes: []PollOutcome[int]{Finished(i)}}
		runner.Schedule(tasks[i])
	}

	// Act
	err := runner.Run()

	// Assert
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if !runner.IsEmpty() {
		t.Fatal("runner should be empty after Run")
	}
	for i, task := range tasks {
		if task.cleanups != 1 {
			t.Errorf("task %d cleanups = %d, want exactly 1", i, task.cleanups)
		}
	}
	if stats := runner.Stats(); stats.Completed != 5 {
		t.Fatalf("Stats().Completed = %d, want 5", stats.Completed)
	}
}

// TestPollRunner_SleepingTasksReturnNextSweep verifies the parking cycle
// Given: A task that waits once with a wake value before finishing
// When: Run is invoked
// Then: The task sleeps for one sweep, is re-queued, and completes
func TestPollRunner_SleepingTasksReturnNextSweep(t *testing.T) {
	// Arrange
	runner := NewPollRunnerWithConfig[int](quietConfig())
	sleeper := &scriptTask{outcomes: []PollOutcome[int]{WaitingWith(7), Finished(7)}}
	runner.Schedule(sleeper)

	// Act
	err := runner.Run()

	// Assert
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if sleeper.polls != 2 {
		t.Fatalf("sleeper polls = %d, want 2 (one wait, one completion)", sleeper.polls)
	}
	if sleeper.cleanups != 1 {
		t.Fatalf("sleeper cleanups = %d, want 1", sleeper.cleanups)
	}
}

// TestPollRunner_SleepDelaysByOneSweep verifies sleeping ordering
// Given: A sleeper scheduled ahead of a pending-once task
// When: Run is invoked
// Then: The sleeper is polled again only after the next sweep begins,
//	behind the tasks that merely reported pending
func TestPollRunner_SleepDelaysByOneSweep(t *testing.T) {
	// Arrange
	recorder := NewRecorder[int]()
	runner := NewPollRunnerWithConfig[int](quietConfig())
	runner.Schedule(NewTraced[int](
		&scriptTask{outcomes: []PollOutcome[int]{WaitingWith(1), Finished(1)}}, "sleeper", recorder))
	runner.Schedule(NewTraced[int](
		&scriptTask{outcomes: []PollOutcome[int]{Pending[int](), Finished(2)}}, "spinner", recorder))

	// Act
	if err := runner.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	// Assert - second sweep polls the re-pended spinner before the woken sleeper
	var polls []string
	for _, e := range recorder.Events() {
		if e == "Polling sleeper" || e == "Polling spinner" {
			polls = append(polls, e)
		}
	}
	want := []string{"Polling sleeper", "Polling spinner", "Polling spinner", "Polling sleeper"}
	if len(polls) != len(want) {
		t.Fatalf("poll order = %v, want %v", polls, want)
	}
	for i := range want {
		if polls[i] != want[i] {
			t.Fatalf("poll order = %v, want %v", polls, want)
		}
	}
}

// TestPollRunner_DropsWaitingWithoutValue verifies the silent-drop edge case
// Given: A task that reports waiting with no wake value
// When: Run is invoked
// Then: The task vanishes without cleanup, Run still succeeds, and the
//	drop is counted
func TestPollRunner_DropsWaitingWithoutValue(t *testing.T) {
	// Arrange
	runner := NewPollRunnerWithConfig[int](quietConfig())
	dropped := &scriptTask{outcomes: []PollOutcome[int]{Waiting[int]()}}
	survivor := &scriptTask{outcomes: []PollOutcome[int]{Finished(1)}}
	runner.Schedule(dropped)
	runner.Schedule(survivor)

	// Act
	err := runner.Run()

	// Assert
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if dropped.polls != 1 {
		t.Fatalf("dropped task polls = %d, want 1", dropped.polls)
	}
	if dropped.cleanups != 0 {
		t.Fatalf("dropped task cleanups = %d, the drop path performs no cleanup", dropped.cleanups)
	}
	if survivor.cleanups != 1 {
		t.Fatalf("survivor cleanups = %d, want 1", survivor.cleanups)
	}
	stats := runner.Stats()
	if stats.Dropped != 1 || stats.Completed != 1 {
		t.Fatalf("Stats() = %+v, want Dropped=1 Completed=1", stats)
	}
}

// TestPollRunner_ErrorAbortsRun verifies fail-fast error propagation
// Given: A failing task scheduled ahead of a healthy one
// When: Run is invoked and Shutdown is called afterwards
// Then: The error propagates unchanged, the failing task is abandoned
//	without cleanup, and Shutdown reclaims the still-queued task
func TestPollRunner_ErrorAbortsRun(t *testing.T) {
	// Arrange
	boom := errors.New("task failure")
	runner := NewPollRunnerWithConfig[int](quietConfig())
	failing := &failingTask{err: boom}
	queued := &scriptTask{outcomes: []PollOutcome[int]{Finished(1)}}
	runner.Schedule(failing)
	runner.Schedule(queued)

	// Act
	err := runner.Run()

	// Assert
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want the task's error unchanged", err)
	}
	if failing.cleanups != 0 {
		t.Fatal("the abort path must not clean up the failing task")
	}
	if queued.polls != 0 {
		t.Fatalf("queued task polls = %d, want 0", queued.polls)
	}

	// Act - reclaim what the aborted run left behind
	runner.Shutdown()

	// Assert
	if queued.cleanups != 1 {
		t.Fatalf("queued task cleanups = %d, want 1 after Shutdown", queued.cleanups)
	}
	if failing.cleanups != 0 {
		t.Fatal("the already-popped failing task stays abandoned")
	}
}

// TestPollRunner_DoneWithoutValueIsAnError verifies the completion invariant
func TestPollRunner_DoneWithoutValueIsAnError(t *testing.T) {
	// Arrange
	runner := NewPollRunnerWithConfig[int](quietConfig())
	runner.Schedule(&scriptTask{outcomes: []PollOutcome[int]{{State: StateDone}}})

	// Act
	err := runner.Run()

	// Assert
	if !errors.Is(err, ErrCompletedWithoutValue) {
		t.Fatalf("Run() error = %v, want ErrCompletedWithoutValue", err)
	}
}

// TestPollRunner_ScheduleAfterShutdownIsRejected verifies the closed gate
func TestPollRunner_ScheduleAfterShutdownIsRejected(t *testing.T) {
	// Arrange
	runner := NewPollRunnerWithConfig[int](quietConfig())
	runner.Shutdown()

	// Act
	late := &scriptTask{outcomes: []PollOutcome[int]{Finished(1)}}
	runner.Schedule(late)

	// Assert
	if !runner.IsEmpty() {
		t.Fatal("late task must not be queued on a closed runner")
	}
	if stats := runner.Stats(); stats.Rejected != 1 {
		t.Fatalf("Stats().Rejected = %d, want 1", stats.Rejected)
	}
}

// TestPollRunner_MixedImmediateAndChainedTasks verifies driving a plain
// task alongside a two-stage chain to completion in one run
// Given: A traced immediate task and a traced chain of two stages
// When: Run drives the runner empty
// Then: Both final values are recorded and every traced task is destroyed
func TestPollRunner_MixedImmediateAndChainedTasks(t *testing.T) {
	// Arrange
	recorder := NewRecorder[int]()
	runner := NewPollRunnerWithConfig[int](quietConfig())
	runner.Schedule(NewTraced[int](NewDone(42), "Immediate", recorder))
	runner.Schedule(NewTraced[int](
		NewChain(NewDone(10), func(x int) Task[int] { return NewDone(x + 5) }),
		"Chained", recorder))

	// Act
	if err := runner.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	// Assert
	results := recorder.Results()
	if len(results) != 2 || results[0] != 42 || results[1] != 15 {
		t.Fatalf("Results() = %v, want [42 15]", results)
	}
	for _, label := range []string{"Immediate", "Chained"} {
		if !recorder.HasEvent("Destroying " + label) {
			t.Errorf("missing destruction event for %s", label)
		}
	}
}

// TestPollRunner_ChainOfTracedStages verifies stage lifecycle ordering
// Given: A chain whose stages are themselves traced tasks
// When: Run drives the chain to completion
// Then: The final result is the transformed value, the second stage is
//	created only after the first is polled, and creation precedes
//	polling for each stage
func TestPollRunner_ChainOfTracedStages(t *testing.T) {
	// Arrange
	recorder := NewRecorder[int]()
	runner := NewPollRunnerWithConfig[int](quietConfig())
	runner.Schedule(NewChain(
		NewTraced[int](NewDone(5), "Initial", recorder),
		func(x int) Task[int] { return NewTraced[int](NewDone(x*2), "Chained", recorder) },
	))

	// Act
	if err := runner.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	// Assert
	results := recorder.Results()
	if len(results) != 2 || results[1] != 10 {
		t.Fatalf("Results() = %v, want the chain to finish with 10", results)
	}
	for _, label := range []string{"Initial", "Chained"} {
		created := recorder.EventIndex("Creating " + label)
		polled := recorder.EventIndex("Polling " + label)
		if created < 0 || polled < 0 || created >= polled {
			t.Errorf("%s lifecycle out of order: created=%d polled=%d", label, created, polled)
		}
	}
	if recorder.EventIndex("Creating Chained") < recorder.EventIndex("Polling Initial") {
		t.Error("second stage must not exist before the first stage is polled")
	}
	if !recorder.HasEvent("Destroying Initial") {
		t.Error("first stage must be destroyed at the stage transition")
	}
}
