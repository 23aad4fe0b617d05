package core

import "testing"

// TestPollOutcome_Constructors verifies the shape of each outcome kind
// Given: The four outcome constructors
// When: Each is invoked
// Then: State and value presence match the constructor's contract
func TestPollOutcome_Constructors(t *testing.T) {
	// Act and Assert - pending carries no value
	pending := Pending[int]()
	if pending.State != StatePending || pending.HasValue {
		t.Fatalf("Pending() = %+v, want pending without value", pending)
	}

	// Act and Assert - done always carries a value
	finished := Finished(42)
	if finished.State != StateDone || !finished.HasValue || finished.Value != 42 {
		t.Fatalf("Finished(42) = %+v, want done with value 42", finished)
	}

	// Act and Assert - waiting may carry a value
	withValue := WaitingWith(7)
	if withValue.State != StateWaiting || !withValue.HasValue || withValue.Value != 7 {
		t.Fatalf("WaitingWith(7) = %+v, want waiting with value 7", withValue)
	}

	// Act and Assert - waiting may carry no value
	without := Waiting[int]()
	if without.State != StateWaiting || without.HasValue {
		t.Fatalf("Waiting() = %+v, want waiting without value", without)
	}
}

// TestPollState_String verifies log and metric labels for every state
// Given: All poll states plus an out-of-range value
// When: String is called
// Then: Each state maps to its stable label
func TestPollState_String(t *testing.T) {
	cases := []struct {
		state PollState
		want  string
	}{
		{StatePending, "pending"},
		{StateDone, "done"},
		{StateWaiting, "waiting"},
		{PollState(99), "unknown"},
	}

	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("PollState(%d).String() = %q, want %q", c.state, got, c.want)
		}
	}
}

// TestTaskID_GenerateAndZero verifies TaskID identity behavior
// Given: A zero TaskID and a generated TaskID
// When: IsZero and String are called
// Then: Zero ID reports true and generated IDs are unique and non-empty
func TestTaskID_GenerateAndZero(t *testing.T) {
	// Arrange
	var zero TaskID

	// Assert
	if !zero.IsZero() {
		t.Fatal("zero TaskID should report IsZero() == true")
	}

	// Act
	a := GenerateTaskID()
	b := GenerateTaskID()

	// Assert
	if a.IsZero() || a.String() == "" {
		t.Fatal("generated TaskID should be non-zero with non-empty string")
	}
	if a == b {
		t.Fatal("two generated TaskIDs should not collide")
	}
}
