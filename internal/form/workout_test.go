package form

import (
	"context"
	"testing"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/model"
)

type fakeWorkoutSubmitter struct {
	calls []api.WorkoutDraft
	entry model.WorkoutLogEntry
	err   error
}

func (s *fakeWorkoutSubmitter) LogWorkout(ctx context.Context, draft api.WorkoutDraft) (model.WorkoutLogEntry, error) {
	s.calls = append(s.calls, draft)
	if s.err != nil {
		return model.WorkoutLogEntry{}, s.err
	}
	return s.entry, nil
}

func TestWorkoutSubmitCoercesOptionals(t *testing.T) {
	submitter := &fakeWorkoutSubmitter{entry: model.WorkoutLogEntry{ExerciseName: "Squats"}}
	f := NewWorkoutForm(submitter)
	f.SetExercise("e3")
	f.SetDuration("25")
	f.SetSets("3")
	f.SetWeight("60.5")

	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(submitter.calls) != 1 {
		t.Fatalf("expected one submission, got %d", len(submitter.calls))
	}
	draft := submitter.calls[0]
	if draft.DurationMin != 25 {
		t.Fatalf("expected coerced duration, got %d", draft.DurationMin)
	}
	if draft.Sets == nil || *draft.Sets != 3 {
		t.Fatalf("expected sets pointer 3, got %+v", draft.Sets)
	}
	if draft.WeightKg == nil || *draft.WeightKg != 60.5 {
		t.Fatalf("expected weight pointer 60.5, got %+v", draft.WeightKg)
	}
	if draft.Reps != nil || draft.Notes != nil {
		t.Fatalf("absent optionals must stay nil, got reps=%v notes=%v", draft.Reps, draft.Notes)
	}
	exerciseID, duration, sets, reps, weight, notes := f.Buffer()
	if exerciseID != "" || duration != "" || sets != "" || reps != "" || weight != "" || notes != "" {
		t.Fatalf("buffer should be cleared after success, got %q %q %q %q %q %q",
			exerciseID, duration, sets, reps, weight, notes)
	}
}

func TestWorkoutSubmitRequiresExerciseAndDuration(t *testing.T) {
	submitter := &fakeWorkoutSubmitter{}
	f := NewWorkoutForm(submitter)
	f.SetExercise("e1")

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected local-incomplete error")
	}
	if len(submitter.calls) != 0 {
		t.Fatal("incomplete input must not reach the network")
	}
}

func TestWorkoutSubmitFailureKeepsBuffer(t *testing.T) {
	submitter := &fakeWorkoutSubmitter{err: &api.Error{StatusCode: 404, Detail: "Exercise not found"}}
	f := NewWorkoutForm(submitter)
	f.SetExercise("bogus")
	f.SetDuration("30")
	f.SetSets("3")
	f.SetReps("12")
	f.SetWeight("60.5")
	f.SetNotes("tempo work")

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected submit failure")
	}
	if f.Phase() != PhaseFailed {
		t.Fatalf("expected failed phase, got %v", f.Phase())
	}
	if f.Message() != "Exercise not found" {
		t.Fatalf("expected verbatim service message, got %q", f.Message())
	}
	exerciseID, duration, sets, reps, weight, notes := f.Buffer()
	if exerciseID != "bogus" || duration != "30" || sets != "3" || reps != "12" || weight != "60.5" || notes != "tempo work" {
		t.Fatalf("every buffered field must be preserved, got %q %q %q %q %q %q",
			exerciseID, duration, sets, reps, weight, notes)
	}
}

func TestWorkoutSubmitRejectsNonNumericSets(t *testing.T) {
	submitter := &fakeWorkoutSubmitter{}
	f := NewWorkoutForm(submitter)
	f.SetExercise("e1")
	f.SetDuration("30")
	f.SetSets("three")

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected coercion error")
	}
	if len(submitter.calls) != 0 {
		t.Fatal("bad sets must not reach the network")
	}
}
