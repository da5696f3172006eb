package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/model"
)

type WorkoutSubmitter interface {
	LogWorkout(ctx context.Context, draft api.WorkoutDraft) (model.WorkoutLogEntry, error)
}

// WorkoutForm buffers workout-entry input with the same phase contract as
// NutritionForm. Sets, reps, weight, and notes are optional; when left blank
// they are submitted as absent, never as zero, so "no sets recorded" is
// distinguishable from "zero sets".
type WorkoutForm struct {
	submitter  WorkoutSubmitter
	ClearAfter time.Duration

	mu         sync.Mutex
	phase      Phase
	exerciseID string
	duration   string
	sets       string
	reps       string
	weight     string
	notes      string
	message    string
	gen        int
}

func NewWorkoutForm(submitter WorkoutSubmitter) *WorkoutForm {
	return &WorkoutForm{submitter: submitter, ClearAfter: DefaultClearAfter}
}

func (f *WorkoutForm) SetExercise(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exerciseID = strings.TrimSpace(id)
}

func (f *WorkoutForm) SetDuration(duration string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.duration = strings.TrimSpace(duration)
}

func (f *WorkoutForm) SetSets(sets string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets = strings.TrimSpace(sets)
}

func (f *WorkoutForm) SetReps(reps string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reps = strings.TrimSpace(reps)
}

func (f *WorkoutForm) SetWeight(weight string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weight = strings.TrimSpace(weight)
}

func (f *WorkoutForm) SetNotes(notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = strings.TrimSpace(notes)
}

func (f *WorkoutForm) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *WorkoutForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *WorkoutForm) Buffer() (exerciseID, duration, sets, reps, weight, notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exerciseID, f.duration, f.sets, f.reps, f.weight, f.notes
}

func (f *WorkoutForm) Submit(ctx context.Context) (model.WorkoutLogEntry, error) {
	f.mu.Lock()
	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return model.WorkoutLogEntry{}, fmt.Errorf("submission already in progress")
	}
	if f.exerciseID == "" || f.duration == "" {
		f.mu.Unlock()
		return model.WorkoutLogEntry{}, fmt.Errorf("select an exercise and enter a duration")
	}
	duration, err := strconv.Atoi(f.duration)
	if err != nil || duration <= 0 {
		f.mu.Unlock()
		return model.WorkoutLogEntry{}, fmt.Errorf("duration must be a positive number of minutes")
	}
	draft := api.WorkoutDraft{ExerciseID: f.exerciseID, DurationMin: duration}
	if f.sets != "" {
		v, err := strconv.Atoi(f.sets)
		if err != nil {
			f.mu.Unlock()
			return model.WorkoutLogEntry{}, fmt.Errorf("sets must be a whole number")
		}
		draft.Sets = &v
	}
	if f.reps != "" {
		v, err := strconv.Atoi(f.reps)
		if err != nil {
			f.mu.Unlock()
			return model.WorkoutLogEntry{}, fmt.Errorf("reps must be a whole number")
		}
		draft.Reps = &v
	}
	if f.weight != "" {
		v, err := strconv.ParseFloat(f.weight, 64)
		if err != nil {
			f.mu.Unlock()
			return model.WorkoutLogEntry{}, fmt.Errorf("weight must be a number")
		}
		draft.WeightKg = &v
	}
	if f.notes != "" {
		v := f.notes
		draft.Notes = &v
	}
	f.phase = PhaseSubmitting
	f.message = ""
	f.mu.Unlock()

	entry, err := f.submitter.LogWorkout(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.phase = PhaseFailed
		f.message = api.Message(err, "Could not log workout")
		f.scheduleClearLocked()
		return model.WorkoutLogEntry{}, err
	}
	f.phase = PhaseSuccess
	f.message = fmt.Sprintf("Logged %s", entry.ExerciseName)
	f.exerciseID = ""
	f.duration = ""
	f.sets = ""
	f.reps = ""
	f.weight = ""
	f.notes = ""
	f.scheduleClearLocked()
	return entry, nil
}

func (f *WorkoutForm) scheduleClearLocked() {
	f.gen++
	gen := f.gen
	time.AfterFunc(f.ClearAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen != gen {
			return
		}
		if f.phase == PhaseSuccess || f.phase == PhaseFailed {
			f.phase = PhaseEditing
			f.message = ""
		}
	})
}
