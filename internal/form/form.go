package form

import "time"

type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "editing"
	}
}

// DefaultClearAfter is how long a transient success/failure message stays
// visible before the form returns to its quiet editing display.
const DefaultClearAfter = 3 * time.Second
