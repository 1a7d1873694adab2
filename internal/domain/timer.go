package domain

import "time"

// StepTimer tracks a countdown attached to one recipe step. Timers are
// keyed by step index so a simmer started on step 3 keeps counting while
// the cook is reading step 7.
type StepTimer struct {
	Step      int // step index, >= 0
	Label     string
	Duration  time.Duration
	Remaining time.Duration
	Status    TimerStatus
}

// TimerStatus represents the state of a step timer.
type TimerStatus int

const (
	TimerRunning TimerStatus = iota
	TimerPaused
	TimerDone
)

// String returns a human-readable timer status.
func (t TimerStatus) String() string {
	switch t {
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerDone:
		return "done"
	default:
		return "unknown"
	}
}

// ActiveTimer is a display view of a live timer: anything still
// counting down or paused mid-count, annotated with a short
// description of the step it belongs to.
type ActiveTimer struct {
	Step        int
	Description string
	Remaining   time.Duration
	Status      TimerStatus
}
