// Package cooktimer implements the per-session step timer engine: one
// countdown per recipe step, all ticking in lockstep off a single
// shared clock.
package cooktimer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithTickInterval sets how often timers are decremented. One second
// in production; tests shrink it.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.tickInterval = d
	}
}

// WithCompletionHook registers a side effect fired when a timer hits
// zero (chime, desktop notification). Hooks are best-effort: errors are
// logged and swallowed, never propagated into timer state.
func WithCompletionHook(hook func(ctx context.Context, step int, label string) error) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hook)
	}
}

// Engine manages the countdown timers of one cooking session. Timers
// are keyed by step index in a map, not stored per step view, so a
// timer started on step 3 keeps counting while the cook is on step 7.
// A single ticker goroutine decrements every running timer; there is
// never more than one scheduled callback no matter how many timers are
// live. All methods are safe for concurrent use.
type Engine struct {
	steps        []domain.Step
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration
	hooks        []func(ctx context.Context, step int, label string) error

	mu      sync.Mutex
	timers  map[int]*domain.StepTimer
	running bool
	cancel  context.CancelFunc
}

// New creates a timer engine for the given recipe steps.
func New(steps []domain.Step, notifier domain.Notifier, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		steps:        steps,
		notifier:     notifier,
		log:          log,
		tickInterval: 1 * time.Second,
		timers:       make(map[int]*domain.StepTimer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start launches the shared tick loop. Non-blocking. Calling Start on
// a running engine is a no-op.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		e.log.Warn("timer engine already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.running = true

	go e.loop(childCtx)

	e.log.Info("timer engine started (tick=%s, steps=%d)", e.tickInterval, len(e.steps))
}

// Stop tears down the tick loop. Timer state is kept so a stopped
// engine can still be inspected; it is discarded with the session.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}

	e.cancel()
	e.running = false
	e.log.Info("timer engine stopped")
}

// StartTimer creates and starts the countdown for a step. No-op when
// the step has no positive duration or a timer already exists for it
// (starting never restarts — use Reset for that). Reports whether a
// new timer was created.
func (e *Engine) StartTimer(step int) bool {
	d, ok := e.stepDuration(step)
	if !ok {
		e.log.Debug("start timer: step %d has no duration, ignoring", step+1)
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.timers[step]; exists {
		e.log.Debug("start timer: step %d already has a timer, ignoring", step+1)
		return false
	}

	e.timers[step] = &domain.StepTimer{
		Step:      step,
		Label:     describe(e.steps[step].Instruction),
		Duration:  d,
		Remaining: d,
		Status:    domain.TimerRunning,
	}
	e.log.Info("started timer for step %d (%s)", step+1, d)
	return true
}

// Pause halts the countdown for a step. No-op when the step has no
// timer or the timer is not running.
func (e *Engine) Pause(step int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts, ok := e.timers[step]
	if !ok || ts.Status != domain.TimerRunning {
		return
	}
	ts.Status = domain.TimerPaused
	e.log.Debug("paused timer for step %d (%s left)", step+1, ts.Remaining)
}

// Resume restarts a paused countdown. No-op when the step has no timer
// or the timer is not paused mid-count.
func (e *Engine) Resume(step int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts, ok := e.timers[step]
	if !ok || ts.Status != domain.TimerPaused || ts.Remaining <= 0 {
		return
	}
	ts.Status = domain.TimerRunning
	e.log.Debug("resumed timer for step %d (%s left)", step+1, ts.Remaining)
}

// Reset puts the step's timer back at full duration, paused. Works
// from any prior state, including done. No-op when the step has no
// positive duration.
func (e *Engine) Reset(step int) {
	d, ok := e.stepDuration(step)
	if !ok {
		e.log.Debug("reset timer: step %d has no duration, ignoring", step+1)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.timers[step] = &domain.StepTimer{
		Step:      step,
		Label:     describe(e.steps[step].Instruction),
		Duration:  d,
		Remaining: d,
		Status:    domain.TimerPaused,
	}
	e.log.Debug("reset timer for step %d to %s", step+1, d)
}

// Timer returns a snapshot of the timer for a step, if one exists.
func (e *Engine) Timer(step int) (domain.StepTimer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts, ok := e.timers[step]
	if !ok {
		return domain.StepTimer{}, false
	}
	return *ts, true
}

// ActiveTimers returns every timer still counting down or paused
// mid-count, plus any that are running, sorted by step index. Each is
// annotated with a short description of its step for the "other active
// timers" panel.
func (e *Engine) ActiveTimers() []domain.ActiveTimer {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.ActiveTimer
	for _, ts := range e.timers {
		if ts.Remaining <= 0 && ts.Status != domain.TimerRunning {
			continue
		}
		out = append(out, domain.ActiveTimer{
			Step:        ts.Step,
			Description: ts.Label,
			Remaining:   ts.Remaining,
			Status:      ts.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Step < out[j].Step })
	return out
}

// loop is the single shared tick driver.
func (e *Engine) loop(ctx context.Context) {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick decrements every running timer once. All state changes happen
// under one mutex hold so a concurrent StartTimer or Reset can never
// interleave mid-tick; completion side effects run after the lock is
// released.
func (e *Engine) tick(ctx context.Context) {
	var completed []domain.StepTimer

	e.mu.Lock()
	for _, ts := range e.timers {
		if ts.Status != domain.TimerRunning || ts.Remaining <= 0 {
			continue
		}
		ts.Remaining -= e.tickInterval
		if ts.Remaining <= 0 {
			ts.Remaining = 0
			ts.Status = domain.TimerDone
			completed = append(completed, *ts)
		}
	}
	e.mu.Unlock()

	for _, ts := range completed {
		e.fireCompletion(ctx, ts)
	}
}

// fireCompletion notifies the user and runs the registered hooks.
// Every side effect here is best-effort: the timer is already done and
// stays done whatever happens below.
func (e *Engine) fireCompletion(ctx context.Context, ts domain.StepTimer) {
	e.log.Info("timer done for step %d (%s)", ts.Step+1, ts.Label)

	msg := fmt.Sprintf("[Timer] Step %d done — %s", ts.Step+1, ts.Label)
	if err := e.notifier.NotifyUrgent(ctx, msg); err != nil {
		e.log.Error("timer engine: notifying completion: %v", err)
	}

	for _, hook := range e.hooks {
		if err := hook(ctx, ts.Step, ts.Label); err != nil {
			e.log.Error("timer engine: completion hook for step %d: %v", ts.Step+1, err)
		}
	}
}

// stepDuration returns the declared duration for a step index, and
// whether it is usable for a timer.
func (e *Engine) stepDuration(step int) (time.Duration, bool) {
	if step < 0 || step >= len(e.steps) {
		return 0, false
	}
	d := e.steps[step].Duration
	if d <= 0 {
		return 0, false
	}
	return d, true
}

// describe derives a short timer label from a step instruction: the
// first sentence, or the first 50 characters, whichever is shorter.
func describe(instruction string) string {
	text := strings.TrimSpace(instruction)

	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		text = text[:i]
	}

	runes := []rune(text)
	if len(runes) > 50 {
		text = strings.TrimSpace(string(runes[:50])) + "…"
	}
	return text
}
