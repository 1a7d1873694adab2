package cooktimer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// mockNotifier collects notifications for testing.
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
	urgent   []string
	fail     bool
}

func (m *mockNotifier) Notify(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("notifier down")
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockNotifier) NotifyUrgent(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("notifier down")
	}
	m.urgent = append(m.urgent, msg)
	return nil
}

func (m *mockNotifier) urgentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.urgent)
}

func testSteps() []domain.Step {
	return []domain.Step{
		{Order: 1, Instruction: "Chop the onions. Keep the pieces even."},
		{Order: 2, Instruction: "Simmer the sauce on low heat. Stir occasionally.", Duration: 3 * time.Second},
		{Order: 3, Instruction: "Plate and serve."},
		{Order: 4, Instruction: "Bake until golden brown on top and bubbling at the edges with no timer drama", Duration: 5 * time.Second},
	}
}

func newTestEngine(notifier domain.Notifier, opts ...Option) *Engine {
	log := logger.New(logger.LevelOff, nil)
	return New(testSteps(), notifier, log, opts...)
}

func TestStartTimerRequiresDuration(t *testing.T) {
	eng := newTestEngine(&mockNotifier{})

	tests := []struct {
		name string
		step int
		want bool
	}{
		{"untimed step", 0, false},
		{"timed step", 1, true},
		{"out of range", 99, false},
		{"negative index", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eng.StartTimer(tt.step); got != tt.want {
				t.Fatalf("StartTimer(%d) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestStartTimerNeverRestarts(t *testing.T) {
	eng := newTestEngine(&mockNotifier{}, WithTickInterval(1*time.Second))
	ctx := context.Background()

	if !eng.StartTimer(1) {
		t.Fatal("expected first start to create a timer")
	}

	eng.tick(ctx)
	ts, _ := eng.Timer(1)
	if ts.Remaining != 2*time.Second {
		t.Fatalf("expected 2s remaining after one tick, got %s", ts.Remaining)
	}

	// Second start is a no-op: no new timer, no progress reset.
	if eng.StartTimer(1) {
		t.Fatal("expected second start to be a no-op")
	}
	ts, _ = eng.Timer(1)
	if ts.Remaining != 2*time.Second {
		t.Fatalf("expected progress preserved, got %s remaining", ts.Remaining)
	}
}

func TestTickDecrementsAllRunningTimers(t *testing.T) {
	eng := newTestEngine(&mockNotifier{}, WithTickInterval(1*time.Second))
	ctx := context.Background()

	eng.StartTimer(1)
	eng.StartTimer(3)

	eng.tick(ctx)

	t1, _ := eng.Timer(1)
	t3, _ := eng.Timer(3)
	if t1.Remaining != 2*time.Second || t3.Remaining != 4*time.Second {
		t.Fatalf("expected both timers decremented in the same tick, got %s and %s",
			t1.Remaining, t3.Remaining)
	}
}

func TestTimerCompletion(t *testing.T) {
	notifier := &mockNotifier{}
	hookCalls := 0
	eng := newTestEngine(notifier,
		WithTickInterval(1*time.Second),
		WithCompletionHook(func(_ context.Context, step int, _ string) error {
			hookCalls++
			if step != 1 {
				t.Fatalf("hook fired for step %d, want 1", step)
			}
			return nil
		}),
	)
	ctx := context.Background()

	eng.StartTimer(1) // 3s duration
	eng.tick(ctx)
	eng.tick(ctx)
	eng.tick(ctx)

	ts, ok := eng.Timer(1)
	if !ok {
		t.Fatal("completed timer should stay inspectable")
	}
	if ts.Status != domain.TimerDone || ts.Remaining != 0 {
		t.Fatalf("expected done timer with 0 remaining, got %s / %s", ts.Status, ts.Remaining)
	}
	if notifier.urgentCount() != 1 {
		t.Fatalf("expected 1 urgent notification, got %d", notifier.urgentCount())
	}
	if hookCalls != 1 {
		t.Fatalf("expected completion hook to run once, got %d", hookCalls)
	}

	// Further ticks leave a done timer alone.
	eng.tick(ctx)
	if notifier.urgentCount() != 1 {
		t.Fatal("done timer fired again on a later tick")
	}
}

func TestCompletionSideEffectFailuresAreSwallowed(t *testing.T) {
	notifier := &mockNotifier{fail: true}
	eng := newTestEngine(notifier,
		WithTickInterval(1*time.Second),
		WithCompletionHook(func(context.Context, int, string) error {
			return errors.New("no audio device")
		}),
	)
	ctx := context.Background()

	eng.StartTimer(1)
	for i := 0; i < 3; i++ {
		eng.tick(ctx)
	}

	// State still flipped despite every side effect failing.
	ts, _ := eng.Timer(1)
	if ts.Status != domain.TimerDone {
		t.Fatalf("expected done despite side effect failures, got %s", ts.Status)
	}
}

func TestPauseResume(t *testing.T) {
	eng := newTestEngine(&mockNotifier{}, WithTickInterval(1*time.Second))
	ctx := context.Background()

	eng.StartTimer(1)
	eng.tick(ctx)
	eng.Pause(1)

	// Paused timers don't tick.
	eng.tick(ctx)
	eng.tick(ctx)
	ts, _ := eng.Timer(1)
	if ts.Status != domain.TimerPaused || ts.Remaining != 2*time.Second {
		t.Fatalf("expected paused at 2s, got %s at %s", ts.Status, ts.Remaining)
	}

	eng.Resume(1)
	eng.tick(ctx)
	ts, _ = eng.Timer(1)
	if ts.Status != domain.TimerRunning || ts.Remaining != 1*time.Second {
		t.Fatalf("expected running at 1s after resume, got %s at %s", ts.Status, ts.Remaining)
	}

	// Pause/resume on steps without timers are no-ops.
	eng.Pause(2)
	eng.Resume(2)
	if _, ok := eng.Timer(2); ok {
		t.Fatal("pause/resume must not create timers")
	}
}

func TestReset(t *testing.T) {
	eng := newTestEngine(&mockNotifier{}, WithTickInterval(1*time.Second))
	ctx := context.Background()

	eng.StartTimer(1)
	for i := 0; i < 3; i++ {
		eng.tick(ctx)
	}
	ts, _ := eng.Timer(1)
	if ts.Status != domain.TimerDone {
		t.Fatalf("expected done before reset, got %s", ts.Status)
	}

	// Reset puts the timer back at full duration, paused — an explicit
	// resume is needed to count down again.
	eng.Reset(1)
	ts, _ = eng.Timer(1)
	if ts.Status != domain.TimerPaused || ts.Remaining != 3*time.Second {
		t.Fatalf("expected paused at full 3s after reset, got %s at %s", ts.Status, ts.Remaining)
	}

	eng.tick(ctx)
	ts, _ = eng.Timer(1)
	if ts.Remaining != 3*time.Second {
		t.Fatal("reset timer must not tick before resume")
	}

	eng.Resume(1)
	eng.tick(ctx)
	ts, _ = eng.Timer(1)
	if ts.Status != domain.TimerRunning || ts.Remaining != 2*time.Second {
		t.Fatalf("expected running at 2s, got %s at %s", ts.Status, ts.Remaining)
	}

	// Reset on an untimed step is a no-op, not an error.
	eng.Reset(0)
	if _, ok := eng.Timer(0); ok {
		t.Fatal("reset must not create timers for untimed steps")
	}
}

func TestActiveTimers(t *testing.T) {
	eng := newTestEngine(&mockNotifier{}, WithTickInterval(1*time.Second))
	ctx := context.Background()

	eng.StartTimer(1) // 3s
	eng.StartTimer(3) // 5s
	eng.Pause(3)

	// The step-1 timer keeps counting regardless of which step the cook
	// is looking at; both show up in the panel.
	eng.tick(ctx)

	active := eng.ActiveTimers()
	if len(active) != 2 {
		t.Fatalf("expected 2 active timers, got %d", len(active))
	}
	if active[0].Step != 1 || active[1].Step != 3 {
		t.Fatalf("expected timers for steps 1 and 3, got %d and %d", active[0].Step, active[1].Step)
	}
	if active[0].Description != "Simmer the sauce on low heat" {
		t.Fatalf("expected first-sentence description, got %q", active[0].Description)
	}
	if active[1].Status != domain.TimerPaused {
		t.Fatalf("expected paused timer listed, got %s", active[1].Status)
	}

	// Run the step-1 timer out. Depleted inactive timers drop from the
	// panel; the paused one stays.
	eng.tick(ctx)
	eng.tick(ctx)

	active = eng.ActiveTimers()
	if len(active) != 1 || active[0].Step != 3 {
		t.Fatalf("expected only the paused step-3 timer, got %+v", active)
	}
}

func TestEngineLoop(t *testing.T) {
	notifier := &mockNotifier{}
	log := logger.New(logger.LevelOff, nil)
	steps := []domain.Step{
		{Order: 1, Instruction: "Boil water.", Duration: 60 * time.Millisecond},
	}
	eng := New(steps, notifier, log, WithTickInterval(20*time.Millisecond))
	ctx := context.Background()

	eng.StartTimer(0)
	eng.Start(ctx)
	defer eng.Stop()

	time.Sleep(250 * time.Millisecond)

	if notifier.urgentCount() != 1 {
		t.Fatalf("expected exactly 1 completion notification, got %d", notifier.urgentCount())
	}
	ts, _ := eng.Timer(0)
	if ts.Status != domain.TimerDone {
		t.Fatalf("expected done, got %s", ts.Status)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		want        string
	}{
		{"first sentence", "Simmer the sauce. Stir now and then.", "Simmer the sauce"},
		{"question mark", "Is it boiling yet? Good.", "Is it boiling yet"},
		{"truncated", "Bake until the top is deeply golden brown and the filling bubbles thickly at the edges", "Bake until the top is deeply golden brown and the…"},
		{"short as is", "Rest the dough", "Rest the dough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.instruction); got != tt.want {
				t.Fatalf("describe(%q) = %q, want %q", tt.instruction, got, tt.want)
			}
		})
	}
}
