package alert

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// NotifyDesktop raises a native desktop notification. Best-effort only:
// it shells out to whatever notifier the platform ships and reports an
// error when none is available. Callers log and move on — a failed
// desktop notification never blocks timer handling.
func NotifyDesktop(ctx context.Context, title, message string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		return exec.CommandContext(ctx, "osascript", "-e", script).Run()
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return errors.New("notify-send not installed")
		}
		return exec.CommandContext(ctx, "notify-send", "-u", "critical", title, message).Run()
	default:
		return fmt.Errorf("desktop notifications not supported on %s", runtime.GOOS)
	}
}
