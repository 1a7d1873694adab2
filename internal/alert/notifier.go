// Package alert delivers timer and planner notifications to the user:
// styled terminal output, an audible chime, and best-effort desktop
// notifications.
package alert

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes notifications to stdout with ANSI formatting.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a stdout-based notifier.
// If printFn is nil, fmt.Printf is used.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLINotifier{log: log, printFn: printFn}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s%s%s%s", cyan, bold, message, reset)
	return nil
}

// NotifyUrgent prints an urgent notification in bold red.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s%s%s%s", red, bold, message, reset)
	return nil
}

// Compile-time interface check.
var _ domain.Notifier = (*AlertNotifier)(nil)

// AlertNotifier wraps a text notifier and adds a chime plus a desktop
// notification to urgent messages. Both extras are best-effort: a
// missing audio device or denied notification permission is logged and
// swallowed, never surfaced to the caller.
type AlertNotifier struct {
	text  domain.Notifier
	chime *Chime // nil when audio is unavailable or disabled
	log   *logger.Logger
}

// NewAlertNotifier creates the composite notifier. chime may be nil.
func NewAlertNotifier(text domain.Notifier, chime *Chime, log *logger.Logger) *AlertNotifier {
	return &AlertNotifier{text: text, chime: chime, log: log}
}

// Notify forwards a normal message to the text notifier.
func (n *AlertNotifier) Notify(ctx context.Context, message string) error {
	return n.text.Notify(ctx, message)
}

// NotifyUrgent prints the message, then chimes and raises a desktop
// notification without blocking the caller.
func (n *AlertNotifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}

	if n.chime != nil {
		go func() {
			if err := n.chime.Play(); err != nil {
				n.log.Error("alert: chime: %v", err)
			}
		}()
	}

	go func() {
		if err := NotifyDesktop(ctx, "MealPilot", message); err != nil {
			n.log.Debug("alert: desktop notification: %v", err)
		}
	}()

	return nil
}
