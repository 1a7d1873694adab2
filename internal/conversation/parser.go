// Package conversation provides intent parsing for the planner REPL.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple
// patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	intent  domain.IntentType
	payload bool // carry the capture group (or full input) as payload
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(recipes|list|browse)$`), domain.IntentListRecipes, false},
		{regexp.MustCompile(`(?i)^(show|recipe)$`), domain.IntentShowRecipe, false},
		{regexp.MustCompile(`(?i)^plan add\s+(.+)$`), domain.IntentPlanAdd, true},
		{regexp.MustCompile(`(?i)^add\s+(.+)$`), domain.IntentPlanAdd, true},
		{regexp.MustCompile(`(?i)^(plan|week|show plan)$`), domain.IntentShowPlan, false},
		{regexp.MustCompile(`(?i)^(plan clear|clear plan|clear)$`), domain.IntentClearPlan, false},
		{regexp.MustCompile(`(?i)^(grocery|groceries|shopping|shopping list)$`), domain.IntentGrocery, false},
		{regexp.MustCompile(`(?i)^(list groceries|show list)$`), domain.IntentShowList, false},
		{regexp.MustCompile(`(?i)^(check|tick|got)\s+(\d+)$`), domain.IntentCheckItem, true},
		{regexp.MustCompile(`(?i)^(cook|start|begin|let'?s cook)$`), domain.IntentStartCooking, false},
		{regexp.MustCompile(`(?i)^(next|done|continue|n)$`), domain.IntentNext, false},
		{regexp.MustCompile(`(?i)^(back|prev|previous|b)$`), domain.IntentPrev, false},
		{regexp.MustCompile(`(?i)^timer(\s+\d+)?$`), domain.IntentTimerStart, true},
		{regexp.MustCompile(`(?i)^pause(\s+\d+)?$`), domain.IntentTimerPause, true},
		{regexp.MustCompile(`(?i)^resume(\s+\d+)?$`), domain.IntentTimerResume, true},
		{regexp.MustCompile(`(?i)^reset(\s+\d+)?$`), domain.IntentTimerReset, true},
		{regexp.MustCompile(`(?i)^(timers|active)$`), domain.IntentShowTimers, false},
		{regexp.MustCompile(`(?i)^(status|where|progress|info)$`), domain.IntentStatus, false},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, false},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit, false},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// Recipe selection by number (e.g., "1", "2", "3").
	if len(trimmed) <= 2 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentSelectRecipe, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if rule.payload {
			intent.Payload = lastGroup(m)
		}
		return intent, nil
	}

	// "select <id>" / "pick <id>" chooses a recipe by ID or name.
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "select ") || strings.HasPrefix(lower, "pick ") {
		parts := strings.SplitN(trimmed, " ", 2)
		if len(parts) == 2 {
			return &domain.Intent{Type: domain.IntentSelectRecipe, Payload: strings.TrimSpace(parts[1])}, nil
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// lastGroup returns the last non-empty capture group, trimmed.
func lastGroup(m []string) string {
	for i := len(m) - 1; i >= 1; i-- {
		if s := strings.TrimSpace(m[i]); s != "" {
			return s
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
