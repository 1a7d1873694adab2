package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	p := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		{"recipes", domain.IntentListRecipes, ""},
		{"list", domain.IntentListRecipes, ""},
		{"2", domain.IntentSelectRecipe, "2"},
		{"select chicken-alfredo", domain.IntentSelectRecipe, "chicken-alfredo"},
		{"show", domain.IntentShowRecipe, ""},
		{"plan add chicken-alfredo x4", domain.IntentPlanAdd, "chicken-alfredo x4"},
		{"add buttermilk-pancakes", domain.IntentPlanAdd, "buttermilk-pancakes"},
		{"plan", domain.IntentShowPlan, ""},
		{"clear plan", domain.IntentClearPlan, ""},
		{"grocery", domain.IntentGrocery, ""},
		{"shopping list", domain.IntentGrocery, ""},
		{"show list", domain.IntentShowList, ""},
		{"check 3", domain.IntentCheckItem, "3"},
		{"cook", domain.IntentStartCooking, ""},
		{"next", domain.IntentNext, ""},
		{"back", domain.IntentPrev, ""},
		{"timer", domain.IntentTimerStart, ""},
		{"timer 4", domain.IntentTimerStart, "4"},
		{"pause 2", domain.IntentTimerPause, "2"},
		{"resume 2", domain.IntentTimerResume, "2"},
		{"reset 2", domain.IntentTimerReset, "2"},
		{"timers", domain.IntentShowTimers, ""},
		{"status", domain.IntentStatus, ""},
		{"help", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"", domain.IntentUnknown, ""},
		{"make me a sandwich", domain.IntentUnknown, "make me a sandwich"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := p.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Fatalf("input %q: expected %s, got %s", tt.input, tt.wantType, intent.Type)
			}
			if intent.Payload != tt.wantPayload {
				t.Fatalf("input %q: expected payload %q, got %q", tt.input, tt.wantPayload, intent.Payload)
			}
		})
	}
}

func TestKeywordParserCaseInsensitive(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	p := NewKeywordParser(log)
	ctx := context.Background()

	intent, err := p.Parse(ctx, "  GROCERY  ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if intent.Type != domain.IntentGrocery {
		t.Fatalf("expected grocery intent, got %s", intent.Type)
	}
}
