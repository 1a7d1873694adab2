package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentSelectRecipe
	IntentShowRecipe
	IntentPlanAdd // add the selected (or named) recipe to the week plan
	IntentShowPlan
	IntentClearPlan
	IntentGrocery   // aggregate the plan into a grocery list
	IntentShowList  // show the latest saved grocery list
	IntentCheckItem // tick off a grocery item by number
	IntentStartCooking
	IntentNext
	IntentPrev
	IntentTimerStart // start the countdown for a step
	IntentTimerPause
	IntentTimerResume
	IntentTimerReset
	IntentShowTimers
	IntentStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListRecipes:
		return "list_recipes"
	case IntentSelectRecipe:
		return "select_recipe"
	case IntentShowRecipe:
		return "show_recipe"
	case IntentPlanAdd:
		return "plan_add"
	case IntentShowPlan:
		return "show_plan"
	case IntentClearPlan:
		return "clear_plan"
	case IntentGrocery:
		return "grocery"
	case IntentShowList:
		return "show_list"
	case IntentCheckItem:
		return "check_item"
	case IntentStartCooking:
		return "start_cooking"
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	case IntentTimerStart:
		return "timer_start"
	case IntentTimerPause:
		return "timer_pause"
	case IntentTimerResume:
		return "timer_resume"
	case IntentTimerReset:
		return "timer_reset"
	case IntentShowTimers:
		return "show_timers"
	case IntentStatus:
		return "status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. recipe ID or step number
}
