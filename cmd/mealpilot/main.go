// MealPilot — a weekly meal planner and cooking companion.
//
// Usage:
//
//	mealpilot [-verbose] [-quiet] [-db mealpilot.db]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/mealpilot/internal/alert"
	"github.com/hammamikhairi/mealpilot/internal/conversation"
	"github.com/hammamikhairi/mealpilot/internal/cooktimer"
	"github.com/hammamikhairi/mealpilot/internal/display"
	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/grocery"
	"github.com/hammamikhairi/mealpilot/internal/logger"
	"github.com/hammamikhairi/mealpilot/internal/planner"
	"github.com/hammamikhairi/mealpilot/internal/recipe"
	"github.com/hammamikhairi/mealpilot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".mealpilot-logs/mealpilot.log", "file to write logs to (use \"stderr\" to log to console)")
	noSound := flag.Bool("no-sound", false, "disable the timer chime")
	dbPath := flag.String("db", "mealpilot.db", "path to the grocery list database (empty for in-memory only)")
	servings := flag.Int("servings", 2, "default servings when planning a meal")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to
	// the same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	recipes := recipe.NewMemorySource(log)
	plans := storage.NewMemoryPlanStore(log)

	var lists domain.GroceryStore
	if *dbPath != "" {
		store, err := storage.NewSQLiteGroceryStore(ctx, *dbPath, log)
		if err != nil {
			log.Error("opening grocery database: %v (falling back to in-memory)", err)
			lists = storage.NewMemoryGroceryStore(log)
		} else {
			defer store.Close()
			lists = store
		}
	} else {
		lists = storage.NewMemoryGroceryStore(log)
	}

	ui := display.NewUI()
	textNotifier := alert.NewCLINotifier(log, ui.Printf)

	var chime *alert.Chime
	if !*noSound {
		c, err := alert.NewChime(log)
		if err != nil {
			log.Error("audio init failed, chime disabled: %v", err)
		} else {
			chime = c
		}
	}
	notifier := alert.NewAlertNotifier(textNotifier, chime, log)

	parser := conversation.NewKeywordParser(log)
	plnr := planner.New(recipes, plans, lists, log,
		planner.WithServingsDefault(*servings),
	)

	app := &cliApp{
		planner:  plnr,
		parser:   parser,
		notifier: notifier,
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Plan your week, shop once, cook with timers."))
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	app.stopCooking(false)
	cancel()
}

type cliApp struct {
	planner  *planner.Planner
	parser   domain.IntentParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI

	selectedRecipe string            // recipe chosen before typing 'cook'
	cooking        *domain.Recipe    // non-nil while a cooking session runs
	stepIdx        int               // 0-based index into cooking.Steps
	timers         *cooktimer.Engine // lives and dies with the session
	timersCancel   context.CancelFunc
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Welcome to MealPilot! Here's what's on the menu:")
	a.ui.Println("")
	a.showRecipes(ctx)

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-a.ui.InputChan():
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
	}
}

// handleIntent dispatches one parsed command. Returns true when the app
// should exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentListRecipes:
		a.showRecipes(ctx)
	case domain.IntentSelectRecipe:
		a.selectRecipe(ctx, intent.Payload)
	case domain.IntentShowRecipe:
		a.showSelectedRecipe(ctx)
	case domain.IntentPlanAdd:
		a.planAdd(ctx, intent.Payload)
	case domain.IntentShowPlan:
		a.showPlan(ctx)
	case domain.IntentClearPlan:
		a.clearPlan(ctx)
	case domain.IntentGrocery:
		a.generateGroceries(ctx)
	case domain.IntentShowList:
		a.showGroceries(ctx)
	case domain.IntentCheckItem:
		a.checkItem(ctx, intent.Payload)
	case domain.IntentStartCooking:
		a.startCooking(ctx)
	case domain.IntentNext:
		a.nextStep(ctx)
	case domain.IntentPrev:
		a.prevStep(ctx)
	case domain.IntentTimerStart:
		a.timerStart(intent.Payload)
	case domain.IntentTimerPause:
		a.timerOp(intent.Payload, "paused", func(e *cooktimer.Engine, s int) { e.Pause(s) })
	case domain.IntentTimerResume:
		a.timerOp(intent.Payload, "resumed", func(e *cooktimer.Engine, s int) { e.Resume(s) })
	case domain.IntentTimerReset:
		a.timerOp(intent.Payload, "reset", func(e *cooktimer.Engine, s int) { e.Reset(s) })
	case domain.IntentShowTimers:
		a.showTimers()
	case domain.IntentStatus:
		a.status(ctx)
	case domain.IntentQuit:
		a.stopCooking(true)
		a.ui.PrintChat("Happy cooking! Bye.")
		// Brief pause so the goodbye line renders before teardown.
		time.Sleep(200 * time.Millisecond)
		return true
	case domain.IntentUnknown:
		if intent.Payload != "" {
			a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", intent.Payload))
		}
	}
	return false
}

// ── Recipe browsing ──────────────────────────────────────────────

func (a *cliApp) showRecipes(ctx context.Context) {
	recipes, err := a.planner.ListRecipes(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading recipes: %v", err))
		return
	}

	a.ui.PrintHeader("Available recipes:")
	a.ui.Println("")
	for i, r := range recipes {
		a.ui.PrintBody(fmt.Sprintf("[%d] %s", i+1, r.Name))
		a.ui.PrintHint(r.Description)
		if len(r.Tags) > 0 {
			a.ui.PrintHint("Tags: " + strings.Join(r.Tags, ", "))
		}
		a.ui.Println("")
	}
	a.ui.PrintChat("Pick a recipe by number, 'add <recipe> x<servings>' to plan it, or 'help' for commands.")
}

// resolveRecipe turns a payload ("2", "chicken-alfredo") into a recipe ID.
func (a *cliApp) resolveRecipe(ctx context.Context, payload string) (string, error) {
	recipes, err := a.planner.ListRecipes(ctx)
	if err != nil {
		return "", err
	}

	if idx, err := strconv.Atoi(payload); err == nil {
		if idx < 1 || idx > len(recipes) {
			return "", fmt.Errorf("no recipe number %d", idx)
		}
		return recipes[idx-1].ID, nil
	}

	lower := strings.ToLower(payload)
	for _, r := range recipes {
		if r.ID == payload || strings.ToLower(r.Name) == lower {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("unknown recipe %q", payload)
}

func (a *cliApp) selectRecipe(ctx context.Context, payload string) {
	id, err := a.resolveRecipe(ctx, payload)
	if err != nil {
		a.ui.PrintHint(fmt.Sprintf("Hmm, %v. Type 'recipes' to see the menu.", err))
		return
	}

	a.selectedRecipe = id
	a.showSelectedRecipe(ctx)
	a.ui.PrintChat("Type 'cook' to start cooking, or 'add' to plan it for the week.")
}

func (a *cliApp) showSelectedRecipe(ctx context.Context) {
	if a.selectedRecipe == "" {
		a.ui.PrintHint("No recipe selected. Pick one by number first.")
		return
	}

	r, err := a.planner.GetRecipe(ctx, a.selectedRecipe)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("=== %s ===", r.Name))
	a.ui.PrintBody(r.Description)
	a.ui.PrintHint(fmt.Sprintf("Serves: %d", r.BaseServings))

	a.ui.Println("")
	a.ui.PrintHeader("Ingredients:")
	for _, ing := range r.Ingredients {
		line := "  - " + ingredientLine(ing)
		a.ui.PrintBody(line)
	}
	a.ui.PrintHint(fmt.Sprintf("Steps: %d", len(r.Steps)))
}

func ingredientLine(ing domain.Ingredient) string {
	line := ing.Name
	if amount := grocery.FormatQuantity(ing.Quantity, ing.Unit); amount != "" {
		line = amount + " " + ing.Name
	}
	if ing.Notes != "" {
		line += ", " + ing.Notes
	}
	if ing.Optional {
		line += " (optional)"
	}
	return line
}

// ── Meal planning ────────────────────────────────────────────────

// planAdd handles "add <recipe> [x<servings>]".
func (a *cliApp) planAdd(ctx context.Context, payload string) {
	if payload == "" {
		payload = a.selectedRecipe
	}
	if payload == "" {
		a.ui.PrintHint("Tell me what to plan, e.g. 'add chicken-alfredo x4'.")
		return
	}

	target := payload
	servings := 0
	if i := strings.LastIndex(payload, " x"); i > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(payload[i+2:])); err == nil && n > 0 {
			target = strings.TrimSpace(payload[:i])
			servings = n
		}
	}

	id, err := a.resolveRecipe(ctx, target)
	if err != nil {
		a.ui.PrintHint(fmt.Sprintf("Hmm, %v. Type 'recipes' to see the menu.", err))
		return
	}

	entry, err := a.planner.AddEntry(ctx, id, servings, time.Now())
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error planning meal: %v", err))
		return
	}

	a.ui.PrintChat(fmt.Sprintf("Planned %s for %d servings.", entry.Recipe.Name, entry.Servings))
}

func (a *cliApp) showPlan(ctx context.Context) {
	entries, err := a.planner.Entries(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	if len(entries) == 0 {
		a.ui.PrintHint("The plan is empty. 'add <recipe>' to plan a meal.")
		return
	}

	a.ui.PrintHeader("This week's plan:")
	for i, e := range entries {
		a.ui.PrintBody(fmt.Sprintf("[%d] %s — %d servings (%s)",
			i+1, e.Recipe.Name, e.Servings, e.Date.Format("Mon Jan 2")))
	}
	a.ui.PrintChat("'grocery' builds the shopping list for all of it.")
}

func (a *cliApp) clearPlan(ctx context.Context) {
	if err := a.planner.ClearWeek(ctx); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat("Plan cleared. Fresh week!")
}

// ── Grocery list ─────────────────────────────────────────────────

func (a *cliApp) generateGroceries(ctx context.Context) {
	list, err := a.planner.GenerateGroceryList(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPlan) {
			a.ui.PrintHint("Nothing planned yet. 'add <recipe>' first, then 'grocery'.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error building grocery list: %v", err))
		return
	}

	a.ui.PrintChat(fmt.Sprintf("Here's your shopping list (%d items):", len(list.Items)))
	a.renderGroceryList(list)
}

func (a *cliApp) showGroceries(ctx context.Context) {
	list, err := a.planner.LatestGroceryList(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoList) {
			a.ui.PrintHint("No grocery list yet. Type 'grocery' to build one from the plan.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.renderGroceryList(list)
}

// renderGroceryList prints items grouped by store section, numbered so
// 'check N' can tick them off.
func (a *cliApp) renderGroceryList(list *domain.GroceryList) {
	section := ""
	for i, item := range list.Items {
		if item.Section != section {
			section = item.Section
			a.ui.Println("")
			a.ui.PrintHeader(section)
		}

		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %2d. %s", box, i+1, item.Name)
		if amount := grocery.FormatQuantity(item.Quantity, item.Unit); amount != "" {
			line += " — " + amount
		}
		if item.Notes != "" {
			line += " (" + item.Notes + ")"
		}
		a.ui.PrintBody(line)
		if len(item.RecipeIDs) > 1 {
			a.ui.PrintHint(fmt.Sprintf("      used by %d recipes", len(item.RecipeIDs)))
		}
	}
	a.ui.Println("")
	a.ui.PrintHint("'check <n>' marks an item as bought.")
}

func (a *cliApp) checkItem(ctx context.Context, payload string) {
	n, err := strconv.Atoi(payload)
	if err != nil || n < 1 {
		a.ui.PrintHint("Which item? e.g. 'check 3'.")
		return
	}

	list, err := a.planner.LatestGroceryList(ctx)
	if err != nil {
		a.ui.PrintHint("No grocery list yet. Type 'grocery' to build one.")
		return
	}

	if err := a.planner.CheckItem(ctx, list.ID, n-1); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Item %d toggled.", n))
}

// ── Cooking session ──────────────────────────────────────────────

func (a *cliApp) startCooking(ctx context.Context) {
	if a.cooking != nil {
		a.ui.PrintHint("Already cooking! 'next' to advance, 'quit' to stop.")
		return
	}
	if a.selectedRecipe == "" {
		a.ui.PrintHint("Pick a recipe first (by number from 'recipes').")
		return
	}

	r, err := a.planner.GetRecipe(ctx, a.selectedRecipe)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.cooking = r
	a.stepIdx = 0

	engineCtx, cancel := context.WithCancel(ctx)
	a.timersCancel = cancel
	a.timers = cooktimer.New(r.Steps, a.notifier, a.log)
	a.timers.Start(engineCtx)
	a.ui.SetTimerSource(a.timers)

	a.ui.PrintChat(fmt.Sprintf("Let's cook %s!", r.Name))
	a.showCurrentStep()
}

// stopCooking tears down the timer engine and session state. When
// announce is set, prints a line about the abandoned session.
func (a *cliApp) stopCooking(announce bool) {
	if a.cooking == nil {
		return
	}
	if announce {
		a.ui.PrintChat(fmt.Sprintf("Stopping %s — see you next time.", a.cooking.Name))
	}
	a.ui.SetTimerSource(nil)
	if a.timers != nil {
		a.timers.Stop()
	}
	if a.timersCancel != nil {
		a.timersCancel()
	}
	a.cooking = nil
	a.timers = nil
	a.timersCancel = nil
	a.stepIdx = 0
}

func (a *cliApp) showCurrentStep() {
	r := a.cooking
	if r == nil {
		a.ui.PrintHint("Not cooking right now. 'cook' starts the selected recipe.")
		return
	}

	step := r.Steps[a.stepIdx]
	header := fmt.Sprintf("Step %d/%d", a.stepIdx+1, len(r.Steps))
	if step.Duration > 0 {
		header += fmt.Sprintf(" (~%s)", formatDuration(step.Duration))
	}
	a.ui.PrintHeader(header)
	a.ui.PrintBody(step.Instruction)

	if step.Duration > 0 {
		if _, exists := a.timers.Timer(a.stepIdx); !exists {
			a.ui.PrintHint(fmt.Sprintf("Timer ready: %s — type 'timer' to start it.", formatDuration(step.Duration)))
		}
	}
}

func (a *cliApp) nextStep(ctx context.Context) {
	if a.cooking == nil {
		a.ui.PrintHint("Not cooking right now. 'cook' starts the selected recipe.")
		return
	}

	if a.stepIdx >= len(a.cooking.Steps)-1 {
		a.ui.PrintChat(fmt.Sprintf("That's it — %s is done. Enjoy!", a.cooking.Name))
		a.stopCooking(false)
		a.selectedRecipe = ""
		return
	}

	a.stepIdx++
	a.showCurrentStep()
}

func (a *cliApp) prevStep(ctx context.Context) {
	if a.cooking == nil {
		a.ui.PrintHint("Not cooking right now.")
		return
	}
	if a.stepIdx == 0 {
		a.ui.PrintHint("Already on the first step.")
		return
	}
	a.stepIdx--
	a.showCurrentStep()
}

// ── Timer commands ───────────────────────────────────────────────

// timerStep resolves an optional 1-based payload to a step index,
// defaulting to the current step.
func (a *cliApp) timerStep(payload string) (int, bool) {
	if a.cooking == nil {
		a.ui.PrintHint("Timers only run while cooking. 'cook' first.")
		return 0, false
	}
	if payload == "" {
		return a.stepIdx, true
	}
	n, err := strconv.Atoi(payload)
	if err != nil || n < 1 || n > len(a.cooking.Steps) {
		a.ui.PrintHint(fmt.Sprintf("No step %q — this recipe has %d steps.", payload, len(a.cooking.Steps)))
		return 0, false
	}
	return n - 1, true
}

func (a *cliApp) timerStart(payload string) {
	step, ok := a.timerStep(payload)
	if !ok {
		return
	}

	if a.timers.StartTimer(step) {
		ts, _ := a.timers.Timer(step)
		a.ui.PrintChat(fmt.Sprintf("Timer started for step %d — %s.", step+1, formatDuration(ts.Duration)))
		return
	}

	if ts, exists := a.timers.Timer(step); exists {
		a.ui.PrintHint(fmt.Sprintf("Step %d already has a timer (%s, %s left). 'reset %d' to restart it.",
			step+1, ts.Status, formatDuration(ts.Remaining), step+1))
		return
	}
	a.ui.PrintHint(fmt.Sprintf("Step %d has no timed duration.", step+1))
}

func (a *cliApp) timerOp(payload, verb string, op func(*cooktimer.Engine, int)) {
	step, ok := a.timerStep(payload)
	if !ok {
		return
	}

	if _, exists := a.timers.Timer(step); !exists {
		a.ui.PrintHint(fmt.Sprintf("Step %d has no timer yet. 'timer %d' starts one.", step+1, step+1))
		return
	}

	op(a.timers, step)
	ts, _ := a.timers.Timer(step)
	a.ui.PrintChat(fmt.Sprintf("Timer for step %d %s (%s left).", step+1, verb, formatDuration(ts.Remaining)))
}

func (a *cliApp) showTimers() {
	if a.timers == nil {
		a.ui.PrintHint("No timers — not cooking right now.")
		return
	}

	active := a.timers.ActiveTimers()
	if len(active) == 0 {
		a.ui.PrintHint("No active timers.")
		return
	}

	a.ui.PrintHeader("Active timers:")
	for _, t := range active {
		line := fmt.Sprintf("Step %d — %s left", t.Step+1, formatDuration(t.Remaining))
		if t.Status == domain.TimerPaused {
			line += " (paused)"
		}
		a.ui.PrintBody(line)
		a.ui.PrintHint("  " + t.Description)
	}
}

// ── Status / help ────────────────────────────────────────────────

func (a *cliApp) status(ctx context.Context) {
	if a.cooking != nil {
		a.ui.PrintHeader(fmt.Sprintf("Cooking: %s", a.cooking.Name))
		a.ui.PrintBody(fmt.Sprintf("Step:    %d/%d", a.stepIdx+1, len(a.cooking.Steps)))
		if n := len(a.timers.ActiveTimers()); n > 0 {
			a.ui.PrintBody(fmt.Sprintf("Timers:  %d active", n))
		} else {
			a.ui.PrintHint("Timers:  none active")
		}
	} else {
		a.ui.PrintHint("Not cooking.")
	}

	entries, err := a.planner.Entries(ctx)
	if err == nil {
		a.ui.PrintHint(fmt.Sprintf("Planned meals: %d", len(entries)))
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Planning:")
	a.ui.PrintBody("  recipes          Show available recipes")
	a.ui.PrintBody("  1, 2, 3...       Select a recipe by number")
	a.ui.PrintBody("  show             Show the selected recipe in full")
	a.ui.PrintBody("  add <recipe> x4  Plan a recipe (servings optional)")
	a.ui.PrintBody("  plan             Show this week's plan")
	a.ui.PrintBody("  clear plan       Wipe the plan")
	a.ui.Println("")
	a.ui.PrintHeader("Shopping:")
	a.ui.PrintBody("  grocery          Build the shopping list from the plan")
	a.ui.PrintBody("  show list        Show the latest shopping list")
	a.ui.PrintBody("  check <n>        Toggle an item as bought")
	a.ui.Println("")
	a.ui.PrintHeader("Cooking:")
	a.ui.PrintBody("  cook             Start cooking the selected recipe")
	a.ui.PrintBody("  next / back      Move between steps")
	a.ui.PrintBody("  timer [n]        Start the step's countdown")
	a.ui.PrintBody("  pause [n]        Pause a running timer")
	a.ui.PrintBody("  resume [n]       Resume a paused timer")
	a.ui.PrintBody("  reset [n]        Put a timer back at full duration")
	a.ui.PrintBody("  timers           Show all active timers")
	a.ui.PrintBody("  status           Show cooking progress")
	a.ui.Println("")
	a.ui.PrintBody("  help             Show this message")
	a.ui.PrintBody("  quit             Exit")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
