// Package debugtui is the interactive rule-stepper launched by
// hcre's -debug flag. It walks engine.Steps one operation at a time
// inside a tview application with bordered rule/steps/buffer panels.
package debugtui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/llamasoft/HashcatRulesEngine/engine"
	"github.com/llamasoft/HashcatRulesEngine/rule"
)

// TUI is the stepper's application shell.
type TUI struct {
	App  *tview.Application
	Rule rule.Rule
	Word []byte

	RulePane   *tview.TextView
	StepsPane  *tview.TextView
	BufferPane *tview.TextView

	history []engine.Step
	steps   *engine.Steps
}

// New builds a TUI ready to step r against word. The buffer pane
// renders the memory register line once a step has set it.
func New(r rule.Rule, ruleText string, word []byte) (*TUI, error) {
	steps, err := engine.NewSteps(r, word)
	if err != nil {
		return nil, err
	}

	t := &TUI{
		App:   tview.NewApplication(),
		Rule:  r,
		Word:  word,
		steps: steps,
	}

	t.RulePane = tview.NewTextView().SetDynamicColors(true)
	t.RulePane.SetBorder(true).SetTitle(" Rule ")
	fmt.Fprintf(t.RulePane, "source: %s\ncanonical: %s\nword: %s", ruleText, r.String(), word)

	t.StepsPane = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.StepsPane.SetBorder(true).SetTitle(" Steps ")

	t.BufferPane = tview.NewTextView().SetDynamicColors(true)
	t.BufferPane.SetBorder(true).SetTitle(" Buffer ")
	fmt.Fprintf(t.BufferPane, "%s", word)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.RulePane, 5, 0, false).
		AddItem(t.StepsPane, 0, 2, false).
		AddItem(t.BufferPane, 5, 0, false)

	t.App.SetInputCapture(t.handleKey)
	t.App.SetRoot(layout, true)

	return t, nil
}

func (t *TUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Rune() == 'n' || event.Key() == tcell.KeyEnter:
		t.stepForward()
		return nil
	case event.Rune() == 'p':
		t.stepBack()
		return nil
	case event.Rune() == 'q' || event.Key() == tcell.KeyEscape:
		t.App.Stop()
		return nil
	}
	return event
}

// stepForward advances one operation and renders its effect.
func (t *TUI) stepForward() {
	step, ok := t.steps.Next()
	if !ok {
		return
	}
	t.history = append(t.history, step)
	t.render(step)
}

// stepBack replays from the start up to, but not including, the last
// recorded step: engine.Steps has no reverse operation, so rewinding
// means restarting and fast-forwarding.
func (t *TUI) stepBack() {
	if len(t.history) == 0 {
		return
	}
	target := len(t.history) - 1
	t.history = nil

	steps, err := engine.NewSteps(t.Rule, t.Word)
	if err != nil {
		return
	}
	t.steps = steps

	var last engine.Step
	for i := 0; i < target; i++ {
		step, ok := t.steps.Next()
		if !ok {
			break
		}
		t.history = append(t.history, step)
		last = step
	}
	t.render(last)
}

func (t *TUI) render(step engine.Step) {
	var b strings.Builder
	for i, s := range t.history {
		marker := "  "
		if i == len(t.history)-1 {
			marker = "> "
		}
		fmt.Fprintf(&b, "%sop %q operands %q -> %q\n", marker, s.Op, s.Operands, s.Word)
	}
	t.StepsPane.Clear()
	fmt.Fprint(t.StepsPane, b.String())

	t.BufferPane.Clear()
	if step.Err != nil {
		fmt.Fprintf(t.BufferPane, "word: %s\nerror: %v", step.Word, step.Err)
		return
	}
	if step.MemorySet {
		fmt.Fprintf(t.BufferPane, "word: %s\nmemory: %s", step.Word, step.Memory)
	} else {
		fmt.Fprintf(t.BufferPane, "word: %s", step.Word)
	}
}

// Run starts the tview event loop. It blocks until the user quits.
func (t *TUI) Run() error {
	return t.App.Run()
}
