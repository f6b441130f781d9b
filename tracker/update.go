package tracker

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"tally/store"
)

type (
	// tickMsg advances the display timer once a second.
	tickMsg time.Time
	// idleCheckMsg triggers an idle-watchdog evaluation.
	idleCheckMsg time.Time
)

type keymap struct {
	stop     key.Binding
	describe key.Binding
	retry    key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	stop: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "stop & log"),
	),
	describe: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit description"),
	),
	retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry saving"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "stop & quit"),
	),
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

func (t *Tracker) idleCheck() tea.Cmd {
	return tea.Tick(
		t.opts.Tracker.IdleCheckInterval,
		func(ts time.Time) tea.Msg {
			return idleCheckMsg(ts)
		},
	)
}

func (t *Tracker) Init() tea.Cmd {
	t.lastTick = t.now()

	return tea.Batch(tick(), t.idleCheck())
}

// handleTick advances the elapsed counter by the wall-clock interval since
// the previous tick so missed ticks do not lose display time. Ticking
// continues while the idle prompt is open: logged durations come from the
// clock at stop, not from this counter, so the prompt cannot skew them.
func (t *Tracker) handleTick(ts time.Time) (tea.Model, tea.Cmd) {
	t.Advance(ts.Sub(t.lastTick))
	t.lastTick = ts

	return t, tick()
}

// handleIdleCheck evaluates the idle watchdog and opens the distraction
// prompt when the threshold is crossed.
func (t *Tracker) handleIdleCheck() (tea.Model, tea.Cmd) {
	if t.idleForm != nil || t.descForm != nil || t.saveErr != nil {
		return t, t.idleCheck()
	}

	if !t.CheckIdle() {
		return t, t.idleCheck()
	}

	go t.notifyIdle()

	t.idleContinue = true
	t.idleForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Distraction alert").
				Description("You have been idle for a while. Do you want to continue working?").
				Affirmative("Keep working").
				Negative("Stop session").
				Value(&t.idleContinue),
		),
	)

	return t, tea.Batch(t.idleForm.Init(), t.idleCheck())
}

// handleIdleForm routes messages to the open distraction prompt.
func (t *Tracker) handleIdleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.idleForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.idleForm = f
	}

	if t.idleForm.State != huh.StateCompleted {
		return t, cmd
	}

	cont := t.idleContinue
	t.idleForm = nil

	if cont {
		t.RecordActivity()
		return t, cmd
	}

	return t.stopAndQuit()
}

// handleDescForm routes messages to the open description editor.
func (t *Tracker) handleDescForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.descForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.descForm = f
	}

	if t.descForm.State != huh.StateCompleted {
		return t, cmd
	}

	t.descForm = nil

	err := t.UpdateDescription(t.descDraft)
	if err != nil && !errors.Is(err, ErrEmptyDescription) {
		slog.Error("unable to update description", slog.Any("error", err))
	}

	return t, cmd
}

// handleSaveErr waits for the user's decision after a failed persist.
func (t *Tracker) handleSaveErr(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, defaultKeymap.retry):
		err := t.log.Flush()
		if err != nil {
			t.saveErr = err
			return t, nil
		}

		t.saveErr = nil
		t.quitting = true

		if t.stopped != nil {
			t.postSession(*t.stopped)
		}

		return t, tea.Batch(tea.ClearScreen, tea.Quit)

	case key.Matches(keyMsg, defaultKeymap.quit):
		// give up on persisting; the record was already finalized
		t.quitting = true
		return t, tea.Quit
	}

	return t, nil
}

func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(time.Time(msg))
	case idleCheckMsg:
		return t.handleIdleCheck()
	}

	// every input event refreshes the idle watchdog
	if _, ok := msg.(tea.KeyMsg); ok {
		t.RecordActivity()
	}

	if t.saveErr != nil {
		return t.handleSaveErr(msg)
	}

	if t.idleForm != nil {
		return t.handleIdleForm(msg)
	}

	if t.descForm != nil {
		return t.handleDescForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.stop),
			key.Matches(msg, defaultKeymap.quit):
			return t.stopAndQuit()

		case key.Matches(msg, defaultKeymap.describe):
			if rec, ok := t.Current(); ok {
				t.descDraft = rec.Description
			}

			t.descForm = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Task description").
						Value(&t.descDraft),
				),
			)

			return t, t.descForm.Init()
		}

	default:
		slog.Debug(spew.Sdump(msg))
	}

	return t, nil
}

// stopAndQuit finalizes the running session and exits the timer. On a
// persistence failure the record is kept in memory and the user may retry.
func (t *Tracker) stopAndQuit() (tea.Model, tea.Cmd) {
	rec, err := t.Stop()
	if err != nil {
		if errors.Is(err, store.ErrPersistence) {
			t.saveErr = err
			t.stopped = &rec

			return t, nil
		}

		t.quitting = true

		return t, tea.Quit
	}

	t.stopped = &rec
	t.quitting = true

	t.postSession(rec)

	return t, tea.Batch(tea.ClearScreen, tea.Quit)
}
