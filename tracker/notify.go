package tracker

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"tally/internal/duration"
	"tally/internal/session"
)

// notifyIdle sends a desktop notification when the idle threshold is
// crossed, so the prompt is noticed even with the terminal unfocused.
func (t *Tracker) notifyIdle() {
	if !t.opts.Tracker.Notify {
		return
	}

	err := beeep.Notify(
		"Distraction alert",
		"You have been idle for a while. Do you want to continue working?",
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// postSession runs after a session has been committed: desktop notification
// with the logged duration, then the user's configured command.
func (t *Tracker) postSession(rec session.Record) {
	if t.opts.Tracker.Notify {
		msg := fmt.Sprintf(
			"Work session stopped. Duration logged: %s",
			duration.Clock(rec.Duration),
		)

		err := beeep.Notify("Work stopped", msg, "")
		if err != nil {
			slog.Error(
				"unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	err := t.runSessionCmd(t.opts.Tracker.SessionCmd)
	if err != nil {
		slog.Error("session command failed", slog.Any("error", err))
	}
}

// runSessionCmd executes the specified command.
func (t *Tracker) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
