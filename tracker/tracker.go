// Package tracker operates the work-session state machine and drives the
// interactive timer display.
package tracker

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"tally/config"
	"tally/internal/duration"
	"tally/internal/session"
	"tally/store"
)

// Tracker owns the single active session. It is either idle (no current
// record) or active; stopping always finalizes, there is no pause state.
// All mutation happens on the caller's goroutine: ticks and idle checks are
// delivered by an external scheduler, so no locking is needed.
type Tracker struct {
	log          *store.Log
	opts         *config.Config
	now          func() time.Time
	current      *session.Record
	elapsed      time.Duration
	lastActivity time.Time

	onStarted func(session.Record)
	onStopped func(session.Record)
	onIdle    func()

	// interactive timer state
	lastTick     time.Time
	idleForm     *huh.Form
	idleContinue bool
	descForm     *huh.Form
	descDraft    string
	saveErr      error
	stopped      *session.Record
	help         help.Model
	quitting     bool
}

// Option modifies a Tracker at construction time.
type Option func(*Tracker)

// WithClock replaces the wall-clock source. Start/end timestamps, idle
// arithmetic, and final durations all come from this clock, never from the
// tick counter, so a missed tick cannot skew the logged duration.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// OnStarted registers a callback invoked with the new record after a
// session starts.
func OnStarted(fn func(session.Record)) Option {
	return func(t *Tracker) {
		t.onStarted = fn
	}
}

// OnStopped registers a callback invoked with the finalized record after a
// session stops.
func OnStopped(fn func(session.Record)) Option {
	return func(t *Tracker) {
		t.onStopped = fn
	}
}

// OnIdle registers a callback invoked whenever an idle check finds the
// time since the last recorded activity above the configured threshold.
// The tracker never stops a session on its own: the callback's handler
// decides between RecordActivity (keep going) and Stop (abandon).
func OnIdle(fn func()) Option {
	return func(t *Tracker) {
		t.onIdle = fn
	}
}

// New returns an idle Tracker committing completed sessions to log.
func New(log *store.Log, cfg *config.Config, opts ...Option) *Tracker {
	t := &Tracker{
		log:  log,
		opts: cfg,
		now:  time.Now,
		help: help.New(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Active reports whether a session is currently running.
func (t *Tracker) Active() bool {
	return t.current != nil
}

// Current returns a copy of the active session record.
func (t *Tracker) Current() (session.Record, bool) {
	if t.current == nil {
		return session.Record{}, false
	}

	return *t.current, true
}

// Start begins a new session. The elapsed counter and the idle watchdog
// are both reset to the current clock reading.
func (t *Tracker) Start(category session.Category, description string) error {
	if t.current != nil {
		return ErrSessionActive
	}

	now := t.now()

	t.current = &session.Record{
		Start:       now,
		Category:    category,
		Description: description,
	}
	t.elapsed = 0
	t.lastActivity = now

	slog.Info("session started",
		slog.String("category", string(category)),
		slog.Time("start", now),
	)

	if t.onStarted != nil {
		t.onStarted(*t.current)
	}

	return nil
}

// RecordActivity refreshes the idle watchdog. Callers invoke this on every
// detected input event; only the most recent timestamp matters.
func (t *Tracker) RecordActivity() {
	t.lastActivity = t.now()
}

// Advance moves the elapsed-time counter forward by the wall-clock interval
// since the previous tick. It is a no-op while idle. The counter is for
// display only.
func (t *Tracker) Advance(delta time.Duration) {
	if t.current == nil {
		return
	}

	t.elapsed += delta
}

// Elapsed returns the display elapsed time for the active session.
func (t *Tracker) Elapsed() time.Duration {
	return t.elapsed
}

// DisplayTimer formats the elapsed time as "HH:MM:SS".
func (t *Tracker) DisplayTimer() string {
	return duration.Clock(t.elapsed)
}

// CheckIdle compares the time since the last recorded activity against the
// idle threshold and fires the OnIdle callback when it is exceeded. It
// reports whether the threshold was crossed and never stops the session
// itself.
func (t *Tracker) CheckIdle() bool {
	if t.current == nil {
		return false
	}

	idle := t.now().Sub(t.lastActivity)
	if idle <= t.opts.Tracker.IdleThreshold {
		return false
	}

	slog.Info("idle threshold crossed",
		slog.Duration("idle", idle),
		slog.Duration("threshold", t.opts.Tracker.IdleThreshold),
	)

	if t.onIdle != nil {
		t.onIdle()
	}

	return true
}

// UpdateDescription replaces the active session's description. Blank text
// is rejected.
func (t *Tracker) UpdateDescription(text string) error {
	if t.current == nil {
		return ErrNoActiveSession
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyDescription
	}

	t.current.Description = text

	return nil
}

// Stop finalizes the active session and commits it to the log. The tracker
// transitions to idle and the finalized record is returned even when
// persistence fails: the record is retained in the in-memory log so the
// caller can retry with the log's Flush.
func (t *Tracker) Stop() (session.Record, error) {
	if t.current == nil {
		return session.Record{}, ErrNoActiveSession
	}

	rec := t.current
	rec.Finalize(t.now())

	err := t.log.Append(*rec)

	t.current = nil
	t.elapsed = 0

	slog.Info("session stopped",
		slog.Time("end", rec.End),
		slog.String("duration", duration.Hours(rec.Duration)),
	)

	if t.onStopped != nil {
		t.onStopped(*rec)
	}

	return *rec, err
}

// Finalized returns the record committed by the interactive timer, if the
// session was stopped before the program exited.
func (t *Tracker) Finalized() (session.Record, bool) {
	if t.stopped == nil {
		return session.Record{}, false
	}

	return *t.stopped, true
}
