package tracker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/session"
)

var (
	baseStyle  = lipgloss.NewStyle().Padding(1, 2)
	timerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	categoryStyles = map[session.Category]lipgloss.Style{
		session.Easy:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		session.Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		session.Hard:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

func (t *Tracker) timerView(rec session.Record) string {
	var s strings.Builder

	badge := "[" + string(rec.Category) + "]"
	if style, ok := categoryStyles[rec.Category]; ok {
		badge = style.Render(badge)
	}

	s.WriteString(badge)
	s.WriteString(
		hintStyle.Render(" since " + rec.Start.Format("03:04:05 PM")),
	)
	s.WriteString("\n\n")
	s.WriteString(timerStyle.Render(t.DisplayTimer()))
	s.WriteString("\n\n")

	desc := rec.Description
	if desc == "" {
		desc = hintStyle.Render("no description yet")
	}

	s.WriteString(desc)
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.stop,
		defaultKeymap.describe,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Tracker) saveErrView() string {
	var s strings.Builder

	s.WriteString(errorStyle.Render("Failed to save the session log"))
	s.WriteString("\n\n" + t.saveErr.Error())
	s.WriteString("\n\nThe session is still held in memory.")
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.retry,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Tracker) View() string {
	if t.quitting {
		return ""
	}

	if t.saveErr != nil {
		return baseStyle.Render(t.saveErrView())
	}

	rec, ok := t.Current()
	if !ok {
		return ""
	}

	view := t.timerView(rec)

	if t.idleForm != nil {
		view += "\n\n" + t.idleForm.View()
	}

	if t.descForm != nil {
		view += "\n\n" + t.descForm.View()
	}

	return baseStyle.Render(view)
}
