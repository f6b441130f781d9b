package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"tally/config"
	"tally/internal/duration"
	"tally/internal/log"
	"tally/internal/session"
	"tally/internal/ui"
	"tally/report"
	"tally/store"
	"tally/tracker"
)

const (
	envNoColor      = "NO_COLOR"
	envTallyNoColor = "TALLY_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// openLog opens the session log with the configured storage backend.
func openLog(cfg *config.Config) (*store.Log, error) {
	var backend store.Store

	switch cfg.Storage.Backend {
	case config.BackendBolt:
		b, err := store.NewBolt(cfg.Storage.DBPath)
		if err != nil {
			return nil, err
		}

		backend = b
	default:
		backend = store.NewJSON(cfg.Storage.LogPath)
	}

	return store.Open(backend)
}

// defaultAction starts a new work session and runs the interactive timer
// until the session is stopped.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	category := string(cfg.Tracker.DefaultCategory)
	if ctx.String("type") != "" {
		category = ctx.String("type")
	}

	cat, err := session.ParseCategory(category)
	if err != nil {
		return err
	}

	sessLog, err := openLog(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = sessLog.Close()
	}()

	t := tracker.New(sessLog, cfg)

	err = t.Start(cat, ctx.String("desc"))
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	rec, ok := t.Finalized()
	if !ok {
		return nil
	}

	pterm.Success.Printfln(
		"Work session stopped. Duration: %s logged.",
		duration.Clock(rec.Duration),
	)

	remaining := report.RemainingHours(
		sessLog.Records(),
		time.Now(),
		cfg.Report.WeeklyTarget,
	)
	pterm.Info.Printfln(
		"Remaining this week: %s",
		report.RemainingDisplay(remaining),
	)

	return nil
}

// reportAction prints the weekly report.
func reportAction(_ *cli.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	sessLog, err := openLog(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = sessLog.Close()
	}()

	fmt.Fprintln(config.Stdout, report.Text(sessLog.Records(), time.Now()))

	return nil
}

// chartAction renders the per-weekday bar chart. The reporting window
// defaults to the chart_all_time config setting and can be overridden per
// invocation.
func chartAction(ctx *cli.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	sessLog, err := openLog(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = sessLog.Close()
	}()

	currentWeekOnly := !cfg.Report.ChartAllTime
	if ctx.Bool("week") {
		currentWeekOnly = true
	}

	if ctx.Bool("all-time") {
		currentWeekOnly = false
	}

	days := report.DailyHours(sessLog.Records(), time.Now(), currentWeekOnly)

	fmt.Fprintln(config.Stdout, report.Chart(days))

	return nil
}

// listAction prints a table of all logged sessions.
func listAction(ctx *cli.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	sessLog, err := openLog(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = sessLog.Close()
	}()

	records := sessLog.Records()

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	data := make([][]string, 0, len(records)+1)
	data = append(data, []string{
		"#",
		"STARTED",
		"ENDED",
		"TYPE",
		"HOURS",
		"DESCRIPTION",
	})

	for i := range records {
		rec := records[i]

		data = append(data, []string{
			strconv.Itoa(i + 1),
			rec.Start.Format("Jan 02, 2006 03:04:05 PM"),
			rec.End.Format("Jan 02, 2006 03:04:05 PM"),
			string(rec.Category),
			duration.Hours(rec.Duration),
			rec.Description,
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// statusAction prints progress toward the weekly target.
func statusAction(_ *cli.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	sessLog, err := openLog(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = sessLog.Close()
	}()

	now := time.Now()
	records := sessLog.Records()

	totals := report.WeeklyTotals(records, now)
	remaining := report.RemainingHours(records, now, cfg.Report.WeeklyTarget)

	pterm.Printfln(
		"This week: %s of %s hrs",
		ui.Green(fmt.Sprintf("%.2f", totals.TotalHours)),
		fmt.Sprintf("%.2f", cfg.Report.WeeklyTarget),
	)
	pterm.Printfln("Remaining: %s", ui.Yellow(report.RemainingDisplay(remaining)))
	pterm.Printfln(
		"All time:  %s hrs",
		fmt.Sprintf("%.2f", sessLog.TotalHours()),
	)

	return nil
}

// editConfigAction opens the tally config file in the user's default text
// editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TALLY_NO_COLOR is set
	if _, exists := os.LookupEnv(envTallyNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitializePaths()

	log.Init(config.LogFilePath(), ctx.Bool("verbose"))

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tally")

	return nil
}
