// Package app defines the tally command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"tally/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tally app instance.
func Get() *cli.App {
	tallyApp := &cli.App{
		Name: "tally",
		Usage: `
		Tally is a personal work-session timer for the command line. It tracks
		labeled work sessions, watches for input inactivity, and reports
		progress toward a weekly hours target.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Print the weekly report (totals per category since Monday)",
				Action: reportAction,
			},
			{
				Name:   "chart",
				Usage:  "Show hours worked per weekday as a bar chart",
				Flags:  []cli.Flag{weekFlag, allTimeFlag},
				Action: chartAction,
			},
			{
				Name:   "list",
				Usage:  "Print a table of all logged sessions",
				Flags:  []cli.Flag{jsonFlag},
				Action: listAction,
			},
			{
				Name:   "status",
				Usage:  "Show hours remaining toward the weekly target",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			categoryFlag,
			descriptionFlag,
			noColorFlag,
			verboseFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return tallyApp
}
