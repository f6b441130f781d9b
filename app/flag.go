package app

import "github.com/urfave/cli/v2"

var (
	categoryFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Work type for the new session: Easy, Medium, or Hard (default: Medium)",
	}

	descriptionFlag = &cli.StringFlag{
		Name:    "desc",
		Aliases: []string{"d"},
		Usage:   "Task description for the new session. Can be edited while the session runs",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log debug messages to the log file",
	}

	weekFlag = &cli.BoolFlag{
		Name:  "week",
		Usage: "Restrict the chart to sessions started this week",
	}

	allTimeFlag = &cli.BoolFlag{
		Name:  "all-time",
		Usage: "Chart the full session log regardless of the chart_all_time setting",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print in JSON format",
	}
)
