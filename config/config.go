// Package config is responsible for tally's configuration: file paths in
// the XDG base directories and the settings read from the YAML config file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"tally/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Tracker TrackerConfig
		Report  ReportConfig
		Display DisplayConfig
		Storage StorageConfig
	}

	// TrackerConfig holds session-tracking settings.
	TrackerConfig struct {
		IdleThreshold     time.Duration
		IdleCheckInterval time.Duration
		DefaultCategory   session.Category
		SessionCmd        string
		Notify            bool
	}

	// ReportConfig holds aggregation settings.
	ReportConfig struct {
		WeeklyTarget float64
		Weights      map[session.Category]float64
		ChartAllTime bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool
	}

	// StorageConfig selects and locates the session log backend.
	StorageConfig struct {
		Backend string
		LogPath string
		DBPath  string
	}
)

const Version = "v0.2.0"

// Supported storage backends.
const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

var (
	configDir      = "tally"
	configFileName = "config.yml"
	workLogName    = "work_log.json"
	dbFileName     = "tally.db"
	logFileName    = "tally.log"
	workLogPath    string
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func WorkLogPath() string {
	return workLogPath
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves all file paths in the XDG base directories,
// creating parent directories as needed. TALLY_ENV switches to a separate
// set of files so development runs never touch the real log.
func InitializePaths() {
	tallyEnv := strings.TrimSpace(os.Getenv("TALLY_ENV"))
	if tallyEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", tallyEnv)
		workLogName = fmt.Sprintf("work_log_%s.json", tallyEnv)
		dbFileName = fmt.Sprintf("tally_%s.db", tallyEnv)
		logFileName = fmt.Sprintf("tally_%s.log", tallyEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	workLogPath = filepath.Join(dataDir, workLogName)

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// Get loads the configuration from the config file, writing a default file
// on first run.
func Get() (*Config, error) {
	cfg, err := load(configFilePath)
	if err != nil {
		return nil, errReadConfig.Wrap(err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendBolt:
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	if c.Tracker.IdleThreshold <= 0 {
		return errInvalidIdleThreshold.Fmt(c.Tracker.IdleThreshold)
	}

	if c.Tracker.IdleCheckInterval <= 0 {
		return errInvalidIdleThreshold.Fmt(c.Tracker.IdleCheckInterval)
	}

	if c.Report.WeeklyTarget < 0 {
		return errInvalidWeeklyTarget.Fmt(c.Report.WeeklyTarget)
	}

	_, err := session.ParseCategory(string(c.Tracker.DefaultCategory))
	if err != nil {
		return err
	}

	return nil
}
