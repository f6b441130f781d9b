package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"tally/internal/session"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyStorageBackend    = "storage.backend"
	keyIdleThreshold     = "tracker.idle_threshold"
	keyIdleCheckInterval = "tracker.idle_check_interval"
	keyDefaultCategory   = "tracker.default_category"
	keySessionCmd        = "tracker.cmd"
	keyNotify            = "notifications.enabled"
	keyWeeklyTarget      = "report.weekly_target"
	keyChartAllTime      = "report.chart_all_time"
	keyWeights           = "categories.weights"
	keyDarkTheme         = "display.dark_theme"
)

const (
	defaultIdleThreshold     = time.Minute
	defaultIdleCheckInterval = 30 * time.Second
	defaultWeeklyTarget      = 128
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyStorageBackend, BackendJSON)
	v.SetDefault(keyIdleThreshold, defaultIdleThreshold.String())
	v.SetDefault(keyIdleCheckInterval, defaultIdleCheckInterval.String())
	v.SetDefault(keyDefaultCategory, string(session.DefaultCategory))
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyWeeklyTarget, defaultWeeklyTarget)
	v.SetDefault(keyChartAllTime, true)
	v.SetDefault(keyDarkTheme, true)

	weights := make(map[string]float64)
	for c, w := range session.Weights {
		weights[string(c)] = w
	}

	v.SetDefault(keyWeights, weights)
}

// load reads the configuration file through Viper, writing a file with the
// default settings if none exists yet.
func load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setViperDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		if werr := v.WriteConfig(); werr != nil {
			return nil, errWriteConfig.Wrap(werr)
		}
	}

	cfg := &Config{
		Tracker: TrackerConfig{
			IdleThreshold:     v.GetDuration(keyIdleThreshold),
			IdleCheckInterval: v.GetDuration(keyIdleCheckInterval),
			DefaultCategory:   session.Category(v.GetString(keyDefaultCategory)),
			SessionCmd:        v.GetString(keySessionCmd),
			Notify:            v.GetBool(keyNotify),
		},
		Report: ReportConfig{
			WeeklyTarget: v.GetFloat64(keyWeeklyTarget),
			ChartAllTime: v.GetBool(keyChartAllTime),
			Weights:      loadWeights(v),
		},
		Display: DisplayConfig{
			DarkTheme: v.GetBool(keyDarkTheme),
		},
		Storage: StorageConfig{
			Backend: v.GetString(keyStorageBackend),
			LogPath: workLogPath,
			DBPath:  dbFilePath,
		},
	}

	return cfg, nil
}

// loadWeights reads the category weight mapping, falling back to the
// built-in weights for categories the file omits.
func loadWeights(v *viper.Viper) map[session.Category]float64 {
	weights := make(map[session.Category]float64, len(session.Weights))

	for c, w := range session.Weights {
		weights[c] = w
	}

	for name, value := range v.GetStringMap(keyWeights) {
		cat, err := session.ParseCategory(name)
		if err != nil {
			continue
		}

		switch w := value.(type) {
		case float64:
			weights[cat] = w
		case int:
			weights[cat] = float64(w)
		}
	}

	return weights
}
