package config

import "tally/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %q (must be json or bolt)",
	}

	errInvalidIdleThreshold = &apperr.Error{
		Message: "idle settings must be positive durations, got %v",
	}

	errInvalidWeeklyTarget = &apperr.Error{
		Message: "weekly target must not be negative, got %v",
	}
)
