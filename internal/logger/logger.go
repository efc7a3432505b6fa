package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the application-wide structured logging contract. Every call
// carries a component tag so log streams from the controller, config
// watcher and views stay separable.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a config-file level string to a zerolog level, falling
// back to info for anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LevelFromEnv resolves the startup log level before the config file has
// been read. LOG_LEVEL wins, DEBUG=1 is a shorthand for debug.
func LevelFromEnv() zerolog.Level {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return ParseLevel(lvl)
	}
	if os.Getenv("DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
