// Package stickmap turns analog stick positions into directional virtual
// button presses for controller-to-keyboard/mouse remapping.
//
// A Stick owns eight DirectionalButtons, one per compass direction, and an
// optional ModifierButton. Feeding the stick raw samples presses and
// releases those buttons; the buttons in turn answer dead zone and
// distance queries, manage configuration set switches, and describe the
// output slots they trigger.
package stickmap

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
	"github.com/BrandonKowalski/stickmap/pkg/stickmap/internal"
)

// Options configures the process-wide logging and localization.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level ("debug", "info", "warn", "error")
	Debug    bool   // Also log engine internals at debug level
	Language string // Label language tag (e.g. "de"), English when empty
}

// Init sets up logging and label localization. Call it once at startup,
// before creating sticks. STICKMAP_LOG_LEVEL and STICKMAP_LANG override the
// matching options.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Debug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	language := options.Language
	if env := constants.EnvLanguage(); env != "" {
		language = env
	}
	if language != "" {
		internal.SetLanguage(language)
	} else {
		internal.SetLanguage()
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLanguage switches the language used for direction and button labels.
func SetLanguage(langs ...string) {
	internal.SetLanguage(langs...)
}
