package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Has no effect once a logger
// has been built.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			logWriter = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			logWriter = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			logWriter = os.Stdout
			return
		}

		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		logger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the engine itself.
// It defaults to error level so that per-sample debug output stays quiet.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)

		setup()

		internalLogger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: internalLevelVar,
		}).WithAttrs([]slog.Attr{slog.String("component", "stickmap")}))
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" onto slog
// levels. Anything else is info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
