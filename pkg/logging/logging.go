package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vectorprime/pkg/config"

	"github.com/phsym/console-slog"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "vectorprime.log"
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures slog to write structured logs to a rotating file.
// The dashboard owns the terminal, so nothing is written to stderr.
func Init(cfg config.Config) (*slog.Logger, error) {
	return initWith(cfg, nil)
}

// InitWithConsole is Init plus a colored human-readable copy of every record
// on console. The analysis service uses it.
func InitWithConsole(cfg config.Config, console io.Writer) (*slog.Logger, error) {
	return initWith(cfg, console)
}

func initWith(cfg config.Config, consoleOut io.Writer) (*slog.Logger, error) {
	level := parseLogLevel(cfg.LogLevel)
	handlerOptions := &slog.HandlerOptions{Level: level}

	var consoleHandler slog.Handler
	if consoleOut != nil {
		consoleHandler = console.NewHandler(consoleOut, &console.HandlerOptions{Level: level})
	}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		fallback := newHandler(cfg.LogFormat, io.Discard, handlerOptions)
		logger := slog.New(combine(fallback, consoleHandler))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(combine(newHandler(cfg.LogFormat, writer, handlerOptions), consoleHandler))
	slog.SetDefault(logger)
	return logger, nil
}

func combine(file, consoleHandler slog.Handler) slog.Handler {
	if consoleHandler == nil {
		return file
	}
	return slogmulti.Fanout(file, consoleHandler)
}

// DefaultLogPath returns ~/.vectorprime/logs/vectorprime.log.
func DefaultLogPath() string {
	return defaultLogPath()
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".vectorprime", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".vectorprime", "logs", defaultLogFile)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	case "console":
		return console.NewHandler(out, &console.HandlerOptions{Level: opts.Level, NoColor: true})
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
