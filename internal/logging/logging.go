// Package logging builds the zap loggers used by the library and the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format is the log output encoding.
type Format string

const (
	FormatConsole Format = "CONSOLE"
	FormatJSON    Format = "JSON"
	FormatPretty  Format = "PRETTY"
)

// Name is the logger name used by the notification log.
const Name = "maxslog"

var initOnce sync.Once

// ParseLevel maps DEBUG/INFO/WARN/ERROR (any case) to a zap level; unknown
// names fall back to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat returns the named format or def when name is unknown.
func ParseFormat(name string, def Format) Format {
	switch f := Format(strings.ToUpper(strings.TrimSpace(name))); f {
	case FormatConsole, FormatJSON, FormatPretty:
		return f
	}
	return def
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New returns a logger writing to w.
func New(w io.Writer, level string, format Format) *zap.Logger {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	switch format {
	case FormatJSON:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	case FormatPretty:
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = timeEncoder
		cfg.ConsoleSeparator = " | "
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = timeEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(ParseLevel(level)))
	return zap.New(core, zap.AddCaller())
}

// Initialize installs a global logger configured from LOGGING_LEVEL and
// LOGGING_FORMAT, writing to stderr. Only the first call has an effect.
func Initialize() {
	initOnce.Do(func() {
		level := getEnv("LOGGING_LEVEL", "INFO")
		format := ParseFormat(getEnv("LOGGING_FORMAT", ""), FormatConsole)
		zap.ReplaceGlobals(New(os.Stderr, level, format))
	})
}

// Default returns the named logger derived from the current global logger.
func Default() *zap.Logger {
	return zap.L().Named(Name)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
