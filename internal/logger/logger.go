// Package logger builds the zap logger shared by the server and the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config controls the logger. When File is empty logs go to stderr, so
// stdout stays free for command output.
type Config struct {
	Level      zapcore.Level
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a zap logger for cfg. A non-empty File is rotated with
// lumberjack.
func New(cfg Config) (*zap.Logger, error) {
	encoder, err := newEncoder(cfg.Format, cfg.Level)
	if err != nil {
		return nil, err
	}

	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		sink = zapcore.AddSync(rotation(cfg))
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(cfg.Level))
	return zap.New(core, zap.AddCaller()), nil
}

// NewWriter builds a logger writing to w. Tests use it to capture output.
func NewWriter(w io.Writer, cfg Config) (*zap.Logger, error) {
	encoder, err := newEncoder(cfg.Format, cfg.Level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(cfg.Level))
	return zap.New(core), nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	var out zapcore.Level
	if err := out.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logger: %w", err)
	}
	return out, nil
}

func rotation(cfg Config) *lumberjack.Logger {
	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	if out.MaxSize == 0 {
		out.MaxSize = 100
	}
	if out.MaxBackups == 0 {
		out.MaxBackups = 3
	}
	if out.MaxAge == 0 {
		out.MaxAge = 28
	}
	return out
}

func newEncoder(format string, level zapcore.Level) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	if level == zapcore.DebugLevel {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.CallerKey = "caller"
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.LevelKey = "level"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeName = zapcore.FullNameEncoder

	switch format {
	case "", FormatJSON:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", format)
	}
}
