package logger

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger to provide structured logging
type Logger struct {
	*zap.Logger
}

// Options configures a Logger
type Options struct {
	// Environment selects the console encoder: "development" is human-readable, anything else is JSON
	Environment string
	// Level is the minimum level written to the console
	Level string
	// Dir holds the rotated log files. Empty disables file logging
	Dir string
	// Console receives console output. Defaults to os.Stderr so stdout stays reserved for demo output
	Console io.Writer
}

// New creates a new logger instance based on the options
func New(opts Options) (*Logger, error) {
	consoleLevel := zapcore.WarnLevel
	if opts.Level != "" {
		if err := consoleLevel.Set(opts.Level); err != nil {
			return nil, err
		}
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var consoleEncoder zapcore.Encoder
	if opts.Environment == "development" {
		// Development config (human-readable colored logs)
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleEncoderConfig)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), consoleLevel)

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
		core = zapcore.NewTee(core, fileCore(opts.Dir))
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		Logger: logger,
	}, nil
}

// fileCore routes logs to rotated files, one per minimum level
func fileCore(dir string) zapcore.Core {
	// No colors for files
	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	levels := []struct {
		name  string
		level zapcore.Level
	}{
		{"info", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
		{"warn", zapcore.WarnLevel},
		{"debug", zapcore.DebugLevel},
	}

	cores := make([]zapcore.Core, 0, len(levels))
	for _, l := range levels {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(dir, l.name+".log"),
			MaxSize:    100, // megabytes
			MaxBackups: 30,  // number of backups
			MaxAge:     30,  // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			zapcore.AddSync(writer),
			l.level,
		))
	}

	return zapcore.NewTee(cores...)
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.Named(name),
	}
}

// With creates a child logger with the given fields
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
	}
}

// Sugar returns a sugared logger
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.Logger.Sugar()
}
