package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with convenience methods.
type Logger struct {
	*zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level   string // "debug", "info", "warn", "error"
	Console bool   // colored console lines instead of JSON

	// Sink receives encoded entries. Nil means stdout.
	Sink zapcore.WriteSyncer
}

// ForService configures the HTTP server: JSON on stdout unless dev is set.
func ForService(level string, dev bool) Config {
	return Config{Level: level, Console: dev}
}

// CLIConfig keeps stdout free for command output.
func CLIConfig(level string) Config {
	return Config{Level: level, Console: true, Sink: zapcore.Lock(os.Stderr)}
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	sink := cfg.Sink
	if sink == nil {
		sink = zapcore.Lock(os.Stdout)
	}

	var encoder zapcore.Encoder
	opts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if cfg.Console {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	} else {
		encoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{Logger: zap.New(zapcore.NewCore(encoder, sink, level), opts...)}, nil
}

// NewDefault is the fallback when configuration is unusable: info level JSON
// on stdout.
func NewDefault() *Logger {
	logger, err := New(ForService("info", false))
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.SecondsDurationEncoder
	return ec
}
