package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps a plain run of the demonstration quiet on stderr.
const DefaultLevel = zapcore.WarnLevel

type Logger struct {
	*zap.Logger
	zap.AtomicLevel
}

var logger Logger

func init() {
	logger = New(zapcore.AddSync(os.Stderr), DefaultLevel)
}

// New builds a JSON logger writing to ws at the given level.
func New(ws zapcore.WriteSyncer, level zapcore.Level) Logger {
	atomicLevel := zap.NewAtomicLevelAt(level)

	zapLogger := zap.New(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zapcore.EncoderConfig{
				TimeKey:        "ts",
				LevelKey:       "level",
				NameKey:        "logger",
				CallerKey:      "caller",
				MessageKey:     "message",
				StacktraceKey:  "stacktrace",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeLevel:    zapcore.LowercaseLevelEncoder,
				EncodeTime:     zapcore.ISO8601TimeEncoder,
				EncodeDuration: zapcore.SecondsDurationEncoder,
				EncodeCaller:   zapcore.ShortCallerEncoder,
			}),
			ws,
			atomicLevel,
		),
	)

	return Logger{
		zapLogger,
		atomicLevel,
	}
}

// ParseLevel maps debug, info, warn, error or fatal to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	case "fatal":
		return zap.FatalLevel, nil
	}
	return DefaultLevel, fmt.Errorf("logger: unknown level %q", s)
}

// L returns the process logger for injection into other packages.
func L() *zap.Logger {
	return logger.Logger
}

func Debug(msg string, args ...zap.Field) {
	logger.Debug(msg, args...)
}

func Info(msg string, args ...zap.Field) {
	logger.Info(msg, args...)
}

func Warn(msg string, args ...zap.Field) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...zap.Field) {
	logger.Error(msg, args...)
}

func Fatal(msg string, args ...zap.Field) {
	logger.Fatal(msg, args...)
}

func SetLevel(level zapcore.Level) {
	logger.SetLevel(level)
}

func Level() zapcore.Level {
	return logger.AtomicLevel.Level()
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = logger.Sync()
}
