// Package logging wraps zap with a process-wide default logger and a
// logger carried in a context.
package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type ctxKey struct{}

// zapLogger is the part of *zap.Logger the wrapper forwards to.
type zapLogger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) *zap.Logger
	Sync() error
}

type Logger struct {
	log zapLogger
}

var (
	globalOnce sync.Once
	global     *Logger
)

// Wrap returns a Logger writing to l.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{log: l}
}

// SetGlobal installs l as the logger returned by New. Only the first call
// has an effect.
func SetGlobal(l *zap.Logger) {
	if l == nil {
		return
	}
	globalOnce.Do(func() {
		global = Wrap(l)
	})
}

// New returns the global logger, building one from the environment when
// none was installed.
func New() *Logger {
	globalOnce.Do(func() {
		logger, err := Build("")
		if err != nil {
			log.Panicf("could not create logger: %v", err)
		}
		global = Wrap(logger)
	})
	return global
}

// FromContext returns the logger stored in ctx, or the global one.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
			return l
		}
	}
	return New()
}

// Build creates a zap logger for the given level name ("debug", "info",
// ...). An empty level keeps the default of the environment:
// production JSON when RESULTS_ENVIRONMENT=production, colored
// development output otherwise.
func Build(level string) (*zap.Logger, error) {
	var cfg zap.Config
	if os.Getenv("RESULTS_ENVIRONMENT") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	if level != "" {
		atomicLevel, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, errs.Wrap(err)
		}
		cfg.Level = atomicLevel
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	return logger, errs.Wrap(err)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return Wrap(l.log.With(fields...))
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}
