// Package logger provides the per-run audit log for maude.
//
// A Logger is constructed once per run and passed to the components that
// need it; there is no package-level logging state. Every entry is written
// as JSON to the run's audit trail and, in verbose mode, mirrored to the
// console in a human-readable form.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a Logger.
type Options struct {
	// AuditTrail receives every entry as JSON. Nil disables the audit trail.
	AuditTrail io.Writer

	// Console receives entries when Verbose is set. Nil disables it.
	Console io.Writer

	// Verbose enables debug entries and console output.
	Verbose bool
}

// Logger writes audit entries for one run.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a logger from opts.
func New(opts Options) *Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core
	if opts.AuditTrail != nil {
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(enc),
			zapcore.AddSync(opts.AuditTrail),
			level,
		))
	}
	if opts.Verbose && opts.Console != nil {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(opts.Console),
			level,
		))
	}
	if len(cores) == 0 {
		return Nop()
	}

	return &Logger{s: zap.New(zapcore.NewTee(cores...)).Sugar()}
}

// Nop returns a logger that discards everything. Useful for testing.
func Nop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

// With returns a child logger that adds key-value pairs to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{s: l.s.With(keysAndValues...)}
}

// Debug logs a message visible only in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	l.s.Debugf(format, args...)
}

// Section logs a section header marking a new stage of the run.
func (l *Logger) Section(name string) {
	l.s.Info(fmt.Sprintf("=== %s ===", name))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.s.Infof(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.s.Warnf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.s.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.s.Sync()
}
