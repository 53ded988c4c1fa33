package commands

import (
	"go.uber.org/zap"

	"github.com/specweld/specweld/fragment"
)

// zapLogger adapts a zap.SugaredLogger to the fragment.Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

// Ensure zapLogger implements Logger at compile time.
var _ fragment.Logger = (*zapLogger)(nil)

func (l *zapLogger) Debug(msg string, attrs ...any) { l.s.Debugw(msg, attrs...) }
func (l *zapLogger) Info(msg string, attrs ...any)  { l.s.Infow(msg, attrs...) }
func (l *zapLogger) Warn(msg string, attrs ...any)  { l.s.Warnw(msg, attrs...) }
func (l *zapLogger) Error(msg string, attrs ...any) { l.s.Errorw(msg, attrs...) }

func (l *zapLogger) With(attrs ...any) fragment.Logger {
	return &zapLogger{s: l.s.With(attrs...)}
}

// NewLogger returns the pipeline logger and its flush function: a zap
// development logger in verbose mode, no-op otherwise.
func NewLogger(verbose bool) (fragment.Logger, func()) {
	if !verbose {
		return fragment.NopLogger{}, func() {}
	}
	z, err := zap.NewDevelopment()
	if err != nil {
		return fragment.NopLogger{}, func() {}
	}
	return &zapLogger{s: z.Sugar()}, func() { _ = z.Sync() }
}
