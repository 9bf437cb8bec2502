// Package zapsink adapts a zap logger to errnotify.Logger.
//
//	n := errnotify.New(errnotify.WithLogger(zapsink.New(zapLogger)))
package zapsink

import (
	"go.uber.org/zap"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

// Logger writes errnotify diagnostics through zap. Key/value args become structured fields.
type Logger struct {
	s *zap.SugaredLogger
}

var _ errnotify.Logger = (*Logger)(nil)

// New returns a Logger backed by l. A nil l yields a no-op logger.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{s: l.Sugar()}
}

func (l *Logger) Info(msg string, args ...any)  { l.s.Infow(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.s.Warnw(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.s.Errorw(msg, args...) }
