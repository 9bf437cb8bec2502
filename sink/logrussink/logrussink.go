// Package logrussink adapts a logrus logger to errnotify.Logger.
package logrussink

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

// badKey is the field name used for a trailing value without a key (same as log/slog).
const badKey = "!BADKEY"

// Logger writes errnotify diagnostics through logrus. Key/value args become fields.
type Logger struct {
	entry *logrus.Entry
}

var _ errnotify.Logger = (*Logger)(nil)

// New returns a Logger backed by l. A nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) *Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// NewEntry returns a Logger that keeps the fields already attached to e.
func NewEntry(e *logrus.Entry) *Logger {
	if e == nil {
		return New(nil)
	}
	return &Logger{entry: e}
}

func (l *Logger) Info(msg string, args ...any)  { l.with(args).Info(msg) }
func (l *Logger) Warn(msg string, args ...any)  { l.with(args).Warn(msg) }
func (l *Logger) Error(msg string, args ...any) { l.with(args).Error(msg) }

func (l *Logger) with(args []any) *logrus.Entry {
	if len(args) == 0 {
		return l.entry
	}
	return l.entry.WithFields(fields(args))
}

func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			f[badKey] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		f[key] = args[i+1]
	}
	return f
}
