package zcatch

import "github.com/evan-idocoding/zcatch/rt/errnotify"

// Failback reports the outcome of a subscriber's own handling.
type Failback = errnotify.Failback

// SubscriberFunc is the full subscriber signature.
type SubscriberFunc = errnotify.SubscriberFunc

// ErrorSubscriber is implemented by values that receive caught errors.
type ErrorSubscriber = errnotify.ErrorSubscriber

// Named attaches an explicit name to a subscriber candidate.
type Named = errnotify.Named

// PanicError is the error subscribers receive when a wrapped function panics.
type PanicError = errnotify.PanicError

var std = errnotify.New()

// Default returns the Notifier behind the package-level functions.
func Default() *errnotify.Notifier { return std }

// Init replaces the subscribers and sets both flags. See errnotify.Notifier.Init.
func Init(subscribers any, catching, logging bool) {
	std.Init(subscribers, catching, logging)
}

// EnableErrorCatching turns catching on, unless there are no subscribers.
func EnableErrorCatching() { std.EnableErrorCatching() }

// DisableErrorCatching turns catching off.
func DisableErrorCatching() { std.DisableErrorCatching() }

// EnableLogging turns diagnostics on.
func EnableLogging() { std.EnableLogging() }

// DisableLogging turns diagnostics off.
func DisableLogging() { std.DisableLogging() }

// CatchingEnabled reports whether wrapped functions currently intercept failures.
func CatchingEnabled() bool { return std.CatchingEnabled() }

// LoggingEnabled reports whether diagnostics are written.
func LoggingEnabled() bool { return std.LoggingEnabled() }

// Wrap returns fn guarded by the default Notifier. See errnotify.Notifier.Wrap.
func Wrap(fn func(), opts any) func() { return std.Wrap(fn, opts) }

// WrapErr returns fn guarded by the default Notifier. See errnotify.Notifier.WrapErr.
func WrapErr(fn func() error, opts any) func() error { return std.WrapErr(fn, opts) }

// Notify hands err to the subscribers of the default Notifier.
func Notify(err error, opts any) { std.Notify(err, opts) }
