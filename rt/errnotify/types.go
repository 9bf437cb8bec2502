package errnotify

// Logger is the diagnostic sink of a Notifier.
//
// *slog.Logger satisfies Logger. Messages are fixed strings; associated values are passed as
// key/value args.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Failback reports the outcome of a subscriber's own handling. Either argument may be nil.
//
// A Failback may be called at any time, from any goroutine, any number of times.
type Failback func(err error, data any)

// SubscriberFunc is the full subscriber signature.
type SubscriberFunc func(err error, opts any, fb Failback)

// ErrorSubscriber is implemented by values that receive caught errors.
//
// Implementations may also provide SubscriberName() string to control the name used in
// diagnostics.
type ErrorSubscriber interface {
	NotifyError(err error, opts any, fb Failback)
}

// Named attaches an explicit name to a subscriber candidate.
type Named struct {
	Name string
	Func any
}

// Subscriber is a validated error subscriber.
type Subscriber struct {
	Name string
	fn   SubscriberFunc
}

type namer interface {
	SubscriberName() string
}
