// Package errnotify catches failures of wrapped functions and routes them to subscribers.
//
// A Notifier holds two flags (catching, logging) and an ordered list of validated subscribers.
// Functions wrapped by a Notifier behave exactly like the original function while catching is
// disabled. While catching is enabled, a panic (or, for functions returning an error, a non-nil
// error) is intercepted, handed to every subscriber in registration order, and the wrapper
// returns zero values instead of propagating the failure.
//
// # Subscribers
//
// Subscribers are registered in one shot with Init, which replaces any previous list.
// A candidate is accepted when it is:
//   - a non-nil func whose first parameter is of type error and whose signature is one of
//     func(error), func(error, any) or func(error, any, Failback);
//   - a value implementing ErrorSubscriber;
//   - a Named wrapping one of the above, which overrides the name used in diagnostics.
//
// Invalid candidates are dropped. When logging is enabled the reason is written to the Logger.
//
//	n := errnotify.New()
//	n.Init([]any{
//		func(err error) { metrics.Inc() },
//		errnotify.Named{Name: "audit", Func: func(err error, opts any, fb errnotify.Failback) {
//			go func() {
//				id, sendErr := sendAudit(err, opts)
//				fb(sendErr, id)
//			}()
//		}},
//	}, true, true)
//
//	handle := n.Wrap(func() { process(job) }, "job-worker")
//	handle() // a panic in process is reported to subscribers, not to the caller
//
// # Notification
//
// Notify calls subscribers synchronously. A subscriber that panics is recovered and notification
// of that error STOPS: subscribers registered after it are not called for that error. The
// Failback passed to each subscriber lets it report the outcome of its own (possibly
// asynchronous) handling; outcomes are only logged, never tracked.
//
// # Concurrency
//
// A Notifier is safe for concurrent use. Flag reads and notification are lock-free; Init and the
// Enable/Disable setters are serialized.
package errnotify
