// Package zcatch provides a process-wide error catcher: wrapped functions hand their panics
// (and returned errors) to registered subscribers instead of propagating them, while catching
// is enabled.
//
// The package-level functions operate on a default errnotify.Notifier. Applications that prefer
// explicit ownership create their own with errnotify.New and pass it around instead.
//
// # Quick start
//
//	zcatch.Init([]any{
//		func(err error, opts any) { log.Printf("caught in %v: %v", opts, err) },
//	}, true, true)
//
//	refresh := zcatch.Wrap(refreshCache, "cache-refresh")
//	refresh() // a panic in refreshCache is reported, not propagated
//
// # States
//
//   - Catching disabled (default): wrapped functions behave exactly like the original,
//     panics included.
//   - Catching enabled: failures are routed to subscribers and swallowed. Catching cannot be
//     enabled without at least one valid subscriber.
//   - Logging enabled: rejected subscribers, failing subscribers and Failback outcomes are
//     written to the Logger (slog.Default() unless configured).
//
// # Building blocks
//
//   - github.com/evan-idocoding/zcatch/rt/errnotify: Notifier, subscribers, wrappers
//   - github.com/evan-idocoding/zcatch/httpx: Recover middleware routing handler panics to a Notifier
//   - github.com/evan-idocoding/zcatch/ops: HTTP handlers to inspect and toggle the flags
//   - github.com/evan-idocoding/zcatch/promsub: Prometheus counting subscriber
//   - github.com/evan-idocoding/zcatch/sink/zapsink, sink/logrussink: Logger adapters
package zcatch
