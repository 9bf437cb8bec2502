package errnotify

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
)

const (
	msgSkipping      = "Skipping error subscriber: "
	msgNotFunction   = "Subscriber is not a function"
	msgFirstArg      = "First argument of subscriber function must be of type error"
	msgShape         = "Subscriber function must match func(error[, any[, Failback]])"
	msgNoSubscribers = "No valid error subscribers provided. Use Init to pass valid error subscribers"
	msgNotSlice      = "errorSubscribers must be a slice of functions"
)

// Notifier holds the catching/logging flags and the subscriber list.
//
// The zero value is ready to use: catching and logging are disabled and there are no
// subscribers. A Notifier must not be copied after first use.
type Notifier struct {
	cfg config

	// mu serializes mutations. Readers use the atomics directly.
	mu          sync.Mutex
	catching    atomic.Bool
	logging     atomic.Bool
	subscribers atomic.Pointer[[]Subscriber]
}

// New returns a Notifier with catching and logging disabled and no subscribers.
func New(opts ...Option) *Notifier {
	return &Notifier{cfg: applyOptions(opts)}
}

// CatchingEnabled reports whether wrapped functions currently intercept failures.
func (n *Notifier) CatchingEnabled() bool { return n.catching.Load() }

// LoggingEnabled reports whether diagnostics are written to the Logger.
func (n *Notifier) LoggingEnabled() bool { return n.logging.Load() }

// EnableLogging turns diagnostics on.
func (n *Notifier) EnableLogging() {
	n.mu.Lock()
	n.logging.Store(true)
	n.mu.Unlock()
}

// DisableLogging turns diagnostics off.
func (n *Notifier) DisableLogging() {
	n.mu.Lock()
	n.logging.Store(false)
	n.mu.Unlock()
}

// EnableErrorCatching turns catching on.
//
// If there are no subscribers, catching stays off (and a warning is logged when logging is
// enabled): intercepting failures nobody observes would only hide them.
func (n *Notifier) EnableErrorCatching() {
	var d diagnostics
	n.mu.Lock()
	n.enableCatchingLocked(&d)
	n.mu.Unlock()
	d.flush(n.log())
}

// DisableErrorCatching turns catching off. Wrapped functions become plain pass-through calls.
func (n *Notifier) DisableErrorCatching() {
	n.mu.Lock()
	n.catching.Store(false)
	n.mu.Unlock()
}

// Init (re)configures n in one step:
//  1. the logging flag is set to logging;
//  2. subscribers must be nil or a slice/array of candidates, otherwise an error is logged
//     (if logging) and Init returns, leaving the subscriber list and catching flag unchanged;
//  3. the subscriber list is replaced by the valid candidates (see BuildSubscriberList);
//  4. catching is enabled or disabled as requested, with the same empty-list rule as
//     EnableErrorCatching.
func (n *Notifier) Init(subscribers any, catching, logging bool) {
	var d diagnostics
	n.mu.Lock()
	n.initLocked(subscribers, catching, logging, &d)
	n.mu.Unlock()
	d.flush(n.log())
}

// initLocked queues its diagnostics in d; they are written once n.mu is released so a
// Logger may call back into n.
func (n *Notifier) initLocked(subscribers any, catching, logging bool, d *diagnostics) {
	n.logging.Store(logging)

	candidates, ok := candidateList(subscribers)
	if !ok {
		if logging {
			d.error(msgNotSlice)
		}
		return
	}

	list := buildSubscriberList(candidates, logging, d)
	n.subscribers.Store(&list)

	if catching {
		n.enableCatchingLocked(d)
	} else {
		n.catching.Store(false)
	}
}

// BuildSubscriberList filters candidates down to valid subscribers, preserving order.
//
// It does not modify n; rejected candidates are logged when logging is enabled.
func (n *Notifier) BuildSubscriberList(candidates []any) []Subscriber {
	var d diagnostics
	out := buildSubscriberList(candidates, n.logging.Load(), &d)
	d.flush(n.log())
	return out
}

func buildSubscriberList(candidates []any, logging bool, d *diagnostics) []Subscriber {
	out := make([]Subscriber, 0, len(candidates))
	for i, c := range candidates {
		if s, ok := buildSubscriber(i, c, logging, d); ok {
			out = append(out, s)
		}
	}
	return out
}

func buildSubscriber(index int, candidate any, logging bool, d *diagnostics) (Subscriber, bool) {
	var name string
	if named, ok := candidate.(Named); ok {
		name, candidate = named.Name, named.Func
	}

	// A typed nil satisfies ErrorSubscriber but cannot be called.
	if es, ok := candidate.(ErrorSubscriber); ok && !isNil(candidate) {
		if name == "" {
			name = subscriberName(es)
		}
		return Subscriber{Name: name, fn: es.NotifyError}, true
	}

	if !isFunction(candidate) {
		if logging {
			d.warn(fmt.Sprintf("%s%v at errorSubscribers index %d", msgSkipping, candidate, index))
			d.warn(msgNotFunction)
		}
		return Subscriber{}, false
	}

	if name == "" {
		name = funcName(candidate)
	}

	if args := argumentTypes(candidate); len(args) == 0 || args[0] != errorType {
		if logging {
			d.warn(msgSkipping + name)
			d.warn(msgFirstArg)
		}
		return Subscriber{}, false
	}

	fn, ok := adaptFunc(candidate)
	if !ok {
		if logging {
			d.warn(msgSkipping + name)
			d.warn(msgShape)
		}
		return Subscriber{}, false
	}
	return Subscriber{Name: name, fn: fn}, true
}

func (n *Notifier) enableCatchingLocked(d *diagnostics) {
	if len(n.list()) == 0 {
		n.catching.Store(false)
		if n.logging.Load() {
			d.warn(msgNoSubscribers)
		}
		return
	}
	n.catching.Store(true)
}

func (n *Notifier) list() []Subscriber {
	if p := n.subscribers.Load(); p != nil {
		return *p
	}
	return nil
}

func (n *Notifier) log() Logger {
	if n.cfg.logger != nil {
		return n.cfg.logger
	}
	return slog.Default()
}

func candidateList(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case []any:
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

type diagLine struct {
	warn bool
	msg  string
}

// diagnostics holds log lines produced under n.mu until the lock is released.
type diagnostics []diagLine

func (d *diagnostics) warn(msg string)  { *d = append(*d, diagLine{warn: true, msg: msg}) }
func (d *diagnostics) error(msg string) { *d = append(*d, diagLine{msg: msg}) }

func (d diagnostics) flush(l Logger) {
	for _, line := range d {
		if line.warn {
			l.Warn(line.msg)
		} else {
			l.Error(line.msg)
		}
	}
}
