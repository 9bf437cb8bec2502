// Package promsub provides an errnotify subscriber that counts notified errors in Prometheus.
//
//	sub, err := promsub.New(prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	notifier.Init([]any{sub, otherSubscriber}, true, true)
//
// The counter is zcatch_notified_errors_total{kind, source}:
//   - kind is "panic" for *errnotify.PanicError, "error" otherwise;
//   - source is the notification options when they are a string or fmt.Stringer, else "unknown".
package promsub

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

const (
	KindPanic = "panic"
	KindError = "error"

	unknownSource = "unknown"
)

type config struct {
	namespace string
	name      string
}

// Option configures New.
type Option func(*config)

// WithNamespace sets the metric namespace. Default is "zcatch".
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithName sets the subscriber name used in errnotify diagnostics. Default is "prometheus".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// Subscriber counts the errors it is notified of.
type Subscriber struct {
	name    string
	counter *prometheus.CounterVec
}

var _ errnotify.ErrorSubscriber = (*Subscriber)(nil)

// New creates a Subscriber and registers its collector with reg (nil reg: not registered).
func New(reg prometheus.Registerer, opts ...Option) (*Subscriber, error) {
	cfg := config{namespace: "zcatch", name: "prometheus"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Subscriber{
		name: cfg.name,
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "notified_errors_total",
			Help:      "Errors routed to error subscribers, by failure kind and source.",
		}, []string{"kind", "source"}),
	}
	if reg != nil {
		if err := reg.Register(s.counter); err != nil {
			return nil, fmt.Errorf("promsub: register collector: %w", err)
		}
	}
	return s, nil
}

// NotifyError increments the counter and reports the kind through fb.
func (s *Subscriber) NotifyError(err error, opts any, fb errnotify.Failback) {
	kind := Kind(err)
	s.counter.WithLabelValues(kind, source(opts)).Inc()
	if fb != nil {
		fb(nil, kind)
	}
}

// SubscriberName implements the naming hook used by errnotify diagnostics.
func (s *Subscriber) SubscriberName() string { return s.name }

// Collector returns the underlying collector, e.g. to register it with a second registry.
func (s *Subscriber) Collector() prometheus.Collector { return s.counter }

// Kind classifies err as KindPanic or KindError.
func Kind(err error) string {
	var pe *errnotify.PanicError
	if errors.As(err, &pe) {
		return KindPanic
	}
	return KindError
}

func source(opts any) string {
	switch v := opts.(type) {
	case string:
		if v != "" {
			return v
		}
	case fmt.Stringer:
		return v.String()
	}
	return unknownSource
}
