package errnotify

import "runtime/debug"

// Wrap returns a func that calls fn.
//
// While catching is disabled the call is a plain pass-through, including panics.
// While catching is enabled a panic in fn is recovered and passed to Notify as a *PanicError
// together with opts, and the wrapper returns normally.
//
// The catching flag is read on every call, so toggling it affects already wrapped functions.
func (n *Notifier) Wrap(fn func(), opts any) func() {
	return func() {
		if !n.catching.Load() {
			fn()
			return
		}
		n.handle(n.guard(func() error {
			fn()
			return nil
		}), opts)
	}
}

// WrapErr is like Wrap for functions returning an error.
//
// While catching is enabled both panics and non-nil returned errors are routed to Notify,
// and the wrapper returns nil.
func (n *Notifier) WrapErr(fn func() error, opts any) func() error {
	return func() error {
		if !n.catching.Load() {
			return fn()
		}
		n.handle(n.guard(fn), opts)
		return nil
	}
}

// WrapValue is like WrapErr for functions returning a value and an error.
//
// On a caught failure the wrapper returns the zero R and a nil error.
func WrapValue[R any](n *Notifier, fn func() (R, error), opts any) func() (R, error) {
	return func() (R, error) {
		if !n.catching.Load() {
			return fn()
		}
		var res R
		out := n.guard(func() error {
			var err error
			res, err = fn()
			return err
		})
		if out.failed() {
			n.handle(out, opts)
			var zero R
			return zero, nil
		}
		return res, nil
	}
}

// WrapFunc is like WrapValue for functions taking one argument.
func WrapFunc[A, R any](n *Notifier, fn func(A) (R, error), opts any) func(A) (R, error) {
	return func(arg A) (R, error) {
		return WrapValue(n, func() (R, error) { return fn(arg) }, opts)()
	}
}

// outcome is the result of a guarded call.
type outcome struct {
	err error
}

func (o outcome) failed() bool { return o.err != nil }

func (n *Notifier) guard(fn func() error) (out outcome) {
	defer func() {
		if p := recover(); p != nil {
			pe := &PanicError{Value: p}
			if !n.cfg.noStack {
				pe.Stack = debug.Stack()
			}
			out = outcome{err: pe}
		}
	}()
	return outcome{err: fn()}
}

func (n *Notifier) handle(out outcome, opts any) {
	if out.failed() {
		n.Notify(out.err, opts)
	}
}
