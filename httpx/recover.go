// Recover middleware.
//
// Recover routes panics from downstream handlers to the subscribers of an errnotify.Notifier.
//
// Behavior summary:
//   - While catching is disabled the handler runs unguarded and panics reach net/http as usual.
//   - While catching is enabled, the panic is handed to the Notifier as an *errnotify.PanicError
//     (options default to the *http.Request) and the server stays alive.
//   - http.ErrAbortHandler is re-panicked without notification to preserve net/http semantics.
//   - If the response has not started, it writes 500 Internal Server Error.
//
// Minimal usage:
//
//	h := httpx.Recover(notifier)(finalHandler)
package httpx

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

// Middleware is a standard net/http middleware.
type Middleware func(http.Handler) http.Handler

// RecoverOption configures the Recover middleware.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	options func(r *http.Request) any
}

// WithRequestOptions sets the function deriving the options value handed to subscribers.
//
// By default subscribers receive the *http.Request.
func WithRequestOptions(fn func(r *http.Request) any) RecoverOption {
	return func(c *recoverConfig) { c.options = fn }
}

// Recover returns a middleware that routes panics from downstream handlers to n.
//
// It panics if n is nil.
func Recover(n *errnotify.Notifier, opts ...RecoverOption) Middleware {
	if n == nil {
		panic("httpx: nil notifier")
	}
	cfg := recoverConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.options == nil {
		cfg.options = func(r *http.Request) any { return r }
	}

	return func(next http.Handler) http.Handler {
		if next == nil {
			panic("httpx: nil next handler")
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !n.CatchingEnabled() {
				next.ServeHTTP(w, r)
				return
			}

			sw := &recoverResponseWriter{w: w}
			var completed, aborted bool

			n.Wrap(func() {
				defer func() {
					p := recover()
					if p == nil {
						return
					}
					if p == http.ErrAbortHandler {
						aborted = true
						return
					}
					panic(p)
				}()
				next.ServeHTTP(sw, r)
				completed = true
			}, cfg.options(r))()

			if aborted {
				panic(http.ErrAbortHandler)
			}
			if !completed && !sw.wroteHeader {
				http.Error(sw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	}
}

// recoverResponseWriter tracks whether the response has started.
// It forwards optional interfaces so streaming and hijacking keep working.
type recoverResponseWriter struct {
	w           http.ResponseWriter
	wroteHeader bool
}

func (w *recoverResponseWriter) Header() http.Header { return w.w.Header() }

func (w *recoverResponseWriter) WriteHeader(statusCode int) {
	w.wroteHeader = true
	w.w.WriteHeader(statusCode)
}

func (w *recoverResponseWriter) Write(p []byte) (int, error) {
	// net/http writes headers implicitly on first Write.
	w.wroteHeader = true
	return w.w.Write(p)
}

// Unwrap returns the underlying ResponseWriter (used by http.ResponseController).
func (w *recoverResponseWriter) Unwrap() http.ResponseWriter { return w.w }

// Flush implements http.Flusher if supported by the underlying ResponseWriter.
func (w *recoverResponseWriter) Flush() {
	if f, ok := w.w.(http.Flusher); ok {
		w.wroteHeader = true
		f.Flush()
	}
}

// Hijack implements http.Hijacker if supported by the underlying ResponseWriter.
func (w *recoverResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.w.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("httpx: underlying ResponseWriter does not support hijacking")
	}
	c, rw, err := h.Hijack()
	if err == nil {
		// A hijacked connection must not get an HTTP response.
		w.wroteHeader = true
	}
	return c, rw, err
}

// ReadFrom implements io.ReaderFrom if supported by the underlying ResponseWriter.
func (w *recoverResponseWriter) ReadFrom(r io.Reader) (int64, error) {
	rf, ok := w.w.(io.ReaderFrom)
	if !ok {
		// Go through Write so the response is marked as started.
		return io.Copy(struct{ io.Writer }{w}, r)
	}
	w.wroteHeader = true
	return rf.ReadFrom(r)
}
