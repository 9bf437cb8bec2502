package ops

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

type catchStateConfig struct {
	format Format
}

// CatchStateOption configures CatchStateHandler / CatchStateSetHandler.
type CatchStateOption func(*catchStateConfig)

// WithCatchStateDefaultFormat sets the default response format.
//
// This default can be overridden per request by URL query:
//   - ?format=json
//   - ?format=text
//
// Default is FormatText.
func WithCatchStateDefaultFormat(f Format) CatchStateOption {
	return func(c *catchStateConfig) { c.format = f }
}

func applyCatchStateOptions(opts []CatchStateOption) catchStateConfig {
	cfg := catchStateConfig{format: FormatText}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.format != FormatText && cfg.format != FormatJSON {
		cfg.format = FormatText
	}
	return cfg
}

// CatchState is a point-in-time snapshot of a Notifier's flags.
type CatchState struct {
	CatchingEnabled bool `json:"catching_enabled"`
	LoggingEnabled  bool `json:"logging_enabled"`
}

// CatchStateOf returns a snapshot of n.
func CatchStateOf(n *errnotify.Notifier) CatchState {
	if n == nil {
		return CatchState{}
	}
	return CatchState{
		CatchingEnabled: n.CatchingEnabled(),
		LoggingEnabled:  n.LoggingEnabled(),
	}
}

type catchStateResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	State *CatchState `json:"state,omitempty"`
	Old   *CatchState `json:"old,omitempty"`
}

// CatchStateHandler returns a handler that outputs the catching/logging flags of n.
//
// Behavior:
//   - GET/HEAD only; other methods return 405.
//   - Text by default; ?format=json|text overrides the default per request.
func CatchStateHandler(n *errnotify.Notifier, opts ...CatchStateOption) http.Handler {
	if n == nil {
		panic("ops: nil notifier")
	}
	cfg := applyCatchStateOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeCatchState(w, r, format, http.StatusMethodNotAllowed, catchStateResponse{Error: "method not allowed"})
			return
		}
		st := CatchStateOf(n)
		writeCatchState(w, r, format, http.StatusOK, catchStateResponse{OK: true, State: &st})
	})
}

// CatchStateSetHandler returns a handler that toggles the flags of n.
//
// Input:
//   - POST only
//   - URL query: ?catching=on|off and/or ?logging=on|off (also true/false, 1/0, enable/disable).
//     At least one is required.
//
// Logging is applied before catching, so a refused catching switch (no subscribers) is
// logged under the new logging state. A refused switch is not an error: the response simply
// shows catching_enabled=false.
func CatchStateSetHandler(n *errnotify.Notifier, opts ...CatchStateOption) http.Handler {
	if n == nil {
		panic("ops: nil notifier")
	}
	cfg := applyCatchStateOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := formatFromRequest(r, cfg.format)
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			writeCatchState(w, r, format, http.StatusMethodNotAllowed, catchStateResponse{Error: "method not allowed"})
			return
		}

		q := r.URL.Query()
		catching, catchingSet, okC := parseSwitch(q, "catching")
		logging, loggingSet, okL := parseSwitch(q, "logging")
		if !okC || !okL {
			writeCatchState(w, r, format, http.StatusBadRequest, catchStateResponse{
				Error: "invalid value (want one of: on, off)",
			})
			return
		}
		if !catchingSet && !loggingSet {
			writeCatchState(w, r, format, http.StatusBadRequest, catchStateResponse{
				Error: "missing catching or logging",
			})
			return
		}

		old := CatchStateOf(n)
		if loggingSet {
			if logging {
				n.EnableLogging()
			} else {
				n.DisableLogging()
			}
		}
		if catchingSet {
			if catching {
				n.EnableErrorCatching()
			} else {
				n.DisableErrorCatching()
			}
		}
		st := CatchStateOf(n)
		writeCatchState(w, r, format, http.StatusOK, catchStateResponse{OK: true, Old: &old, State: &st})
	})
}

// parseSwitch returns (value, present, valid).
func parseSwitch(q map[string][]string, key string) (bool, bool, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return false, false, true
	}
	switch strings.ToLower(strings.TrimSpace(vs[0])) {
	case "on", "true", "1", "enable", "enabled":
		return true, true, true
	case "off", "false", "0", "disable", "disabled":
		return false, true, true
	default:
		return false, true, false
	}
}

func writeCatchState(w http.ResponseWriter, r *http.Request, f Format, code int, resp catchStateResponse) {
	w.Header().Set("Cache-Control", "no-store")
	switch f {
	case FormatJSON:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		if !resp.OK {
			_, _ = w.Write([]byte(resp.Error + "\n"))
			return
		}
		_, _ = w.Write([]byte(renderCatchStateText(resp)))
	}
}

func renderCatchStateText(resp catchStateResponse) string {
	// Stable and greppable: catch\t<key>\t<value>\n
	var b strings.Builder
	b.Grow(128)
	line := func(key string, v bool) {
		b.WriteString("catch\t")
		b.WriteString(key)
		b.WriteByte('\t')
		b.WriteString(strconv.FormatBool(v))
		b.WriteByte('\n')
	}
	if resp.Old != nil {
		line("old_catching_enabled", resp.Old.CatchingEnabled)
		line("old_logging_enabled", resp.Old.LoggingEnabled)
	}
	if resp.State != nil {
		line("catching_enabled", resp.State.CatchingEnabled)
		line("logging_enabled", resp.State.LoggingEnabled)
	}
	return b.String()
}
