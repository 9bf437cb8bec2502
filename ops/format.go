package ops

import "net/http"

// Format controls the response rendering format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func formatFromRequest(r *http.Request, def Format) Format {
	if r == nil || r.URL == nil {
		return def
	}
	switch r.URL.Query().Get("format") {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return def
	}
}
