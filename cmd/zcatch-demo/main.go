// Command zcatch-demo serves a few HTTP endpoints whose panics are routed to error subscribers.
//
//	zcatch-demo serve --addr :8080 --config zcatch.yaml
//
// Endpoints:
//   - GET  /hello                 plain handler
//   - GET  /panic                 always panics
//   - GET  /divide?a=1&b=0        integer division (b=0 panics)
//   - POST /report?msg=...        reports an error manually
//   - GET  /-/catch               catching/logging flags
//   - POST /-/catch/set?catching=on|off&logging=on|off
//   - GET  /metrics               Prometheus metrics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
