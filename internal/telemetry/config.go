package telemetry

import "os"

var eventsEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect.
	if v, ok := os.LookupEnv("TOOLCHAT_TRACE_EVENTS"); ok {
		eventsEnabled = v == "1"
	} else {
		eventsEnabled = true
	}
}
