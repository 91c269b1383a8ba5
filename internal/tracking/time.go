package tracking

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control time in assertions.
var timeNow = time.Now

// Now returns the current time as an RFC3339 UTC string.
func Now() string {
	return timeNow().UTC().Format(time.RFC3339)
}
