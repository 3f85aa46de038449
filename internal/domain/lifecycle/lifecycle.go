// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (server shutdown, database ping) registered as fx hooks.
const DefaultTimeout = 10 * time.Second
