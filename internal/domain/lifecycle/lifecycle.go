// Package lifecycle holds shared constants for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of the
// long-lived connections (postgres, redis, http listener).
const DefaultTimeout = 10 * time.Second
