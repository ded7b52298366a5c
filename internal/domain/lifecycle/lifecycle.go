// Package lifecycle holds shared values for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
