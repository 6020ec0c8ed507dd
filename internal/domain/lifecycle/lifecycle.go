// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start/stop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
