// Package lifecycle holds the timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, e.g. the DB ping or server shutdown.
const DefaultTimeout = 10 * time.Second
