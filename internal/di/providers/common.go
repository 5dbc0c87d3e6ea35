package providers

import (
	"io"
	"time"
)

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second
)

// LogOutput is where the logger writes.
type LogOutput struct {
	io.Writer
}
