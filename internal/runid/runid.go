// Package runid mints per-process identifiers and log timestamps.
package runid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func NowTS() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// New returns an identifier for this process run, attached to every log line.
func New() string {
	// Avoid embedding timestamps in identifiers. Use a random UUID.
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("run-%d", time.Now().UTC().UnixNano())
	}
	return "run-" + id.String()
}
