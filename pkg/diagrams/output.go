package diagrams

import (
	"os"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
)

// EnsureOutputDir creates dir and its parents if absent. It is idempotent.
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return cerrors.OutputDir{Path: dir, Reason: "no output directory given"}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cerrors.OutputDir{Path: dir, Reason: err.Error()}
	}
	return nil
}
