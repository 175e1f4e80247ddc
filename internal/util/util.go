// Package util holds small helpers shared across packages, grounded on
// FrankyGo's internal/util (Nps, path resolution).
package util

import (
	"os"
	"path/filepath"
	"time"
)

// Nps computes nodes-per-second from a node count and elapsed duration,
// used by the perft CLI's reporting line.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}

// ResolveFile resolves a possibly-relative path against the current working
// directory and reports whether the resulting file exists.
func ResolveFile(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, false
	}
	if _, err := os.Stat(abs); err != nil {
		return abs, false
	}
	return abs, true
}
