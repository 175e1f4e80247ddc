// Package logging wraps github.com/op/go-logging behind a single
// GetLog(name) constructor, the way FrankyGo's franky_logging/internal
// logging packages do: one stdout backend, one format string, level driven
// by internal/config rather than hardcoded.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/corechess/engine/internal/config"
)

var (
	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile:-20s} %{level:7s}: %{message}`,
	)
	once sync.Once
)

func setupBackend() {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	logging.SetBackend(leveled)
}

// GetLog returns a named logger backed by the shared stdout backend,
// creating the backend on first use.
func GetLog(name string) *logging.Logger {
	once.Do(setupBackend)
	return logging.MustGetLogger(name)
}
