// Package config holds globally available configuration values, either
// defaulted, read from a TOML file, or overridden by command-line flags -
// the same three-tier precedence FrankyGo's internal/config uses.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/corechess/engine/internal/util"
)

// Log levels mirror github.com/op/go-logging's numeric Level values
// (CRITICAL=0 .. DEBUG=5) without importing that package here, so that
// internal/logging (which does import it) can depend on internal/config
// without an import cycle.
const (
	LevelCritical = 0
	LevelError    = 1
	LevelWarning  = 2
	LevelNotice   = 3
	LevelInfo     = 4
	LevelDebug    = 5
)

// LogLevels resolves a command-line level name to its numeric value.
var LogLevels = map[string]int{
	"critical": LevelCritical,
	"error":    LevelError,
	"warning":  LevelWarning,
	"notice":   LevelNotice,
	"info":     LevelInfo,
	"debug":    LevelDebug,
}

var (
	// ConfFile is the path to the TOML settings file, settable before Setup
	// is called (e.g. from a -config command-line flag).
	ConfFile = "./config.toml"

	// LogLevel is the active log verbosity, overridable by cmd line options.
	LogLevel = LevelInfo

	// Settings is the configuration tree read from ConfFile, or defaults if
	// the file is absent.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile (if present) and fills in defaults for anything it
// doesn't specify. Safe to call more than once; only the first call has
// effect, matching FrankyGo's Setup().
func Setup() {
	if initialized {
		return
	}
	Settings.Search = defaultSearchConfiguration()
	Settings.Eval = defaultEvalConfiguration()
	path, found := util.ResolveFile(ConfFile)
	if !found {
		path = ConfFile
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults (", err, ")")
	}
	initialized = true
}
