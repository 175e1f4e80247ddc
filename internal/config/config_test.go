package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelsMap(t *testing.T) {
	assert.Equal(t, LevelDebug, LogLevels["debug"])
	assert.Equal(t, LevelCritical, LogLevels["critical"])
	assert.Equal(t, LevelInfo, LogLevels["info"])
}

func TestSetupAppliesDefaultsWhenFileAbsent(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	Setup()

	assert.Equal(t, 6, Settings.Search.Depth)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.Equal(t, int16(100), Settings.Eval.PawnValue)
	assert.True(t, Settings.Eval.UsePieceSquareTables)
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	Settings.Search.Depth = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.Depth, "a second Setup call must not reset values already loaded")
}
