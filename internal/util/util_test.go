package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNps(t *testing.T) {
	assert.Equal(t, uint64(1000), Nps(1000, time.Second))
	assert.Equal(t, uint64(2000), Nps(1000, 500*time.Millisecond))
	assert.Equal(t, uint64(0), Nps(1000, 0), "zero elapsed time must not divide by zero")
	assert.Equal(t, uint64(0), Nps(1000, -time.Second))
}

func TestResolveFileExisting(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	self := filepath.Join(wd, "util.go")

	abs, ok := ResolveFile("util.go")
	assert.True(t, ok)
	assert.Equal(t, self, abs)
}

func TestResolveFileMissing(t *testing.T) {
	_, ok := ResolveFile("does-not-exist-anywhere.toml")
	assert.False(t, ok)
}
