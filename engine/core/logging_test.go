package core

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("LUMEN_LOG_LEVEL", "warn")
	assert.Equal(t, log.WarnLevel, logLevel())
}

func TestLogLevelDefaultsToDebug(t *testing.T) {
	t.Setenv("LUMEN_LOG_LEVEL", "")
	assert.Equal(t, log.DebugLevel, logLevel())
}

func TestLogLevelIgnoresUnknownValues(t *testing.T) {
	t.Setenv("LUMEN_LOG_LEVEL", "loudest")
	assert.Equal(t, log.DebugLevel, logLevel())
}
