package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "debug", Output: &buf})

	log.Info("generated artifact", "artifact", "metadata")
	assert.Contains(t, buf.String(), "generated artifact")
	assert.Contains(t, buf.String(), "artifact=metadata")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Format: "json", Output: &buf})

	log.Warn("skipping line", "line", "oops")
	assert.Contains(t, buf.String(), `"line":"oops"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "error", Output: &buf})

	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Error(errors.New("boom"), "loud")
	assert.Contains(t, buf.String(), "boom")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Output: &buf}).WithComponent("metadata")

	log.Info("hello")
	assert.Contains(t, buf.String(), "component=metadata")
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info("into the void")
		Nop().Error(errors.New("x"), "still fine")
	})
}
