package calculation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] shown 2\n")
	assert.Contains(t, out, "[ERROR] failed: boom\n")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestEngineLogsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	engine := NewProjectionEngine()
	engine.SetLogger(NewWriterLogger(&buf, LevelDebug))

	_, err := engine.Project(apefRequest(t, "2025-01-01", "2025-01-02", 0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[DEBUG] projecting 1000000")
	assert.Contains(t, buf.String(), "[INFO] projection complete")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
