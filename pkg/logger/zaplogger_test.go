package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogger_InfoWritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)
	l.SetEnv("test")

	l.Info("fetching weather", map[string]any{"city": "Mumbai"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "fetching weather", lines[0]["msg"])
	assert.Equal(t, "Mumbai", lines[0]["city"])
	assert.Equal(t, "test-app", lines[0]["app_name"])
	assert.Equal(t, "test", lines[0]["app_zone"])
	assert.Contains(t, lines[0]["caller_file"], "zaplogger_test.go")
	assert.NotEmpty(t, lines[0]["timestamp"])
}

func TestLogger_ErrorCarriesErrorText(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	l.Error(errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.NotEmpty(t, lines[0]["stack"])
}

func TestLogger_SetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	require.NoError(t, l.SetLevel("warn"))

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warning("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
}

func TestLogger_SetLevelRejectsUnknown(t *testing.T) {
	l := NewZapLogger("test-app", &bytes.Buffer{})
	assert.Error(t, l.SetLevel("chatty"))
}
