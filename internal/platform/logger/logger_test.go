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

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestJSONLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "prep", Out: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"profile_id": "p1"}).Warn("content fallback", map[string]any{
		"lang":  "en",
		"error": errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "content fallback", entry["message"])
	assert.Equal(t, "prep", entry["app"])
	assert.Equal(t, "p1", entry["profile_id"])
	assert.Equal(t, "en", entry["lang"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.With(map[string]any{"a": 1}).Error("nothing", nil)
}
