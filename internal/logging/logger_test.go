package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"":        LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSONRespectsLevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(LogLevelWarn, "json", &buf).With("run_id", "abc")

	log.Info("dropped")
	log.Warn("kept", "bytes", 42)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.EqualValues(t, 42, entry["bytes"])
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	l = l.With("k", "v")
	l.Error("nothing happens")
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
}
