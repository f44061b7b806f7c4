package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core), LevelWarn)

	l.Info("dropped")
	l.Warn("kept", String("field", "score"), Int("count", 2))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "score", entry.ContextMap()["field"])
	assert.EqualValues(t, 2, entry.ContextMap()["count"])

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("now visible")
	assert.Equal(t, 2, logs.Len())
}

func TestLogger_WithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core), LevelDebug).With(String("entity_id", "7"))

	l.Error("failed", Error(errors.New("boom")), Duration("took", time.Second), Float64("mean", 1.5))

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "7", ctx["entity_id"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, 1.5, ctx["mean"])
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens")
	assert.Equal(t, LevelFatal, l.GetLevel())
}

func TestNewWithOptions_RepeatedWarningsAreNotSampled(t *testing.T) {
	writeWarnings := func(sampling bool) []string {
		path := filepath.Join(t.TempDir(), "out.log")
		l := NewWithOptions(Options{Level: LevelWarn, OutputPaths: []string{path}, Sampling: sampling})
		for i := range 250 {
			l.Warn("skipping non-numeric field value", Int("record", i))
		}
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		return strings.Split(strings.TrimSpace(string(raw)), "\n")
	}

	lines := writeWarnings(false)
	require.Len(t, lines, 250)
	assert.Contains(t, lines[249], `"record":249`)

	assert.Less(t, len(writeWarnings(true)), 250)
}
