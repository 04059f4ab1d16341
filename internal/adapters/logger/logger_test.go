package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"homenest/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	tags     []string
	messages []map[string]interface{}
	closed   bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, message.(port.Fields))
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"trace_id": "t-1"}).Error("fetch failed", errors.New("boom"), port.Fields{"status_code": 502})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "fetch failed", record["msg"])
	assert.Equal(t, "t-1", record["trace_id"])
	assert.Equal(t, "boom", record["error"])
	assert.EqualValues(t, 502, record["status_code"])
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Debug("hidden too", nil)
	logger.Warn("visible", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestFluentLoggerAdapter(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	require.Error(t, err)

	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	scoped := adapter.WithFields(port.Fields{"component": "web"})
	scoped.Debug("dropped", nil)
	scoped.Error("failed", errors.New("boom"), port.Fields{"id": "1"})

	require.Len(t, poster.messages, 1)
	assert.Equal(t, "error", poster.tags[0])
	msg := poster.messages[0]
	assert.Equal(t, "web", msg["component"])
	assert.Equal(t, "1", msg["id"])
	assert.Equal(t, "boom", msg["error"])
	assert.Equal(t, "failed", msg["message"])

	require.NoError(t, adapter.Close())
	assert.True(t, poster.closed)
}

func TestMultiLoggerAdapter(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	require.Error(t, err)

	var first, second bytes.Buffer
	multi, err := NewMultiloggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: &first}),
		NewSlogAdapter(SlogConfig{Writer: &second}),
	)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"use_case": "BrowseProperties"}).Info("done", nil)

	assert.Contains(t, first.String(), "use_case=BrowseProperties")
	assert.Contains(t, second.String(), "use_case=BrowseProperties")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}
