package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, false, true)
	t.Cleanup(Discard)

	Debug("hidden")
	Info("match selected", "ngo", "Roti Bank")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "match selected", entry["msg"])
	assert.Equal(t, "Roti Bank", entry["ngo"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestConfigureDebugText(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, true, false)
	t.Cleanup(Discard)

	Debug("threshold computed", "hours", 21.5)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "hours=21.5")
}

func TestContextAndScopedLoggers(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, true, true)
	t.Cleanup(Discard)

	ctx := context.Background()
	DebugContext(ctx, "safety evaluated")
	InfoContext(ctx, "donation rejected")
	ErrorContext(ctx, "fetch failed")
	With("url", "https://example.org/ngos.yaml").Warn("retrying")
	Logger().Info("direct")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 5)

	var scoped map[string]any
	require.NoError(t, json.Unmarshal(lines[3], &scoped))
	assert.Equal(t, "WARN", scoped["level"])
	assert.Equal(t, "https://example.org/ngos.yaml", scoped["url"])
	assert.Contains(t, string(lines[0]), `"level":"DEBUG"`)
	assert.Contains(t, string(lines[2]), `"level":"ERROR"`)
}
