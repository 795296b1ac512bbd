package telemetry_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/internal/telemetry"
)

func TestNewLoggerTo_JSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := telemetry.NewLoggerTo(&buf, telemetry.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("strategy", "astar").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "astar", entry["strategy"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerTo_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := telemetry.NewLoggerTo(&buf, telemetry.LoggingConfig{Format: "console", NoColor: true})
	require.NoError(t, err)

	l.Debug().Msg("below default level")
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "below default level")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, closer, err := telemetry.NewLogger(telemetry.LoggingConfig{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	l.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestParseLevel(t *testing.T) {
	l, err := telemetry.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)

	l, err = telemetry.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)

	_, err = telemetry.ParseLevel("verbose")
	require.Error(t, err)

	_, err = telemetry.NewLoggerTo(io.Discard, telemetry.LoggingConfig{Level: "verbose"})
	require.Error(t, err)
}

func TestMetrics_DisabledIsNoop(t *testing.T) {
	m, err := telemetry.NewMetrics(telemetry.DefaultMetricsConfig())
	require.NoError(t, err)
	assert.False(t, m.Enabled())
	assert.Nil(t, m.Registry())

	m.RecordBatch()
	m.SearchStarted()
	m.SearchFinished("bfs", "", telemetry.OutcomeSolved, time.Millisecond, 10, 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Records(t *testing.T) {
	cfg := telemetry.DefaultMetricsConfig()
	cfg.Enabled = true
	m, err := telemetry.NewMetrics(cfg)
	require.NoError(t, err)
	require.True(t, m.Enabled())

	m.RecordBatch()
	m.SearchStarted()
	m.SearchFinished("astar", "manhattan_distance", telemetry.OutcomeSolved, 2*time.Millisecond, 120, 40)
	m.SearchStarted()
	m.SearchFinished("astar", "manhattan_distance", telemetry.OutcomeSolved, 3*time.Millisecond, 80, 30)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				byName[f.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				byName[f.GetName()] += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				byName[f.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 2.0, byName["statespace_searches_total"])
	assert.Equal(t, 1.0, byName["statespace_batches_total"])
	assert.Equal(t, 0.0, byName["statespace_active_searches"])
	assert.Equal(t, 2.0, byName["statespace_search_nodes_expanded"])
	assert.Equal(t, 2.0, byName["statespace_search_duration_seconds"])

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "statespace_search_max_fringe")
}
