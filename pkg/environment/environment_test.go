package environment

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/log"
	"github.com/litmuschaos/probe-diagrams/pkg/scenario"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

func TestGetENV(t *testing.T) {
	tests := map[string]struct {
		env  map[string]string
		want types.RunDetails
	}{
		"defaults": {
			env: map[string]string{},
			want: types.RunDetails{
				OutputDir: "diagrams",
				Preset:    "probe-diagrams",
				Format:    "png",
				LogLevel:  "info",
			},
		},
		"overrides": {
			env: map[string]string{
				"DIAGRAMS_OUTPUT_DIR":         "out",
				"DIAGRAMS_FORMAT":             "svg",
				"DIAGRAMS_PARALLEL":           "true",
				"DIAGRAMS_DATA":               "1",
				"DIAGRAMS_METRICS_FILE":       "metrics.prom",
				"LOG_LEVEL":                   "debug",
				"OTEL_EXPORTER":               "otlp",
				"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
			},
			want: types.RunDetails{
				OutputDir:     "out",
				Preset:        "probe-diagrams",
				Format:        "svg",
				DumpData:      true,
				Parallel:      true,
				MetricsFile:   "metrics.prom",
				LogLevel:      "debug",
				TraceExporter: "otlp",
				TraceEndpoint: "localhost:4317",
			},
		},
		"unparsable booleans fall back to false": {
			env: map[string]string{"DIAGRAMS_PARALLEL": "sometimes"},
			want: types.RunDetails{
				OutputDir: "diagrams",
				Preset:    "probe-diagrams",
				Format:    "png",
				LogLevel:  "info",
			},
		},
	}
	keys := []string{
		"DIAGRAMS_OUTPUT_DIR", "DIAGRAMS_PRESET", "DIAGRAMS_SCENARIO_FILE", "DIAGRAMS_FORMAT",
		"DIAGRAMS_DATA", "DIAGRAMS_PARALLEL", "DIAGRAMS_METRICS_FILE", "LOG_LEVEL",
		"OTEL_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT",
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, key := range keys {
				t.Setenv(key, tt.env[key])
			}
			var got types.RunDetails
			GetENV(&got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetENVWarnsOnInvalidBoolean(t *testing.T) {
	previous := logrus.StandardLogger().Out
	var buf bytes.Buffer
	log.Configure(&buf)
	defer logrus.SetOutput(previous)

	t.Setenv("DIAGRAMS_PARALLEL", "yes")
	t.Setenv("DIAGRAMS_DATA", "true")
	var got types.RunDetails
	GetENV(&got)

	assert.False(t, got.Parallel)
	assert.True(t, got.DumpData)
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), `DIAGRAMS_PARALLEL=\"yes\" is not a boolean`)
	assert.NotContains(t, buf.String(), "DIAGRAMS_DATA")
}

func TestLoadScenarioFile(t *testing.T) {
	scenarios, err := LoadScenarioFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	readiness := scenarios[0]
	assert.Equal(t, types.ReadinessProbe, readiness.Kind)
	assert.Equal(t, int32(5), readiness.Probe.PeriodSeconds)
	assert.Equal(t, "/ready", readiness.Probe.HTTPGet.Path)
	require.NotNil(t, readiness.Rule.End)
	assert.Equal(t, 45.0, *readiness.Rule.End)
	assert.Equal(t, "#2ca02c", readiness.Decisions[1].Color)

	liveness := scenarios[1]
	assert.Nil(t, liveness.Rule.End)
	require.NotNil(t, liveness.Probe.TerminationGracePeriodSeconds)
	assert.Equal(t, int64(15), *liveness.Probe.TerminationGracePeriodSeconds)

	for _, s := range scenarios {
		result, err := scenario.Simulate(s)
		require.NoError(t, err, s.Name)
		assert.Empty(t, result.Unreached, s.Name)
	}
}

func TestParseScenariosErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "scenarios:\n  - name: a\n    periodSecs: 2\n",
		"no scenarios":    "scenarios: []\n",
		"malformed yaml":  "scenarios: [\n",
		"wrong rule type": "scenarios:\n  - name: a\n    rule:\n      start: soon\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenarios("inline.yaml", []byte(data))
			require.Error(t, err)
			assert.Equal(t, cerrors.ErrorTypeConfig, cerrors.GetErrorType(err))
			assert.Contains(t, err.Error(), "inline.yaml")
		})
	}
}

func TestLoadScenarioFileMissing(t *testing.T) {
	_, err := LoadScenarioFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeConfig, cerrors.GetErrorType(err))
}
