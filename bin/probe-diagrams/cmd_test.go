package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "diagrams")
	out, err := execute(t, "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, "All diagrams have been saved in the '"+dir+"' folder.\n", out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestGenerateWithDataAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "run.prom")
	_, err := execute(t, "generate", "-o", dir, "--format", "svg", "--data", "--parallel",
		"--metrics-file", metricsFile, "-f", filepath.Join("..", "..", "pkg", "environment", "testdata", "scenarios.yaml"))
	require.NoError(t, err)

	for _, file := range []string{"4.1-readiness.svg", "4.1-readiness.yaml", "4.2-liveness.svg", "4.2-liveness.yaml"} {
		assert.FileExists(t, filepath.Join(dir, file))
	}
	content, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "probe_diagrams_generated_total")
}

func TestGenerateErrors(t *testing.T) {
	tests := map[string]struct {
		args      []string
		errorType cerrors.ErrorType
	}{
		"unknown format":    {args: []string{"--format", "gif"}, errorType: cerrors.ErrorTypeConfig},
		"unknown preset":    {args: []string{"-p", "nope"}, errorType: cerrors.ErrorTypeConfig},
		"missing file":      {args: []string{"-f", "absent.yaml"}, errorType: cerrors.ErrorTypeConfig},
		"invalid log level": {args: []string{"--log-level", "loud"}, errorType: cerrors.ErrorTypeConfig},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"generate", "-o", t.TempDir()}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			_, errorType := cerrors.GetRootCauseAndErrorCode(err)
			assert.Equal(t, tt.errorType, errorType)
		})
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Presets: [probe-diagrams]")
	assert.Contains(t, out, "1.3-startup")
	assert.Contains(t, out, "3.2-liveness")
	assert.Contains(t, out, "FAILURE THRESHOLD")
}

func TestRejectsPositionalArguments(t *testing.T) {
	_, err := execute(t, "generate", "extra")
	assert.Error(t, err)
}
