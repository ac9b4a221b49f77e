package render

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/presets"
	"github.com/litmuschaos/probe-diagrams/pkg/scenario"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

func simulated(t *testing.T, index int) types.Result {
	t.Helper()
	result, err := scenario.Simulate(presets.ProbeDiagrams()[index])
	require.NoError(t, err)
	return result
}

func TestPlotSignatures(t *testing.T) {
	tests := map[string][]byte{
		"png": []byte("\x89PNG\r\n\x1a\n"),
		"svg": []byte("<?xml"),
		"pdf": []byte("%PDF"),
		"jpg": {0xff, 0xd8, 0xff},
	}
	result := simulated(t, 6)
	for format, signature := range tests {
		t.Run(format, func(t *testing.T) {
			sink, err := NewPlot(format)
			require.NoError(t, err)
			assert.Equal(t, format, sink.Extension())

			var buf bytes.Buffer
			require.NoError(t, sink.Render(context.Background(), result, &buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), signature), "unexpected %s header", format)
		})
	}
}

func TestPlotEveryPreset(t *testing.T) {
	sink, err := NewPlot("svg")
	require.NoError(t, err)
	for i, s := range presets.ProbeDiagrams() {
		t.Run(s.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, sink.Render(context.Background(), simulated(t, i), &buf))
			assert.Contains(t, buf.String(), "False (503)")
		})
	}
}

func TestPlotAxes(t *testing.T) {
	sink, err := NewPlot("png")
	require.NoError(t, err)

	chart, err := sink.build(simulated(t, 6))
	require.NoError(t, err)
	assert.Equal(t, 0.0, chart.X.Min)
	assert.Equal(t, 40.0, chart.X.Max)
	// grace period text sits at -0.6
	assert.InDelta(t, -0.75, chart.Y.Min, 1e-9)
	assert.Equal(t, yMax, chart.Y.Max)

	ticks := chart.X.Tick.Marker.Ticks(chart.X.Min, chart.X.Max)
	require.Len(t, ticks, 9)
	assert.Equal(t, "35", ticks[7].Label)
}

func TestOversizedAxisIsRejectedBeforeRendering(t *testing.T) {
	s := presets.ProbeDiagrams()[1]
	s.XMax = 1e12
	_, err := scenario.Simulate(s)
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeInvalidScenario, cerrors.GetErrorType(err))
	assert.Contains(t, err.Error(), "xMax")
}

func TestNewPlotRejectsUnknownFormat(t *testing.T) {
	_, err := NewPlot("bmp")
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeConfig, cerrors.GetErrorType(err))

	sink, err := NewPlot("")
	require.NoError(t, err)
	assert.Equal(t, "png", sink.Extension())
}

func TestPlotRejectsUnknownColour(t *testing.T) {
	result := simulated(t, 4)
	result.Decisions[0].Color = "not-a-colour"

	sink, err := NewPlot("png")
	require.NoError(t, err)
	err = sink.Render(context.Background(), result, io.Discard)
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeRender, cerrors.GetErrorType(err))
}

func TestParseColor(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		"named":      {input: "purple", want: color.RGBA{R: 0x80, B: 0x80, A: 0xff}},
		"upper case": {input: " Blue ", want: color.RGBA{B: 0xff, A: 0xff}},
		"hex":        {input: "#2ca02c", want: color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}},
		"empty":      {input: "", want: color.RGBA{A: 0xff}},
		"short hex":  {input: "#fff", wantErr: true},
		"bad hex":    {input: "#zzzzzz", wantErr: true},
		"unknown":    {input: "chartreuse-ish", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Data{}.Render(context.Background(), simulated(t, 6), &buf))

	var dump resultDump
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &dump))
	assert.Equal(t, "3.2-liveness", dump.Name)
	assert.Len(t, dump.Samples, 13)
	require.Len(t, dump.Decisions, 2)
	assert.Equal(t, 28.0, dump.Decisions[0].Time)
	require.NotNil(t, dump.Decisions[1].TerminationTime)
	assert.Equal(t, 88.0, *dump.Decisions[1].TerminationTime)
}

type failingSink struct{}

func (failingSink) Extension() string { return "bin" }

func (failingSink) Render(_ context.Context, _ types.Result, w io.Writer) error {
	w.Write([]byte("partial"))
	return errors.New("disk full")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	result := simulated(t, 1)

	path, err := WriteFile(context.Background(), Data{}, result, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1.2-startup.yaml"), path)
	assert.FileExists(t, path)

	_, err = WriteFile(context.Background(), failingSink{}, result, dir)
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeRender, cerrors.GetErrorType(err))
	_, statErr := os.Stat(filepath.Join(dir, "1.2-startup.bin"))
	assert.True(t, os.IsNotExist(statErr))

	_, err = WriteFile(context.Background(), Data{}, result, filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink, err := NewPlot("png")
	require.NoError(t, err)
	for _, err := range []error{
		sink.Render(ctx, simulated(t, 0), io.Discard),
		Data{}.Render(ctx, simulated(t, 0), io.Discard),
	} {
		require.Error(t, err)
		assert.Equal(t, cerrors.ErrorTypeGeneric, cerrors.GetErrorType(err))
		assert.Equal(t, "[render]: context canceled", err.Error())
	}

	_, err = WriteFile(ctx, Data{}, simulated(t, 0), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeGeneric, cerrors.GetErrorType(err))
}

func TestNewSinks(t *testing.T) {
	sinks, err := NewSinks("svg", true)
	require.NoError(t, err)
	require.Len(t, sinks, 2)
	assert.Equal(t, "svg", sinks[0].Extension())
	assert.Equal(t, "yaml", sinks[1].Extension())

	_, err = NewSinks("gif", false)
	assert.Error(t, err)
}
