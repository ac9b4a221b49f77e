package render

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// Sink turns a simulated scenario into one output file
type Sink interface {
	// Extension is the file extension without the leading dot
	Extension() string
	Render(ctx context.Context, result types.Result, w io.Writer) error
}

// Formats lists the image formats supported by the plot sink
var Formats = []string{"png", "svg", "pdf", "jpg"}

// NewSinks builds the sinks of a run: one chart in the given format and,
// when data is set, a yaml dump of the simulated timeline
func NewSinks(format string, data bool) ([]Sink, error) {
	chart, err := NewPlot(format)
	if err != nil {
		return nil, err
	}
	sinks := []Sink{chart}
	if data {
		sinks = append(sinks, Data{})
	}
	return sinks, nil
}

// WriteFile renders result into <dir>/<name>.<ext> and returns the path.
// A partially written file is removed when rendering fails.
func WriteFile(ctx context.Context, sink Sink, result types.Result, dir string) (string, error) {
	name := result.Scenario.Name
	path := filepath.Join(dir, name+"."+sink.Extension())

	file, err := os.Create(path)
	if err != nil {
		return "", cerrors.Render{Scenario: name, Format: sink.Extension(), Reason: err.Error()}
	}
	if err := sink.Render(ctx, result, file); err != nil {
		file.Close()
		os.Remove(path)
		if cerrors.IsUserFriendly(err) {
			return "", err
		}
		return "", cerrors.Render{Scenario: name, Format: sink.Extension(), Reason: err.Error()}
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", cerrors.Render{Scenario: name, Format: sink.Extension(), Reason: err.Error()}
	}
	return path, nil
}

// IsSupportedFormat reports whether the plot sink can write the format
func IsSupportedFormat(format string) bool {
	format = strings.ToLower(format)
	if format == "jpeg" {
		return true
	}
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
