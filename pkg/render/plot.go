package render

import (
	"context"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/math"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

const (
	tickStep = 5
	// room kept between annotation text and the chart border
	textMargin = 0.15
	yMin       = -0.2
	yMax       = 1.2
)

var (
	successColor = color.RGBA{G: 0x80, A: 0xff}
	failureColor = color.RGBA{R: 0xff, A: 0xff}
)

// Plot draws the probe timeline as a chart
type Plot struct {
	Format string
	Width  vg.Length
	Height vg.Length
}

// NewPlot returns a 10x4 inch chart sink for one of Formats
func NewPlot(format string) (*Plot, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = types.DefaultFormat
	}
	if !IsSupportedFormat(format) {
		return nil, cerrors.Config{Source: "format", Reason: "unsupported image format '" + format + "', use one of " + strings.Join(Formats, ", ")}
	}
	return &Plot{Format: format, Width: 10 * vg.Inch, Height: 4 * vg.Inch}, nil
}

// Extension returns the image format
func (p *Plot) Extension() string {
	return p.Format
}

// Render draws the chart and encodes it into w
func (p *Plot) Render(ctx context.Context, result types.Result, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return cerrors.Generic{Phase: "render", Reason: err.Error()}
	}
	chart, err := p.build(result)
	if err != nil {
		return err
	}
	writer, err := chart.WriterTo(p.Width, p.Height, p.Format)
	if err != nil {
		return cerrors.Render{Scenario: result.Scenario.Name, Format: p.Format, Reason: err.Error()}
	}
	if _, err := writer.WriteTo(w); err != nil {
		return cerrors.Render{Scenario: result.Scenario.Name, Format: p.Format, Reason: err.Error()}
	}
	return nil
}

func (p *Plot) build(result types.Result) (*plot.Plot, error) {
	name := result.Scenario.Name
	renderErr := func(err error) error {
		return cerrors.Render{Scenario: name, Format: p.Format, Reason: err.Error()}
	}

	chart := plot.New()
	chart.Title.Text = result.Scenario.Title
	if chart.Title.Text == "" {
		chart.Title.Text = name
	}

	lowY, highY := yMin, yMax
	highX := result.XMax

	// arrows first so the circles are drawn over their heads
	for _, d := range result.Decisions {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, renderErr(err)
		}
		arrow, err := plotter.NewLine(plotter.XYs{
			{X: d.TextX, Y: d.TextY},
			{X: d.Time, Y: types.Value(d.Outcome)},
		})
		if err != nil {
			return nil, renderErr(err)
		}
		arrow.LineStyle.Color = c
		arrow.LineStyle.Width = vg.Points(1)
		chart.Add(arrow)

		if d.TerminationTime != nil && *d.TerminationTime <= result.XMax {
			kill, err := plotter.NewLine(plotter.XYs{
				{X: *d.TerminationTime, Y: yMin},
				{X: *d.TerminationTime, Y: yMax},
			})
			if err != nil {
				return nil, renderErr(err)
			}
			kill.LineStyle.Color = c
			kill.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			chart.Add(kill)
		}
	}

	var successes, failures plotter.XYs
	for i, ts := range result.Timestamps {
		point := plotter.XY{X: ts, Y: types.Value(result.Outcomes[i])}
		if result.Outcomes[i] {
			successes = append(successes, point)
		} else {
			failures = append(failures, point)
		}
	}
	for _, group := range []struct {
		points plotter.XYs
		color  color.Color
	}{{successes, successColor}, {failures, failureColor}} {
		if len(group.points) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(group.points)
		if err != nil {
			return nil, renderErr(err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{Color: group.color, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
		chart.Add(scatter)
	}

	var texts plotter.XYLabels
	var colors []color.Color
	for _, d := range result.Decisions {
		c, _ := ParseColor(d.Color)
		texts.XYs = append(texts.XYs, plotter.XY{X: d.TextX, Y: d.TextY})
		texts.Labels = append(texts.Labels, d.Label)
		colors = append(colors, c)
	}
	for _, n := range result.Scenario.Notes {
		c, err := ParseColor(n.Color)
		if err != nil {
			return nil, renderErr(err)
		}
		texts.XYs = append(texts.XYs, plotter.XY{X: n.X, Y: n.Y})
		texts.Labels = append(texts.Labels, n.Text)
		colors = append(colors, c)
	}
	if len(texts.Labels) > 0 {
		labels, err := plotter.NewLabels(texts)
		if err != nil {
			return nil, renderErr(err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Color = colors[i]
		}
		chart.Add(labels)
		for _, xy := range texts.XYs {
			lowY = math.Minimum(lowY, xy.Y-textMargin)
			highY = math.Maximum(highY, xy.Y+textMargin)
			highX = math.Maximum(highX, xy.X)
		}
	}

	// Add widens the axes to the data, the fixed ranges are applied last
	chart.X.Min, chart.X.Max = 0, highX
	chart.Y.Min, chart.Y.Max = lowY, highY
	chart.X.Tick.Marker = secondTicks(highX)
	chart.Y.Tick.Marker = plot.ConstantTicks{
		{Value: 0, Label: "False (503)"},
		{Value: 1, Label: "True (200)"},
	}
	return chart, nil
}

// secondTicks labels the x axis every five seconds
func secondTicks(max float64) plot.ConstantTicks {
	var ticks plot.ConstantTicks
	for _, v := range math.Ticks(0, max, tickStep) {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}
