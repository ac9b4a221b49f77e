package render

import (
	"context"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// Data dumps the simulated timeline as yaml so runs can be diffed
type Data struct{}

type sample struct {
	Time float64 `yaml:"time"`
	OK   bool    `yaml:"ok"`
}

type position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type decisionDump struct {
	Type            types.DecisionType `yaml:"type"`
	Label           string             `yaml:"label"`
	Color           string             `yaml:"color"`
	Index           int                `yaml:"index"`
	Time            float64            `yaml:"time"`
	Outcome         bool               `yaml:"outcome"`
	Text            position           `yaml:"text"`
	TerminationTime *float64           `yaml:"terminationTime,omitempty"`
}

type resultDump struct {
	Name      string               `yaml:"name"`
	Title     string               `yaml:"title"`
	Kind      types.ProbeKind      `yaml:"kind"`
	XMax      float64              `yaml:"xMax"`
	Samples   []sample             `yaml:"samples"`
	Decisions []decisionDump       `yaml:"decisions,omitempty"`
	Unreached []types.DecisionType `yaml:"unreached,omitempty"`
}

// Extension of the data dump
func (Data) Extension() string {
	return "yaml"
}

// Render writes the yaml dump into w
func (Data) Render(ctx context.Context, result types.Result, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return cerrors.Generic{Phase: "render", Reason: err.Error()}
	}
	dump := resultDump{
		Name:      result.Scenario.Name,
		Title:     result.Scenario.Title,
		Kind:      result.Scenario.Kind,
		XMax:      result.XMax,
		Unreached: result.Unreached,
	}
	for i, ts := range result.Timestamps {
		dump.Samples = append(dump.Samples, sample{Time: ts, OK: result.Outcomes[i]})
	}
	for _, d := range result.Decisions {
		dump.Decisions = append(dump.Decisions, decisionDump{
			Type:            d.Type,
			Label:           d.Label,
			Color:           d.Color,
			Index:           d.Index,
			Time:            d.Time,
			Outcome:         d.Outcome,
			Text:            position{X: d.TextX, Y: d.TextY},
			TerminationTime: d.TerminationTime,
		})
	}
	out, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
