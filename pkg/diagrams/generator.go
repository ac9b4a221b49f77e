package diagrams

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/palantir/stacktrace"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/log"
	"github.com/litmuschaos/probe-diagrams/pkg/metrics"
	"github.com/litmuschaos/probe-diagrams/pkg/render"
	"github.com/litmuschaos/probe-diagrams/pkg/scenario"
	"github.com/litmuschaos/probe-diagrams/pkg/telemetry"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// Generator simulates scenarios and writes one file per sink for each of them
type Generator struct {
	OutputDir string
	Sinks     []render.Sink
	// Parallel renders scenarios concurrently, Workers bounds the fan out
	Parallel bool
	Workers  int
	Metrics  *metrics.Recorder
	// Out receives the completion message, nil keeps it silent
	Out io.Writer
}

// Summary is the outcome of one scenario
type Summary struct {
	Scenario  string
	Kind      types.ProbeKind
	Files     []string
	Unreached []types.DecisionType
	Duration  time.Duration
	Err       error
}

// Run creates the output directory and generates every scenario in order.
// A failing scenario does not stop the others, the first failure is returned
// together with the summaries of every scenario.
func (g *Generator) Run(ctx context.Context, scenarios []types.Scenario) ([]Summary, error) {
	if err := EnsureOutputDir(g.OutputDir); err != nil {
		return nil, err
	}
	if err := uniqueNames(scenarios); err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(scenarios))
	if g.Parallel {
		var eg errgroup.Group
		eg.SetLimit(g.workers())
		for i := range scenarios {
			eg.Go(func() error {
				summaries[i] = g.generate(ctx, scenarios[i])
				return nil
			})
		}
		eg.Wait()
	} else {
		for i := range scenarios {
			summaries[i] = g.generate(ctx, scenarios[i])
		}
	}

	var firstErr error
	failed := 0
	for _, summary := range summaries {
		if summary.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = summary.Err
			}
		}
	}
	if firstErr != nil {
		return summaries, stacktrace.Propagate(firstErr, "%d of %d diagrams could not be generated", failed, len(scenarios))
	}

	if g.Out != nil {
		fmt.Fprintf(g.Out, "All diagrams have been saved in the '%s' folder.\n", g.OutputDir)
	}
	return summaries, nil
}

func (g *Generator) workers() int {
	if g.Workers > 0 {
		return g.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (g *Generator) generate(ctx context.Context, s types.Scenario) (summary Summary) {
	start := time.Now()
	summary = Summary{Scenario: s.Name, Kind: s.Kind}

	ctx, span := telemetry.StartSpan(ctx, "GenerateDiagram",
		attribute.String("scenario.name", s.Name),
		attribute.String("probe.kind", string(s.Kind)),
	)
	defer func() {
		summary.Duration = time.Since(start)
		if summary.Err != nil {
			g.Metrics.ObserveFailed(string(s.Kind))
			log.ErrorWithValues("[Error]: Unable to generate the diagram", logrus.Fields{
				"Scenario": s.Name,
				"Reason":   summary.Err.Error(),
			})
		}
		telemetry.EndSpan(span, summary.Err)
	}()

	log.Debugf("simulating scenario %s", s.Name)
	result, err := scenario.Simulate(s)
	if err != nil {
		summary.Err = err
		return summary
	}
	summary.Unreached = result.Unreached
	for _, d := range result.Unreached {
		log.Warnf("[Warning]: decision '%s' is never reached in scenario '%s'", d, s.Name)
	}

	for _, sink := range g.Sinks {
		path, err := render.WriteFile(ctx, sink, result, g.OutputDir)
		if err != nil {
			summary.Err = stacktrace.Propagate(err, "could not write the %s output", sink.Extension())
			return summary
		}
		summary.Files = append(summary.Files, path)
		g.Metrics.ObserveGenerated(string(s.Kind), sink.Extension(), time.Since(start))
	}

	log.InfoWithValues("[Info]: The diagram has been saved", logrus.Fields{
		"Scenario":  s.Name,
		"Kind":      s.Kind,
		"Samples":   len(result.Timestamps),
		"Decisions": len(result.Decisions),
		"Files":     summary.Files,
	})
	return summary
}

// uniqueNames rejects scenarios that would overwrite each other's files
func uniqueNames(scenarios []types.Scenario) error {
	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		// case-insensitive filesystems map both names to one file
		key := strings.ToLower(s.Name)
		if seen[key] {
			return cerrors.InvalidScenario{Scenario: s.Name, Reason: "name is used by more than one scenario"}
		}
		seen[key] = true
	}
	return nil
}
