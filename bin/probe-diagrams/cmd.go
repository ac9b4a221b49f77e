package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kyokomi/emoji"
	"github.com/palantir/stacktrace"
	"github.com/spf13/cobra"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/diagrams"
	"github.com/litmuschaos/probe-diagrams/pkg/environment"
	"github.com/litmuschaos/probe-diagrams/pkg/log"
	"github.com/litmuschaos/probe-diagrams/pkg/metrics"
	"github.com/litmuschaos/probe-diagrams/pkg/presets"
	"github.com/litmuschaos/probe-diagrams/pkg/render"
	"github.com/litmuschaos/probe-diagrams/pkg/scenario"
	"github.com/litmuschaos/probe-diagrams/pkg/telemetry"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// newRootCmd wires the commands, flag defaults come from the environment
func newRootCmd(out io.Writer) *cobra.Command {
	runDetails := types.RunDetails{}
	environment.GetENV(&runDetails)

	generate := func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), &runDetails, out)
	}

	var rootCmd = &cobra.Command{
		Use:           "probe-diagrams",
		Short:         "Draw kubelet probe timelines",
		Long:          "Simulate startup, readiness and liveness probe scenarios and draw one chart per scenario",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          generate,
	}

	var generateCmd = &cobra.Command{
		Use:                   "generate [flags]",
		Short:                 "Render every scenario of a preset or scenario file",
		Args:                  cobra.NoArgs,
		Example:               "./probe-diagrams generate -o=diagrams --format=svg --parallel",
		DisableFlagsInUseLine: true,
		RunE:                  generate,
	}

	var listCmd = &cobra.Command{
		Use:                   "list [flags]",
		Short:                 "Show the scenarios that would be rendered",
		Args:                  cobra.NoArgs,
		Example:               "./probe-diagrams list -f=scenarios.yaml",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(&runDetails, out)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&runDetails.OutputDir, "output", "o", runDetails.OutputDir, "directory the diagrams are written to")
	flags.StringVarP(&runDetails.ScenarioFile, "file", "f", runDetails.ScenarioFile, "path of a scenarios yaml file, overrides the preset")
	flags.StringVarP(&runDetails.Preset, "preset", "p", runDetails.Preset, "name of the built-in scenario set")
	flags.StringVar(&runDetails.Format, "format", runDetails.Format, "image format, one of png, svg, pdf, jpg")
	flags.BoolVar(&runDetails.DumpData, "data", runDetails.DumpData, "also write the simulated timeline as yaml")
	flags.BoolVar(&runDetails.Parallel, "parallel", runDetails.Parallel, "render scenarios concurrently")
	flags.StringVar(&runDetails.MetricsFile, "metrics-file", runDetails.MetricsFile, "write prometheus metrics of the run to this file")
	flags.StringVar(&runDetails.LogLevel, "log-level", runDetails.LogLevel, "log level, e.g. debug, info, warn")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	return rootCmd
}

// loadScenarios returns the scenarios of the file when given, else of the preset
func loadScenarios(runDetails *types.RunDetails) ([]types.Scenario, error) {
	if runDetails.ScenarioFile != "" {
		return environment.LoadScenarioFile(runDetails.ScenarioFile)
	}
	return presets.Get(runDetails.Preset)
}

func runGenerate(ctx context.Context, runDetails *types.RunDetails, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := log.SetLevel(runDetails.LogLevel); err != nil {
		return cerrors.Config{Source: "log-level", Reason: err.Error()}
	}

	shutdown, err := telemetry.InitOTelSDK(ctx, runDetails.TraceExporter, runDetails.TraceEndpoint)
	if err != nil {
		return stacktrace.Propagate(err, "could not initialise tracing")
	}
	defer func() {
		if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
			log.Warnf("[Warning]: failed to flush traces, err: %v", shutdownErr)
		}
	}()

	scenarios, err := loadScenarios(runDetails)
	if err != nil {
		return err
	}
	sinks, err := render.NewSinks(runDetails.Format, runDetails.DumpData)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	generator := diagrams.Generator{
		OutputDir: runDetails.OutputDir,
		Sinks:     sinks,
		Parallel:  runDetails.Parallel,
		Metrics:   recorder,
		Out:       out,
	}

	log.InfoWithValues("[Info]: The generation details are as follows", map[string]interface{}{
		"Scenarios": len(scenarios),
		"Output":    runDetails.OutputDir,
		"Format":    runDetails.Format,
		"Parallel":  runDetails.Parallel,
	})
	summaries, err := generator.Run(ctx, scenarios)

	if runDetails.MetricsFile != "" {
		if metricsErr := recorder.WriteTextfile(runDetails.MetricsFile); metricsErr != nil {
			log.Errorf("unable to write the metrics file, err: %v", metricsErr)
		}
	}
	if err != nil {
		return err
	}

	files := 0
	for _, summary := range summaries {
		files += len(summary.Files)
	}
	log.Infof("%d scenarios rendered into %d files %s", len(summaries), files, emoji.Sprint(":thumbsup:"))
	return nil
}

func runList(runDetails *types.RunDetails, out io.Writer) error {
	if runDetails.ScenarioFile == "" {
		fmt.Fprintf(out, "Presets: %v\n\n", presets.Names())
	}
	scenarios, err := loadScenarios(runDetails)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tDELAY\tPERIOD\tFAILURE THRESHOLD\tTITLE")
	for _, s := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%ds\t%ds\t%d\t%s\n",
			s.Name, s.Kind, s.Probe.InitialDelaySeconds, s.Probe.PeriodSeconds, scenario.FailureThreshold(s.Probe), s.Title)
	}
	return w.Flush()
}
