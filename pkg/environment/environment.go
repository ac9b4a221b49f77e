package environment

import (
	"os"
	"strconv"

	"github.com/litmuschaos/probe-diagrams/pkg/log"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

//GetENV fetches all the env variables used by a generation run
func GetENV(runDetails *types.RunDetails) {
	runDetails.OutputDir = Getenv("DIAGRAMS_OUTPUT_DIR", types.DefaultOutputDir)
	runDetails.Preset = Getenv("DIAGRAMS_PRESET", "probe-diagrams")
	runDetails.ScenarioFile = Getenv("DIAGRAMS_SCENARIO_FILE", "")
	runDetails.Format = Getenv("DIAGRAMS_FORMAT", types.DefaultFormat)
	runDetails.DumpData = getBool("DIAGRAMS_DATA", false)
	runDetails.Parallel = getBool("DIAGRAMS_PARALLEL", false)
	runDetails.MetricsFile = Getenv("DIAGRAMS_METRICS_FILE", "")
	runDetails.LogLevel = Getenv("LOG_LEVEL", "info")
	runDetails.TraceExporter = Getenv("OTEL_EXPORTER", "")
	runDetails.TraceEndpoint = Getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

// getBool parses a boolean env, an unparsable value keeps the default and is reported
func getBool(key string, defaultValue bool) bool {
	value := Getenv(key, strconv.FormatBool(defaultValue))
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("[Warning]: %s=%q is not a boolean, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// Getenv fetch the env and set the default value, if any
func Getenv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return value
}
