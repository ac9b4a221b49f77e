package types

const (
	// DefaultOutputDir is where diagrams land unless told otherwise
	DefaultOutputDir = "diagrams"
	// DefaultFormat is the image format of rendered diagrams
	DefaultFormat = "png"
)

// RunDetails is for collecting all the settings of a generation run
type RunDetails struct {
	OutputDir     string
	Preset        string
	ScenarioFile  string
	Format        string
	DumpData      bool
	Parallel      bool
	MetricsFile   string
	LogLevel      string
	TraceExporter string
	TraceEndpoint string
}
