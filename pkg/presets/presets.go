package presets

import (
	"sort"
	"sync"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// Default is the preset set rendered when nothing else is requested
const Default = "probe-diagrams"

// Builder returns a fresh copy of the scenarios of a preset set
type Builder func() []types.Scenario

var (
	mu       sync.RWMutex
	registry = map[string]Builder{
		Default: ProbeDiagrams,
	}
)

// Register makes an additional preset set available under name
func Register(name string, builder Builder) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = builder
}

// Get returns the scenarios of the named preset set
func Get(name string) ([]types.Scenario, error) {
	mu.RLock()
	builder, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, cerrors.Config{Source: "preset", Reason: "unknown preset '" + name + "'"}
	}
	return builder(), nil
}

// Names lists the registered preset sets in alphabetical order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
