package environment

import (
	"os"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
	"sigs.k8s.io/yaml"
)

// ScenarioFile is the on-disk layout of user supplied scenarios
type ScenarioFile struct {
	Scenarios []types.Scenario `json:"scenarios"`
}

// LoadScenarioFile reads scenarios from a yaml or json file.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func LoadScenarioFile(path string) ([]types.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.Config{Source: path, Reason: err.Error()}
	}
	return ParseScenarios(path, data)
}

// ParseScenarios decodes the contents of a scenario file
func ParseScenarios(source string, data []byte) ([]types.Scenario, error) {
	var file ScenarioFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, cerrors.Config{Source: source, Reason: err.Error()}
	}
	if len(file.Scenarios) == 0 {
		return nil, cerrors.Config{Source: source, Reason: "no scenarios defined"}
	}
	return file.Scenarios, nil
}
