package scenario

import (
	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// axisPadding is added after the last sample when a scenario sets no XMax
const axisPadding = 5

// Simulate validates the scenario and computes its timeline, outcomes and
// decision points. It has no side effects, equal inputs give equal results.
func Simulate(s types.Scenario) (types.Result, error) {
	if err := Validate(s); err != nil {
		return types.Result{}, err
	}

	timestamps, err := Timeline(SamplingFor(s))
	if err != nil {
		if invalid, ok := err.(cerrors.InvalidScenario); ok {
			invalid.Scenario = s.Name
			return types.Result{}, invalid
		}
		return types.Result{}, err
	}

	outcomes := Outcomes(s.Rule, timestamps)
	decisions, unreached := ResolveDecisions(s, timestamps, outcomes)

	xMax := s.XMax
	if xMax == 0 {
		xMax = timestamps[len(timestamps)-1] + axisPadding
	}

	return types.Result{
		Scenario:   s,
		Timestamps: timestamps,
		Outcomes:   outcomes,
		Decisions:  decisions,
		Unreached:  unreached,
		XMax:       xMax,
	}, nil
}
