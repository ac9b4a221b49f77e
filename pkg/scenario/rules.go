package scenario

import (
	"github.com/litmuschaos/probe-diagrams/pkg/types"
)

// Evaluate returns the probe outcome of the rule at time t
func Evaluate(rule types.Rule, t float64) bool {
	switch rule.Type {
	case types.ConstantRule:
		return rule.Value
	case types.StepRule:
		return t >= rule.Threshold
	case types.WindowRule:
		inside := t >= rule.Start && (rule.End == nil || t < *rule.End)
		return !inside
	default:
		return false
	}
}

// Outcomes evaluates the rule at every timestamp
func Outcomes(rule types.Rule, timestamps []float64) []bool {
	outcomes := make([]bool, len(timestamps))
	for i, t := range timestamps {
		outcomes[i] = Evaluate(rule, t)
	}
	return outcomes
}
