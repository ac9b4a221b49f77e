package scenario

import (
	"github.com/litmuschaos/probe-diagrams/pkg/types"
	corev1 "k8s.io/api/core/v1"
)

// kubelet defaults for unset probe fields
const (
	DefaultFailureThreshold       = 3
	DefaultSuccessThreshold       = 1
	DefaultTerminationGracePeriod = 30
)

// FailureThreshold returns the effective failure threshold of the probe
func FailureThreshold(probe corev1.Probe) int {
	if probe.FailureThreshold > 0 {
		return int(probe.FailureThreshold)
	}
	return DefaultFailureThreshold
}

// SuccessThreshold returns the effective success threshold of the probe
func SuccessThreshold(probe corev1.Probe) int {
	if probe.SuccessThreshold > 0 {
		return int(probe.SuccessThreshold)
	}
	return DefaultSuccessThreshold
}

// TerminationGracePeriod returns the probe level grace period in seconds
func TerminationGracePeriod(probe corev1.Probe) float64 {
	if probe.TerminationGracePeriodSeconds != nil {
		return float64(*probe.TerminationGracePeriodSeconds)
	}
	return DefaultTerminationGracePeriod
}

// ResolveDecisions locates every requested decision on the outcome sequence.
// Decisions the sequence never triggers are returned separately.
func ResolveDecisions(s types.Scenario, timestamps []float64, outcomes []bool) ([]types.DecisionPoint, []types.DecisionType) {
	failureThreshold := FailureThreshold(s.Probe)
	successThreshold := SuccessThreshold(s.Probe)
	failedAt, failed := NthConsecutive(outcomes, false, failureThreshold, 0)

	var points []types.DecisionPoint
	var unreached []types.DecisionType
	for _, d := range s.Decisions {
		index, ok := -1, false
		switch d.Type {
		case types.ReadyDecision:
			index, ok = NthConsecutive(outcomes, true, successThreshold, 0)
		case types.FailureThresholdDecision, types.GracePeriodDecision:
			index, ok = failedAt, failed
		case types.RecoveredDecision:
			if failed {
				index, ok = NthConsecutive(outcomes, true, successThreshold, failedAt+1)
			}
		}
		if !ok {
			unreached = append(unreached, d.Type)
			continue
		}

		point := types.DecisionPoint{
			Type:    d.Type,
			Label:   d.Label,
			Color:   d.Color,
			Index:   index,
			Time:    timestamps[index],
			Outcome: outcomes[index],
		}
		if point.Label == "" {
			point.Label = DefaultLabel(s.Kind, d.Type)
		}
		if point.Color == "" {
			point.Color = DefaultColor(d.Type)
		}
		offset := DefaultOffset(d.Type)
		if d.Offset != nil {
			offset = *d.Offset
		}
		point.TextX = point.Time + offset.X
		point.TextY = types.Value(point.Outcome) + offset.Y
		if d.Type == types.GracePeriodDecision {
			terminateAt := point.Time + TerminationGracePeriod(s.Probe)
			point.TerminationTime = &terminateAt
		}
		points = append(points, point)
	}
	return points, unreached
}

// DefaultLabel returns the annotation text used when a decision has no label
func DefaultLabel(kind types.ProbeKind, d types.DecisionType) string {
	switch d {
	case types.ReadyDecision:
		if kind == types.ReadinessProbe {
			return "k8s sends traffic"
		}
		return "Pod considered live"
	case types.FailureThresholdDecision:
		if kind == types.ReadinessProbe {
			return "k8s do not send traffic"
		}
		return "k8s decides to kill pod"
	case types.RecoveredDecision:
		if kind == types.ReadinessProbe {
			return "k8s sends traffic"
		}
		return "Pod considered live again"
	case types.GracePeriodDecision:
		return "Grace period starts"
	}
	return string(d)
}

// DefaultColor returns the arrow colour used when a decision has no colour
func DefaultColor(d types.DecisionType) string {
	switch d {
	case types.ReadyDecision:
		return "blue"
	case types.FailureThresholdDecision:
		return "red"
	case types.RecoveredDecision:
		return "green"
	default:
		return "black"
	}
}

// DefaultOffset returns where the annotation text sits relative to its point
func DefaultOffset(d types.DecisionType) types.Offset {
	switch d {
	case types.ReadyDecision:
		return types.Offset{X: 1, Y: 0.1}
	case types.FailureThresholdDecision:
		return types.Offset{X: 0, Y: -0.4}
	case types.RecoveredDecision:
		return types.Offset{X: 0, Y: 0.3}
	default:
		return types.Offset{X: 4, Y: -0.6}
	}
}
