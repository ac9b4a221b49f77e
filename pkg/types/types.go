package types

import (
	corev1 "k8s.io/api/core/v1"
)

// ProbeKind identifies which kubelet probe a scenario illustrates
type ProbeKind string

const (
	// StartupProbe gates when a container is first considered initialised
	StartupProbe ProbeKind = "startup"
	// ReadinessProbe gates whether traffic is routed to the pod
	ReadinessProbe ProbeKind = "readiness"
	// LivenessProbe gates whether the container gets restarted
	LivenessProbe ProbeKind = "liveness"
)

// ProbeKinds lists every supported probe kind
var ProbeKinds = []ProbeKind{StartupProbe, ReadinessProbe, LivenessProbe}

// RuleType selects how an outcome is derived from a timestamp
type RuleType string

const (
	// ConstantRule yields the same outcome for every timestamp
	ConstantRule RuleType = "constant"
	// StepRule fails before the threshold and succeeds from it onwards
	StepRule RuleType = "step"
	// WindowRule succeeds everywhere except inside [start, end)
	WindowRule RuleType = "window"
)

// DecisionType names a point where kubelet changes its view of the pod
type DecisionType string

const (
	// ReadyDecision is reached with the first successThreshold consecutive successes
	ReadyDecision DecisionType = "ready"
	// FailureThresholdDecision is reached with the first failureThreshold consecutive failures
	FailureThresholdDecision DecisionType = "failure-threshold"
	// RecoveredDecision is the first ready point after the failure threshold was hit
	RecoveredDecision DecisionType = "recovered"
	// GracePeriodDecision starts the termination grace period at the failure threshold
	GracePeriodDecision DecisionType = "grace-period"
)

// DecisionTypes lists every supported decision type
var DecisionTypes = []DecisionType{ReadyDecision, FailureThresholdDecision, RecoveredDecision, GracePeriodDecision}

// Rule maps a simulated timestamp to a probe outcome
type Rule struct {
	Type RuleType `json:"type"`
	// Value is the outcome of a constant rule
	Value bool `json:"value,omitempty"`
	// Threshold is the time the application becomes healthy for a step rule
	Threshold float64 `json:"threshold,omitempty"`
	// Start and End bound the failing window, a nil End keeps failing forever
	Start float64  `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

// Constant returns a rule that always yields ok
func Constant(ok bool) Rule {
	return Rule{Type: ConstantRule, Value: ok}
}

// Step returns a rule that fails before threshold and succeeds afterwards
func Step(threshold float64) Rule {
	return Rule{Type: StepRule, Threshold: threshold}
}

// Window returns a rule that fails inside [start, end)
func Window(start, end float64) Rule {
	return Rule{Type: WindowRule, Start: start, End: &end}
}

// OpenWindow returns a rule that fails from start onwards
func OpenWindow(start float64) Rule {
	return Rule{Type: WindowRule, Start: start}
}

// TimelineSpec bounds the probe samples of a scenario, either by Count or
// by the exclusive Until timestamp. Delay and period come from the probe.
type TimelineSpec struct {
	Count int     `json:"count,omitempty"`
	Until float64 `json:"until,omitempty"`
}

// Sampling is the fully resolved input of timeline generation
type Sampling struct {
	InitialDelay float64
	Period       float64
	Count        int
	Until        float64
}

// Offset positions annotation text relative to the annotated point
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Decision requests an annotated decision point on the chart
type Decision struct {
	Type   DecisionType `json:"type"`
	Label  string       `json:"label,omitempty"`
	Color  string       `json:"color,omitempty"`
	Offset *Offset      `json:"offset,omitempty"`
}

// Note is free text placed on the chart without an arrow
type Note struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Color string  `json:"color,omitempty"`
}

// Scenario contains everything needed to simulate and draw one probe diagram
type Scenario struct {
	// Name is the file stem of the rendered diagram, for example 1.2-startup
	Name  string    `json:"name"`
	Title string    `json:"title"`
	Kind  ProbeKind `json:"kind"`
	// Probe carries initialDelaySeconds, periodSeconds, the thresholds and
	// terminationGracePeriodSeconds the way they appear in a pod spec
	Probe    corev1.Probe `json:"probe"`
	Timeline TimelineSpec `json:"timeline"`
	Rule     Rule         `json:"rule"`
	// XMax is the right edge of the chart, zero means last sample + 5s
	XMax      float64    `json:"xMax,omitempty"`
	Decisions []Decision `json:"decisions,omitempty"`
	Notes     []Note     `json:"notes,omitempty"`
}

// DecisionPoint is a resolved decision on the simulated timeline
type DecisionPoint struct {
	Type    DecisionType
	Label   string
	Color   string
	Index   int
	Time    float64
	Outcome bool
	TextX   float64
	TextY   float64
	// TerminationTime is set for grace period decisions
	TerminationTime *float64
}

// Result is the simulated outcome of a scenario, consumed by the renderers
type Result struct {
	Scenario   Scenario
	Timestamps []float64
	Outcomes   []bool
	Decisions  []DecisionPoint
	// Unreached lists requested decisions the outcome sequence never triggers
	Unreached []DecisionType
	XMax      float64
}

// Value returns the y coordinate of an outcome, 1 for success and 0 for failure
func Value(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
