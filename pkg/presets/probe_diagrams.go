package presets

import (
	"github.com/litmuschaos/probe-diagrams/pkg/types"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// httpProbe builds the probe settings shared by every diagram of a kind
func httpProbe(path string, initialDelay, period, failureThreshold int32) corev1.Probe {
	return corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: path,
				Port: intstr.FromInt32(8080),
			},
		},
		InitialDelaySeconds: initialDelay,
		PeriodSeconds:       period,
		FailureThreshold:    failureThreshold,
	}
}

// startup: initialDelaySeconds 5, periodSeconds 2, failureThreshold 30
func startupProbe() corev1.Probe {
	return httpProbe("/startup", 5, 2, 30)
}

// readiness: initialDelaySeconds 5, periodSeconds 2, failureThreshold 5
func readinessProbe() corev1.Probe {
	return httpProbe("/ready", 5, 2, 5)
}

// liveness: initialDelaySeconds 10, periodSeconds 2, failureThreshold 5, terminationGracePeriodSeconds 60
func livenessProbe() corev1.Probe {
	probe := httpProbe("/live", 10, 2, 5)
	grace := int64(60)
	probe.TerminationGracePeriodSeconds = &grace
	return probe
}

// ProbeDiagrams returns the seven startup, readiness and liveness diagrams
func ProbeDiagrams() []types.Scenario {
	return []types.Scenario{
		{
			Name:     "1.1-startup",
			Title:    "Startup Probe 1.1: App starts at 3 sec (pod becomes live at first probe)",
			Kind:     types.StartupProbe,
			Probe:    startupProbe(),
			Timeline: types.TimelineSpec{Until: 15},
			Rule:     types.Step(3),
			XMax:     15,
			Decisions: []types.Decision{
				{Type: types.ReadyDecision, Label: "Pod considered live", Color: "blue"},
			},
		},
		{
			Name:     "1.2-startup",
			Title:    "Startup Probe 1.2: App starts at 8 sec (pod becomes live when probe succeeds)",
			Kind:     types.StartupProbe,
			Probe:    startupProbe(),
			Timeline: types.TimelineSpec{Until: 15},
			Rule:     types.Step(8),
			XMax:     15,
			Decisions: []types.Decision{
				{Type: types.ReadyDecision, Label: "Pod considered live", Color: "blue"},
			},
		},
		{
			// the app would start at 90s, far beyond the 30 allowed failures
			Name:     "1.3-startup",
			Title:    "Startup Probe 1.3: App starts at 90 sec (pod killed after threshold failures)",
			Kind:     types.StartupProbe,
			Probe:    startupProbe(),
			Timeline: types.TimelineSpec{Count: 30},
			Rule:     types.Step(90),
			Decisions: []types.Decision{
				{Type: types.FailureThresholdDecision, Label: "k8s decides to kill pod", Color: "black", Offset: &types.Offset{X: -10, Y: -0.15}},
			},
		},
		{
			Name:     "2.1-readiness",
			Title:    "Readiness Probe 2.1: Temporary failure but pod remains ready",
			Kind:     types.ReadinessProbe,
			Probe:    readinessProbe(),
			Timeline: types.TimelineSpec{Until: 18},
			Rule:     types.Window(10, 13),
			XMax:     18,
			Notes: []types.Note{
				{X: 11, Y: 0.5, Text: "k8s considers pod always ready", Color: "purple"},
			},
		},
		{
			Name:     "2.2-readiness",
			Title:    "Readiness Probe 2.2: Extended failure changes traffic routing",
			Kind:     types.ReadinessProbe,
			Probe:    readinessProbe(),
			Timeline: types.TimelineSpec{Until: 41},
			Rule:     types.Window(10, 30),
			XMax:     40,
			Decisions: []types.Decision{
				{Type: types.FailureThresholdDecision, Label: "k8s do not send traffic", Color: "red", Offset: &types.Offset{X: 0, Y: -0.4}},
				{Type: types.RecoveredDecision, Label: "k8s sends traffic", Color: "green", Offset: &types.Offset{X: 0, Y: 0.3}},
			},
		},
		{
			Name:     "3.1-liveness",
			Title:    "Liveness Probe 3.1: Brief failure; pod remains live",
			Kind:     types.LivenessProbe,
			Probe:    livenessProbe(),
			Timeline: types.TimelineSpec{Until: 31},
			Rule:     types.Window(20, 25),
			XMax:     32,
			Notes: []types.Note{
				{X: 20, Y: 0.5, Text: "Transient failure, pod remains live", Color: "purple"},
			},
		},
		{
			Name:     "3.2-liveness",
			Title:    "Liveness Probe 3.2: Extended failure leads to pod termination",
			Kind:     types.LivenessProbe,
			Probe:    livenessProbe(),
			Timeline: types.TimelineSpec{Until: 36},
			Rule:     types.OpenWindow(20),
			XMax:     40,
			Decisions: []types.Decision{
				{Type: types.FailureThresholdDecision, Label: "k8s decides to kill the pod", Color: "red", Offset: &types.Offset{X: -3, Y: -0.4}},
				{Type: types.GracePeriodDecision, Label: "Grace period starts", Color: "black", Offset: &types.Offset{X: 4, Y: -0.6}},
			},
		},
	}
}
